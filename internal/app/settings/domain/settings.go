package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/murkotick/showcase-catalog-service/internal/pkg/textnorm"
)

// Setting keys as stored in site_settings.setting_key. They match the admin JSON field names.
const (
	KeyContactTelegramLink    = "contact_telegram_link"
	KeyMaxFileSizeMB          = "storage_max_file_size_mb"
	KeyAllowedImageTypes      = "storage_allowed_image_types"
	KeyAllowedAttachmentTypes = "storage_allowed_attachment_types"
	KeyLogLevel               = "log_level"
	KeyLogMaxBytesMB          = "log_max_bytes_mb"

	KeyShopName        = "miniapp_shop_name"
	KeySectionTitle    = "miniapp_section_title"
	KeyFooterText      = "miniapp_footer_text"
	KeyBackgroundColor = "miniapp_background_color"
	KeyBackgroundImage = "miniapp_background_image"
	KeyTextColor       = "miniapp_text_color"
	KeyHeadingColor    = "miniapp_heading_color"
	KeyPriceColor      = "miniapp_price_color"
	KeyHintColor       = "miniapp_hint_color"
	KeyCardBgColor     = "miniapp_card_bg_color"
)

// FileURLPrefix is the public path under which stored files are served.
const FileURLPrefix = "/api/files/"

const (
	maxTelegramLen = 255
	maxTitleLen    = 255
	maxFooterLen   = 1000
	maxFileSizeMB  = 1024
)

var (
	ErrInvalidFileSize = errors.New("storage_max_file_size_mb must be greater than 0 and at most 1024")
	ErrInvalidTypeList = errors.New("allowed types must be a comma separated list of MIME types")
	ErrInvalidLogLevel = errors.New("log_level must be one of DEBUG, INFO, WARNING, ERROR")
	ErrInvalidLogSize  = errors.New("log_max_bytes_mb cannot be negative")
	ErrInvalidColor    = errors.New("color must be a hex value like #RRGGBB or #RGB")
	ErrValueTooLong    = errors.New("value exceeds maximum length")

	// ErrBackgroundNotFound indicates that no background image is configured.
	ErrBackgroundNotFound = errors.New("background image not found")
)

var logLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR"}

// Miniapp is the storefront appearance.
type Miniapp struct {
	ShopName        string
	SectionTitle    string
	FooterText      string
	BackgroundColor string
	BackgroundImage string
	TextColor       string
	HeadingColor    string
	PriceColor      string
	HintColor       string
	CardBgColor     string
}

// DefaultMiniapp is the appearance of a shop nobody has configured yet.
func DefaultMiniapp() Miniapp {
	return Miniapp{
		ShopName:        "Shop",
		SectionTitle:    "Catalog",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#000000",
		HeadingColor:    "#000000",
		PriceColor:      "#000000",
		HintColor:       "#999999",
		CardBgColor:     "#F5F5F5",
	}
}

// Settings is the effective shop configuration: process defaults overlaid with the rows
// stored in site_settings. APIPort, CORSOrigins and StoragePath are read-only.
type Settings struct {
	ContactTelegramLink    string
	MaxFileSizeMB          float64
	AllowedImageTypes      string
	AllowedAttachmentTypes string
	LogLevel               string
	LogMaxBytesMB          float64
	Miniapp                Miniapp

	APIPort     int
	CORSOrigins string
	StoragePath string
}

// Overlay returns s with every stored value applied. Stored numbers that no longer parse
// keep the default.
func (s Settings) Overlay(stored map[string]string) Settings {
	out := s
	for key, value := range stored {
		switch key {
		case KeyMaxFileSizeMB:
			if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
				out.MaxFileSizeMB = f
			}
		case KeyLogMaxBytesMB:
			if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 {
				out.LogMaxBytesMB = f
			}
		default:
			if p := out.stringField(key); p != nil {
				*p = value
			}
		}
	}
	return out
}

func (s *Settings) stringField(key string) *string {
	switch key {
	case KeyContactTelegramLink:
		return &s.ContactTelegramLink
	case KeyAllowedImageTypes:
		return &s.AllowedImageTypes
	case KeyAllowedAttachmentTypes:
		return &s.AllowedAttachmentTypes
	case KeyLogLevel:
		return &s.LogLevel
	case KeyShopName:
		return &s.Miniapp.ShopName
	case KeySectionTitle:
		return &s.Miniapp.SectionTitle
	case KeyFooterText:
		return &s.Miniapp.FooterText
	case KeyBackgroundColor:
		return &s.Miniapp.BackgroundColor
	case KeyBackgroundImage:
		return &s.Miniapp.BackgroundImage
	case KeyTextColor:
		return &s.Miniapp.TextColor
	case KeyHeadingColor:
		return &s.Miniapp.HeadingColor
	case KeyPriceColor:
		return &s.Miniapp.PriceColor
	case KeyHintColor:
		return &s.Miniapp.HintColor
	case KeyCardBgColor:
		return &s.Miniapp.CardBgColor
	}
	return nil
}

// BackgroundImageID returns the file id behind the background image setting, if it points
// at a stored file.
func (s Settings) BackgroundImageID() (string, bool) {
	v := s.Miniapp.BackgroundImage
	if !strings.HasPrefix(v, FileURLPrefix) {
		return "", false
	}
	id := strings.TrimPrefix(v, FileURLPrefix)
	return id, id != ""
}

// Patch lists the editable settings to change. Nil leaves a setting alone.
type Patch struct {
	ContactTelegramLink    *string
	MaxFileSizeMB          *float64
	AllowedImageTypes      *string
	AllowedAttachmentTypes *string
	LogLevel               *string
	LogMaxBytesMB          *float64

	ShopName        *string
	SectionTitle    *string
	FooterText      *string
	BackgroundColor *string
	TextColor       *string
	HeadingColor    *string
	PriceColor      *string
	HintColor       *string
	CardBgColor     *string
}

// Apply validates and normalises patch against s. It returns the resulting settings and the
// stored representation of every value that actually changed.
func (s Settings) Apply(patch Patch) (Settings, map[string]string, error) {
	out := s
	changes := map[string]string{}

	setString := func(key string, dst *string, v string) {
		if *dst != v {
			*dst = v
			changes[key] = v
		}
	}
	setFloat := func(key string, dst *float64, v float64) {
		if *dst != v {
			*dst = v
			changes[key] = strconv.FormatFloat(v, 'f', -1, 64)
		}
	}

	if v := patch.ContactTelegramLink; v != nil {
		link := textnorm.NormalizeTelegramLink(*v)
		if utf8.RuneCountInString(link) > maxTelegramLen {
			return s, nil, fmt.Errorf("%w: %s", ErrValueTooLong, KeyContactTelegramLink)
		}
		setString(KeyContactTelegramLink, &out.ContactTelegramLink, link)
	}
	if v := patch.MaxFileSizeMB; v != nil {
		if *v <= 0 || *v > maxFileSizeMB {
			return s, nil, ErrInvalidFileSize
		}
		setFloat(KeyMaxFileSizeMB, &out.MaxFileSizeMB, *v)
	}
	if v := patch.AllowedImageTypes; v != nil {
		list, err := normalizeTypeList(*v)
		if err != nil {
			return s, nil, err
		}
		setString(KeyAllowedImageTypes, &out.AllowedImageTypes, list)
	}
	if v := patch.AllowedAttachmentTypes; v != nil {
		list, err := normalizeTypeList(*v)
		if err != nil {
			return s, nil, err
		}
		setString(KeyAllowedAttachmentTypes, &out.AllowedAttachmentTypes, list)
	}
	if v := patch.LogLevel; v != nil {
		level, err := normalizeLogLevel(*v)
		if err != nil {
			return s, nil, err
		}
		setString(KeyLogLevel, &out.LogLevel, level)
	}
	if v := patch.LogMaxBytesMB; v != nil {
		if *v < 0 {
			return s, nil, ErrInvalidLogSize
		}
		setFloat(KeyLogMaxBytesMB, &out.LogMaxBytesMB, *v)
	}

	texts := []struct {
		key   string
		value *string
		dst   *string
		limit int
	}{
		{KeyShopName, patch.ShopName, &out.Miniapp.ShopName, maxTitleLen},
		{KeySectionTitle, patch.SectionTitle, &out.Miniapp.SectionTitle, maxTitleLen},
		{KeyFooterText, patch.FooterText, &out.Miniapp.FooterText, maxFooterLen},
	}
	for _, t := range texts {
		if t.value == nil {
			continue
		}
		v := strings.TrimSpace(*t.value)
		if utf8.RuneCountInString(v) > t.limit {
			return s, nil, fmt.Errorf("%w: %s", ErrValueTooLong, t.key)
		}
		setString(t.key, t.dst, v)
	}

	colors := []struct {
		key   string
		value *string
		dst   *string
	}{
		{KeyBackgroundColor, patch.BackgroundColor, &out.Miniapp.BackgroundColor},
		{KeyTextColor, patch.TextColor, &out.Miniapp.TextColor},
		{KeyHeadingColor, patch.HeadingColor, &out.Miniapp.HeadingColor},
		{KeyPriceColor, patch.PriceColor, &out.Miniapp.PriceColor},
		{KeyHintColor, patch.HintColor, &out.Miniapp.HintColor},
		{KeyCardBgColor, patch.CardBgColor, &out.Miniapp.CardBgColor},
	}
	for _, c := range colors {
		if c.value == nil {
			continue
		}
		hex, ok := textnorm.ParseHexColor(*c.value)
		if !ok {
			return s, nil, fmt.Errorf("%w: %s", ErrInvalidColor, c.key)
		}
		setString(c.key, c.dst, hex)
	}

	return out, changes, nil
}

func normalizeTypeList(csv string) (string, error) {
	var types []string
	for _, part := range strings.Split(csv, ",") {
		t := strings.ToLower(strings.TrimSpace(part))
		if t == "" {
			continue
		}
		slash := strings.IndexByte(t, '/')
		if slash <= 0 || slash == len(t)-1 || strings.ContainsAny(t, " ;") {
			return "", fmt.Errorf("%w: %q", ErrInvalidTypeList, t)
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return "", ErrInvalidTypeList
	}
	return strings.Join(types, ","), nil
}

func normalizeLogLevel(v string) (string, error) {
	level := strings.ToUpper(strings.TrimSpace(v))
	for _, l := range logLevels {
		if l == level {
			return level, nil
		}
	}
	return "", ErrInvalidLogLevel
}

// AggregateID is the outbox aggregate id of the settings singleton.
const AggregateID = "site_settings"

// SettingsUpdatedEvent carries the stored values of the keys that changed.
type SettingsUpdatedEvent struct {
	Changes   map[string]string `json:"changes"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (e *SettingsUpdatedEvent) EventType() string     { return "settings.updated" }
func (e *SettingsUpdatedEvent) AggregateID() string   { return AggregateID }
func (e *SettingsUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }
