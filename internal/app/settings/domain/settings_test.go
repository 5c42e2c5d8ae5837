package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base() Settings {
	return Settings{
		ContactTelegramLink:    "https://t.me/support",
		MaxFileSizeMB:          50,
		AllowedImageTypes:      "image/jpeg,image/png,image/webp",
		AllowedAttachmentTypes: "application/pdf",
		LogLevel:               "INFO",
		LogMaxBytesMB:          100,
		Miniapp:                DefaultMiniapp(),
		APIPort:                8000,
	}
}

func strp(s string) *string     { return &s }
func f64p(f float64) *float64 { return &f }

func TestOverlay(t *testing.T) {
	s := base().Overlay(map[string]string{
		KeyMaxFileSizeMB:   "10",
		KeyLogMaxBytesMB:   "garbage",
		KeyShopName:        "Drills & Co",
		KeyBackgroundImage: "/api/files/abc",
		"unknown_key":      "x",
	})

	assert.Equal(t, 10.0, s.MaxFileSizeMB)
	assert.Equal(t, 100.0, s.LogMaxBytesMB)
	assert.Equal(t, "Drills & Co", s.Miniapp.ShopName)
	id, ok := s.BackgroundImageID()
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

func TestBackgroundImageID_External(t *testing.T) {
	s := base()
	s.Miniapp.BackgroundImage = "https://cdn.example.com/bg.png"
	_, ok := s.BackgroundImageID()
	assert.False(t, ok)
}

func TestApply_NormalisesAndReportsChanges(t *testing.T) {
	out, changes, err := base().Apply(Patch{
		ContactTelegramLink: strp("@shop_help"),
		MaxFileSizeMB:       f64p(25.5),
		AllowedImageTypes:   strp(" IMAGE/PNG, ,image/webp "),
		LogLevel:            strp("debug"),
		SectionTitle:        strp("  Tools "),
		PriceColor:          strp("f0a"),
		TextColor:           strp("#000000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "https://t.me/shop_help", out.ContactTelegramLink)
	assert.Equal(t, "#FF00AA", out.Miniapp.PriceColor)
	assert.Equal(t, map[string]string{
		KeyContactTelegramLink: "https://t.me/shop_help",
		KeyMaxFileSizeMB:       "25.5",
		KeyAllowedImageTypes:   "image/png,image/webp",
		KeyLogLevel:            "DEBUG",
		KeySectionTitle:        "Tools",
		KeyPriceColor:          "#FF00AA",
	}, changes)
}

func TestApply_Rejects(t *testing.T) {
	cases := []struct {
		name  string
		patch Patch
		want  error
	}{
		{"zero size", Patch{MaxFileSizeMB: f64p(0)}, ErrInvalidFileSize},
		{"huge size", Patch{MaxFileSizeMB: f64p(2048)}, ErrInvalidFileSize},
		{"bad type", Patch{AllowedAttachmentTypes: strp("pdf")}, ErrInvalidTypeList},
		{"empty types", Patch{AllowedImageTypes: strp(" , ")}, ErrInvalidTypeList},
		{"bad level", Patch{LogLevel: strp("TRACE")}, ErrInvalidLogLevel},
		{"negative log size", Patch{LogMaxBytesMB: f64p(-1)}, ErrInvalidLogSize},
		{"bad color", Patch{CardBgColor: strp("zzzzzz")}, ErrInvalidColor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := base()
			out, changes, err := s.Apply(tc.patch)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Nil(t, changes)
			assert.Equal(t, s, out)
		})
	}
}

func TestApply_NoChanges(t *testing.T) {
	_, changes, err := base().Apply(Patch{LogLevel: strp("info"), HintColor: strp("#999")})
	require.NoError(t, err)
	assert.Empty(t, changes)
}
