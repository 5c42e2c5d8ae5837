// Package editor holds the local state of one product aggregate while it is edited and
// issues one API call per user action.
//
// An Editor is driven by a single caller and is not safe for concurrent use.
package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
	"github.com/murkotick/showcase-catalog-service/internal/pkg/textnorm"
)

type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseSaving
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseSaving:
		return "saving"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

var (
	// ErrNotPersisted is returned by collection actions before the product has been created.
	ErrNotPersisted = errors.New("save the product before editing images, attachments, specs or variants")
	ErrInvalidPrice = errors.New("price must be a decimal number")
)

// Client is the part of the admin client the editor calls.
type Client interface {
	GetProduct(ctx context.Context, productID string) (*apicontract.ProductAggregate, error)
	CreateProduct(ctx context.Context, in apicontract.ProductInput) (*apicontract.CreatedProduct, error)
	UpdateProduct(ctx context.Context, productID string, patch apicontract.ProductPatch) (*apicontract.IDResponse, error)

	AddSpec(ctx context.Context, productID string, in apicontract.SpecInput) (string, error)
	UpdateSpec(ctx context.Context, productID, specID string, patch apicontract.SpecPatch) error
	DeleteSpec(ctx context.Context, productID, specID string) error

	AddVariant(ctx context.Context, productID string, in apicontract.VariantInput) (string, error)
	UpdateVariant(ctx context.Context, productID, variantID string, patch apicontract.VariantPatch) error
	DeleteVariant(ctx context.Context, productID, variantID string) error

	UploadImage(ctx context.Context, productID string, f admin.File, alt string, sortOrder int) (*apicontract.UploadedFile, error)
	UpdateImageSort(ctx context.Context, productID, imageID string, sortOrder int) error
	ReorderImages(ctx context.Context, productID string, imageIDs []string) error

	UploadAttachment(ctx context.Context, productID string, f admin.File, title string, sortOrder int) (*apicontract.UploadedFile, error)

	// DeleteFile removes an image or an attachment by its file id.
	DeleteFile(ctx context.Context, fileID string) error
}

// Fields is the scalar part of the product as typed into the form. Empty optional fields
// are sent as null.
type Fields struct {
	Title            string
	Slug             string
	SKU              string
	Manufacturer     string
	CategoryID       string
	ShortDescription string
	Description      string
	Hashtags         string
	Price            string
	Currency         string
	IsPublished      bool
	SortOrder        int
}

func fieldsFrom(p *apicontract.ProductAggregate) Fields {
	f := Fields{
		Title:            p.Title,
		Slug:             p.Slug,
		SKU:              deref(p.SKU),
		Manufacturer:     deref(p.Manufacturer),
		CategoryID:       deref(p.CategoryID),
		ShortDescription: deref(p.ShortDescription),
		Description:      deref(p.Description),
		Hashtags:         deref(p.Hashtags),
		Currency:         deref(p.PriceCurrency),
		IsPublished:      p.IsPublished,
		SortOrder:        p.SortOrder,
	}
	if p.PriceAmount != nil {
		f.Price = p.PriceAmount.String()
	}
	return f
}

// Input builds the full scalar field set sent on save.
func (f Fields) Input() (apicontract.ProductInput, error) {
	in := apicontract.ProductInput{
		Slug:             strings.TrimSpace(f.Slug),
		Title:            strings.TrimSpace(f.Title),
		SKU:              opt(f.SKU),
		Manufacturer:     opt(f.Manufacturer),
		CategoryID:       opt(f.CategoryID),
		ShortDescription: opt(f.ShortDescription),
		Description:      opt(f.Description),
		Hashtags:         opt(f.Hashtags),
		PriceCurrency:    opt(strings.ToUpper(f.Currency)),
		IsPublished:      f.IsPublished,
		SortOrder:        f.SortOrder,
	}
	if p := strings.TrimSpace(f.Price); p != "" {
		amount, err := decimal.NewFromString(strings.ReplaceAll(p, ",", "."))
		if err != nil {
			return apicontract.ProductInput{}, ErrInvalidPrice
		}
		in.PriceAmount = &amount
	}
	return in, nil
}

type Option func(*Editor)

func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// Editor is the editing session of one product.
type Editor struct {
	client Client
	logger *zap.Logger

	id          string
	phase       Phase
	message     string
	slugTouched bool
	fields      Fields
	viewCount   int64

	images      []apicontract.Image
	attachments []apicontract.Attachment
	specs       []apicontract.Spec
	variants    []apicontract.Variant
}

// New starts an editor for a product that does not exist yet.
func New(client Client, opts ...Option) *Editor {
	e := &Editor{client: client, logger: zap.NewNop(), phase: PhaseReady}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Open starts an editor for an existing product and loads it. A failed load leaves the
// editor in PhaseError; Reload retries.
func Open(ctx context.Context, client Client, productID string, opts ...Option) (*Editor, error) {
	e := New(client, opts...)
	e.id = productID
	e.phase = PhaseLoading
	if err := e.load(ctx); err != nil {
		return e, err
	}
	return e, nil
}

func (e *Editor) ID() string       { return e.id }
func (e *Editor) IsNew() bool      { return e.id == "" }
func (e *Editor) Phase() Phase     { return e.phase }
func (e *Editor) Fields() Fields   { return e.fields }
func (e *Editor) ViewCount() int64 { return e.viewCount }

// Message is the error shown to the user. It stays readable until the next action.
func (e *Editor) Message() string { return e.message }

func (e *Editor) Images() []apicontract.Image           { return e.images }
func (e *Editor) Attachments() []apicontract.Attachment { return e.attachments }
func (e *Editor) Specs() []apicontract.Spec             { return e.specs }
func (e *Editor) Variants() []apicontract.Variant       { return e.variants }

// SetTitle updates the title and derives the slug while the product is new and the user has
// not typed one, or whenever the slug is empty.
func (e *Editor) SetTitle(title string) {
	e.begin()
	e.fields.Title = title
	if (e.IsNew() && !e.slugTouched) || strings.TrimSpace(e.fields.Slug) == "" {
		e.fields.Slug = textnorm.GenerateSlug(title)
	}
}

func (e *Editor) SetSlug(slug string) {
	e.begin()
	e.fields.Slug = slug
	e.slugTouched = slug != ""
}

// SetHashtags stores the raw text. Normalisation happens in BlurHashtags.
func (e *Editor) SetHashtags(text string) {
	e.begin()
	e.fields.Hashtags = text
}

func (e *Editor) BlurHashtags() {
	e.fields.Hashtags = textnorm.NormalizeHashtags(e.fields.Hashtags)
}

// Edit changes any other scalar field.
func (e *Editor) Edit(edit func(*Fields)) {
	e.begin()
	edit(&e.fields)
}

// Reload fetches the aggregate again. It is a no-op for a new product.
func (e *Editor) Reload(ctx context.Context) error {
	if e.IsNew() {
		return nil
	}
	e.begin()
	e.phase = PhaseLoading
	return e.load(ctx)
}

// Submit saves the scalar fields. Creating switches the editor to the new product in place
// and loads it; updating keeps the local fields as they are.
func (e *Editor) Submit(ctx context.Context) error {
	e.begin()
	in, err := e.fields.Input()
	if err != nil {
		return e.fail(err)
	}

	e.phase = PhaseSaving
	if e.IsNew() {
		created, err := e.client.CreateProduct(ctx, in)
		if err != nil {
			return e.fail(err)
		}
		e.id = created.ID
		e.fields.Slug = created.Slug
		e.slugTouched = true
		e.logger.Info("product created", zap.String("product_id", e.id), zap.String("slug", created.Slug))
		e.phase = PhaseLoading
		return e.load(ctx)
	}

	if _, err := e.client.UpdateProduct(ctx, e.id, apicontract.PatchFromInput(in)); err != nil {
		return e.fail(err)
	}
	e.fields.Slug = in.Slug
	e.phase = PhaseReady
	return nil
}

func (e *Editor) load(ctx context.Context) error {
	p, err := e.client.GetProduct(ctx, e.id)
	if err != nil {
		return e.fail(err)
	}
	e.fields = fieldsFrom(p)
	e.slugTouched = p.Slug != ""
	e.viewCount = p.ViewCount
	e.images = p.Images
	e.attachments = p.Attachments
	e.specs = p.Specs
	e.variants = p.Variants
	e.phase = PhaseReady
	return nil
}

// begin clears a previous error. Every action starts with it.
func (e *Editor) begin() {
	if e.phase == PhaseError {
		e.phase = PhaseReady
		e.message = ""
	}
}

// fail records err for display. An expired session is handled by the client's redirect
// and is not shown inline.
func (e *Editor) fail(err error) error {
	if errors.Is(err, admin.ErrUnauthorized) {
		e.phase = PhaseReady
		return err
	}
	e.phase = PhaseError
	e.message = admin.UserMessage(err)
	e.logger.Debug("editor action failed", zap.String("product_id", e.id), zap.Error(err))
	return err
}

func (e *Editor) guard() error {
	e.begin()
	if e.IsNew() {
		return ErrNotPersisted
	}
	return nil
}

func opt(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
