// Package testdouble holds in-memory stand-ins for the product contracts, used by the
// usecase and transport tests.
package testdouble

import (
	"context"
	"sort"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
)

// ReadModel serves whatever the test seeded. Zero value is ready to use.
type ReadModel struct {
	mu          sync.Mutex
	Products    map[string]dto.ProductDTO
	Images      []dto.ImageDTO
	Attachments []dto.AttachmentDTO
	Specs       []dto.SpecDTO
	Variants    []dto.VariantDTO
	Categories  map[string]bool
	Assets      map[string]dto.FileDTO
	Stats       dto.StatsDTO
	AdminPage   dto.AdminProductPage
	PublicPage  dto.PublicProductPage

	LastAdminFilter  dto.AdminListFilter
	LastPublicFilter dto.PublicListFilter
}

func NewReadModel() *ReadModel {
	return &ReadModel{
		Products:   map[string]dto.ProductDTO{},
		Categories: map[string]bool{},
		Assets:     map[string]dto.FileDTO{},
	}
}

// ProductRow is a minimal stored product, unpublished, priced 100.00 RUB.
func ProductRow(id, slug string) dto.ProductDTO {
	price, currency := "100.00", "RUB"
	created := "2026-01-01T10:00:00Z"
	return dto.ProductDTO{
		ProductID:     id,
		Slug:          slug,
		Title:         "Product " + slug,
		PriceAmount:   &price,
		PriceCurrency: &currency,
		CreatedAt:     &created,
		UpdatedAt:     &created,
	}
}

// AddProduct seeds a product row.
func (r *ReadModel) AddProduct(p dto.ProductDTO) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Products == nil {
		r.Products = map[string]dto.ProductDTO{}
	}
	r.Products[p.ProductID] = p
}

func (r *ReadModel) GetProduct(_ context.Context, productID string) (*dto.ProductDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.Products[productID]
	if !ok {
		return nil, spanner.ErrRowNotFound
	}
	return &p, nil
}

func (r *ReadModel) GetProductAggregate(ctx context.Context, productID string) (*dto.ProductAggregateDTO, error) {
	p, err := r.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return r.aggregate(*p), nil
}

func (r *ReadModel) aggregate(p dto.ProductDTO) *dto.ProductAggregateDTO {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := &dto.ProductAggregateDTO{
		Product:     p,
		Images:      []dto.ImageDTO{},
		Attachments: []dto.AttachmentDTO{},
		Specs:       []dto.SpecDTO{},
		Variants:    []dto.VariantDTO{},
	}
	for _, i := range r.Images {
		if i.ProductID == p.ProductID {
			out.Images = append(out.Images, i)
		}
	}
	for _, a := range r.Attachments {
		if a.ProductID == p.ProductID {
			out.Attachments = append(out.Attachments, a)
		}
	}
	for _, s := range r.Specs {
		if s.ProductID == p.ProductID {
			out.Specs = append(out.Specs, s)
		}
	}
	for _, v := range r.Variants {
		if v.ProductID == p.ProductID {
			out.Variants = append(out.Variants, v)
		}
	}
	sort.SliceStable(out.Images, func(a, b int) bool { return out.Images[a].SortOrder < out.Images[b].SortOrder })
	return out
}

func (r *ReadModel) ListAdminProducts(_ context.Context, filter dto.AdminListFilter) (*dto.AdminProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastAdminFilter = filter
	page := r.AdminPage
	page.Page, page.PerPage = filter.Page, filter.PerPage
	return &page, nil
}

func (r *ReadModel) ListManufacturers(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, p := range r.Products {
		if p.Manufacturer != nil && *p.Manufacturer != "" && !seen[*p.Manufacturer] {
			seen[*p.Manufacturer] = true
			out = append(out, *p.Manufacturer)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *ReadModel) GetStats(_ context.Context) (*dto.StatsDTO, error) {
	s := r.Stats
	return &s, nil
}

func (r *ReadModel) CategoryExists(_ context.Context, categoryID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Categories[categoryID], nil
}

func (r *ReadModel) ListPublishedProducts(_ context.Context, filter dto.PublicListFilter) (*dto.PublicProductPage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.LastPublicFilter = filter
	page := r.PublicPage
	page.Page, page.PerPage = filter.Page, filter.PerPage
	return &page, nil
}

func (r *ReadModel) GetPublishedProduct(_ context.Context, slug string) (*dto.ProductAggregateDTO, error) {
	r.mu.Lock()
	var found *dto.ProductDTO
	for _, p := range r.Products {
		if p.Slug == slug && p.IsPublished {
			found = &p
		}
	}
	r.mu.Unlock()
	if found == nil {
		return nil, spanner.ErrRowNotFound
	}
	return r.aggregate(*found), nil
}

func (r *ReadModel) GetImage(_ context.Context, productID, imageID string) (*dto.ImageDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.Images {
		if i.ProductID == productID && i.ImageID == imageID {
			return &i, nil
		}
	}
	return nil, spanner.ErrRowNotFound
}

func (r *ReadModel) ListImages(_ context.Context, productID string) ([]dto.ImageDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []dto.ImageDTO{}
	for _, i := range r.Images {
		if i.ProductID == productID {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].SortOrder < out[b].SortOrder })
	return out, nil
}

func (r *ReadModel) GetAttachment(_ context.Context, productID, attachmentID string) (*dto.AttachmentDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Attachments {
		if a.ProductID == productID && a.AttachmentID == attachmentID {
			return &a, nil
		}
	}
	return nil, spanner.ErrRowNotFound
}

func (r *ReadModel) GetSpec(_ context.Context, productID, specID string) (*dto.SpecDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.Specs {
		if s.ProductID == productID && s.SpecID == specID {
			return &s, nil
		}
	}
	return nil, spanner.ErrRowNotFound
}

func (r *ReadModel) GetVariant(_ context.Context, productID, variantID string) (*dto.VariantDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.Variants {
		if v.ProductID == productID && v.VariantID == variantID {
			return &v, nil
		}
	}
	return nil, spanner.ErrRowNotFound
}

func (r *ReadModel) ResolveFile(_ context.Context, fileID string) (*dto.FileDTO, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, i := range r.Images {
		if i.ImageID == fileID {
			pid := i.ProductID
			return &dto.FileDTO{FileID: i.ImageID, ProductID: &pid, Kind: dto.FileKindImage, FilePath: i.FilePath, Mime: i.Mime, Filename: i.ImageID}, nil
		}
	}
	for _, a := range r.Attachments {
		if a.AttachmentID == fileID {
			pid := a.ProductID
			return &dto.FileDTO{FileID: a.AttachmentID, ProductID: &pid, Kind: dto.FileKindAttachment, FilePath: a.FilePath, Mime: a.Mime, Filename: a.Title}, nil
		}
	}
	if f, ok := r.Assets[fileID]; ok {
		return &f, nil
	}
	return nil, spanner.ErrRowNotFound
}

// Policies hands out fixed upload policies.
type Policies struct {
	Image      domain.UploadPolicy
	Attachment domain.UploadPolicy
}

func (p Policies) ImagePolicy(context.Context) (domain.UploadPolicy, error) {
	return p.Image, nil
}

func (p Policies) AttachmentPolicy(context.Context) (domain.UploadPolicy, error) {
	return p.Attachment, nil
}

// Views is a ViewCounter over a slug → count map. Unknown slugs are not found.
type Views struct {
	mu     sync.Mutex
	Counts map[string]int64
}

func (v *Views) IncrementViews(_ context.Context, slug string) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	n, ok := v.Counts[slug]
	if !ok {
		return 0, spanner.ErrRowNotFound
	}
	n++
	v.Counts[slug] = n
	return n, nil
}
