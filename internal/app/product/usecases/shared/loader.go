package shared

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/showcase-catalog-service/internal/app/product/contracts"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/queries/rowscan"
)

// LoadProduct reads a product through the read model and rebuilds the aggregate root.
func LoadProduct(ctx context.Context, rm contracts.ReadModel, productID string) (*domain.Product, error) {
	out, err := rm.GetProduct(ctx, productID)
	if errors.Is(err, spanner.ErrRowNotFound) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return ProductFromDTO(*out)
}

// ProductFromDTO rebuilds a product from its stored representation.
func ProductFromDTO(d dto.ProductDTO) (*domain.Product, error) {
	var price *domain.Money
	if d.PriceAmount != nil {
		m, err := domain.NewMoneyFromDecimal(*d.PriceAmount)
		if err != nil {
			return nil, fmt.Errorf("stored price of %s: %w", d.ProductID, err)
		}
		price = m
	}
	details := domain.Details{
		Slug:             d.Slug,
		Title:            d.Title,
		SKU:              d.SKU,
		Manufacturer:     d.Manufacturer,
		CategoryID:       d.CategoryID,
		ShortDescription: d.ShortDescription,
		Description:      d.Description,
		Hashtags:         d.Hashtags,
		Price:            price,
		Currency:         d.PriceCurrency,
		IsPublished:      d.IsPublished,
		SortOrder:        int(d.SortOrder),
	}
	return domain.ReconstructProduct(
		d.ProductID,
		details,
		d.ViewCount,
		rowscan.ParseTime(d.CreatedAt),
		rowscan.ParseTime(d.UpdatedAt),
	), nil
}

func ImageFromDTO(d dto.ImageDTO) *domain.Image {
	file := domain.StoredFile{Key: d.FilePath}
	if d.Mime != nil {
		file.Mime = *d.Mime
	}
	if d.SizeBytes != nil {
		file.SizeBytes = *d.SizeBytes
	}
	return domain.ReconstructImage(d.ImageID, d.ProductID, file, d.Alt, int(d.SortOrder),
		rowscan.ParseTime(d.CreatedAt))
}

func SpecFromDTO(d dto.SpecDTO) *domain.Spec {
	return domain.ReconstructSpec(d.SpecID, d.ProductID, domain.SpecFields{
		Name:      d.Name,
		Value:     d.Value,
		Unit:      d.Unit,
		SortOrder: int(d.SortOrder),
	})
}

func VariantFromDTO(d dto.VariantDTO) *domain.Variant {
	return domain.ReconstructVariant(d.VariantID, d.ProductID, domain.VariantFields{
		OptionName:  d.OptionName,
		OptionValue: d.OptionValue,
		StockQty:    int(d.StockQty),
		InOrderQty:  int(d.InOrderQty),
		SortOrder:   int(d.SortOrder),
	})
}

// NotFound converts spanner.ErrRowNotFound into the given domain error.
func NotFound(err, domainErr error) error {
	if errors.Is(err, spanner.ErrRowNotFound) {
		return domainErr
	}
	return err
}

// CheckCategory returns ErrUnknownCategory when categoryID is set and no such category exists.
func CheckCategory(ctx context.Context, rm contracts.ReadModel, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	ok, err := rm.CategoryExists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownCategory
	}
	return nil
}
