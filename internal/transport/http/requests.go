package httptransport

import (
	"github.com/shopspring/decimal"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	categorydomain "github.com/murkotick/showcase-catalog-service/internal/app/category/domain"
	productdomain "github.com/murkotick/showcase-catalog-service/internal/app/product/domain"
)

func moneyFromDecimal(d *decimal.Decimal) *productdomain.Money {
	if d == nil {
		return nil
	}
	return productdomain.NewMoneyFromRat(d.Rat())
}

func detailsFromInput(in apicontract.ProductInput) productdomain.Details {
	return productdomain.Details{
		Slug:             in.Slug,
		Title:            in.Title,
		SKU:              in.SKU,
		Manufacturer:     in.Manufacturer,
		CategoryID:       in.CategoryID,
		ShortDescription: in.ShortDescription,
		Description:      in.Description,
		Hashtags:         in.Hashtags,
		Price:            moneyFromDecimal(in.PriceAmount),
		Currency:         in.PriceCurrency,
		IsPublished:      in.IsPublished,
		SortOrder:        in.SortOrder,
	}
}

func change[T any](p *T) productdomain.Change[T] {
	if p == nil {
		return productdomain.Change[T]{}
	}
	return productdomain.SetTo(*p)
}

func nullableChange(n apicontract.Nullable[string]) productdomain.Change[*string] {
	if !n.Set {
		return productdomain.Change[*string]{}
	}
	return productdomain.SetTo(n.Ptr())
}

func productPatchFromContract(in apicontract.ProductPatch) productdomain.Patch {
	patch := productdomain.Patch{
		Slug:             change(in.Slug),
		Title:            change(in.Title),
		SKU:              nullableChange(in.SKU),
		Manufacturer:     nullableChange(in.Manufacturer),
		CategoryID:       nullableChange(in.CategoryID),
		ShortDescription: nullableChange(in.ShortDescription),
		Description:      nullableChange(in.Description),
		Hashtags:         nullableChange(in.Hashtags),
		IsPublished:      change(in.IsPublished),
		SortOrder:        change(in.SortOrder),
	}
	if in.PriceAmount.Set {
		patch.Price = productdomain.SetTo(moneyFromDecimal(in.PriceAmount.Ptr()))
	}
	if in.PriceCurrency != nil {
		patch.Currency = productdomain.SetTo(in.PriceCurrency)
	}
	return patch
}

func specFieldsFromInput(in apicontract.SpecInput) productdomain.SpecFields {
	return productdomain.SpecFields{Name: in.Name, Value: in.Value, Unit: in.Unit, SortOrder: in.SortOrder}
}

func specPatchFromContract(in apicontract.SpecPatch) productdomain.SpecPatch {
	return productdomain.SpecPatch{
		Name:      change(in.Name),
		Value:     change(in.Value),
		Unit:      nullableChange(in.Unit),
		SortOrder: change(in.SortOrder),
	}
}

func variantFieldsFromInput(in apicontract.VariantInput) productdomain.VariantFields {
	return productdomain.VariantFields{
		OptionName:  in.OptionName,
		OptionValue: in.OptionValue,
		StockQty:    in.StockQty,
		InOrderQty:  in.InOrderQty,
		SortOrder:   in.SortOrder,
	}
}

func variantPatchFromContract(in apicontract.VariantPatch) productdomain.VariantPatch {
	return productdomain.VariantPatch{
		OptionName:  change(in.OptionName),
		OptionValue: change(in.OptionValue),
		StockQty:    change(in.StockQty),
		InOrderQty:  change(in.InOrderQty),
		SortOrder:   change(in.SortOrder),
	}
}

func categoryFieldsFromInput(in apicontract.CategoryInput) categorydomain.Fields {
	return categorydomain.Fields{Name: in.Name, Slug: in.Slug, SortOrder: in.SortOrder, ParentID: in.ParentID}
}

func categoryPatchFromContract(in apicontract.CategoryPatch) categorydomain.Patch {
	var patch categorydomain.Patch
	if in.Name != nil {
		patch.Name = categorydomain.SetTo(*in.Name)
	}
	if in.Slug != nil {
		patch.Slug = categorydomain.SetTo(*in.Slug)
	}
	if in.SortOrder != nil {
		patch.SortOrder = categorydomain.SetTo(*in.SortOrder)
	}
	if in.ParentID.Set {
		patch.ParentID = categorydomain.SetTo(in.ParentID.Ptr())
	}
	return patch
}
