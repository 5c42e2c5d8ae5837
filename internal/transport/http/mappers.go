package httptransport

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	categorydto "github.com/murkotick/showcase-catalog-service/internal/app/category/dto"
	"github.com/murkotick/showcase-catalog-service/internal/app/product/dto"
	settingsdomain "github.com/murkotick/showcase-catalog-service/internal/app/settings/domain"
)

func priceFromDTO(s *string) *decimal.Decimal {
	if s == nil {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}

func fileURLPtr(id *string) *string {
	if id == nil {
		return nil
	}
	u := apicontract.FileURL(*id)
	return &u
}

func mapAdminPage(page *dto.AdminProductPage) apicontract.ProductListResponse {
	out := apicontract.ProductListResponse{
		Items:   make([]apicontract.ProductSummary, 0, len(page.Items)),
		Total:   int(page.Total),
		Page:    page.Page,
		PerPage: page.PerPage,
	}
	for _, row := range page.Items {
		p := row.Product
		item := apicontract.ProductSummary{
			ID:            p.ProductID,
			Slug:          p.Slug,
			Title:         p.Title,
			SKU:           p.SKU,
			Manufacturer:  p.Manufacturer,
			CategoryID:    p.CategoryID,
			CategoryName:  row.CategoryName,
			PriceAmount:   priceFromDTO(p.PriceAmount),
			PriceCurrency: p.PriceCurrency,
			IsPublished:   p.IsPublished,
			SortOrder:     int(p.SortOrder),
			ViewCount:     p.ViewCount,
			ImageURL:      fileURLPtr(row.CoverImageID),
			Variants:      make([]apicontract.VariantSummary, 0, len(row.Variants)),
		}
		for _, v := range row.Variants {
			item.Variants = append(item.Variants, apicontract.VariantSummary{
				ID:          v.VariantID,
				OptionName:  v.OptionName,
				OptionValue: v.OptionValue,
				StockQty:    int(v.StockQty),
				InOrderQty:  int(v.InOrderQty),
			})
		}
		out.Items = append(out.Items, item)
	}
	return out
}

func mapAggregate(agg *dto.ProductAggregateDTO) apicontract.ProductAggregate {
	p := agg.Product
	out := apicontract.ProductAggregate{
		ID:               p.ProductID,
		Slug:             p.Slug,
		Title:            p.Title,
		SKU:              p.SKU,
		Manufacturer:     p.Manufacturer,
		CategoryID:       p.CategoryID,
		ViewCount:        p.ViewCount,
		ShortDescription: p.ShortDescription,
		Description:      p.Description,
		Hashtags:         p.Hashtags,
		PriceAmount:      priceFromDTO(p.PriceAmount),
		PriceCurrency:    p.PriceCurrency,
		IsPublished:      p.IsPublished,
		SortOrder:        int(p.SortOrder),
		Images:           mapImages(agg.Images),
		Attachments:      mapAttachments(agg.Attachments),
		Specs:            mapSpecs(agg.Specs),
		Variants:         make([]apicontract.Variant, 0, len(agg.Variants)),
	}
	for _, v := range agg.Variants {
		out.Variants = append(out.Variants, apicontract.Variant{
			ID:          v.VariantID,
			OptionName:  v.OptionName,
			OptionValue: v.OptionValue,
			StockQty:    int(v.StockQty),
			InOrderQty:  int(v.InOrderQty),
			SortOrder:   int(v.SortOrder),
		})
	}
	return out
}

func mapImages(images []dto.ImageDTO) []apicontract.Image {
	out := make([]apicontract.Image, 0, len(images))
	for _, img := range images {
		out = append(out, apicontract.Image{
			ID:        img.ImageID,
			URL:       apicontract.FileURL(img.ImageID),
			Alt:       img.Alt,
			SortOrder: int(img.SortOrder),
		})
	}
	return out
}

func mapAttachments(attachments []dto.AttachmentDTO) []apicontract.Attachment {
	out := make([]apicontract.Attachment, 0, len(attachments))
	for _, a := range attachments {
		out = append(out, apicontract.Attachment{
			ID:        a.AttachmentID,
			Title:     a.Title,
			URL:       apicontract.FileURL(a.AttachmentID),
			SortOrder: int(a.SortOrder),
			Mime:      a.Mime,
			SizeBytes: a.SizeBytes,
		})
	}
	return out
}

func mapSpecs(specs []dto.SpecDTO) []apicontract.Spec {
	out := make([]apicontract.Spec, 0, len(specs))
	for _, s := range specs {
		out = append(out, apicontract.Spec{
			ID:        s.SpecID,
			Name:      s.Name,
			Value:     s.Value,
			Unit:      s.Unit,
			SortOrder: int(s.SortOrder),
		})
	}
	return out
}

func mapPublicPage(page *dto.PublicProductPage) apicontract.StorefrontList {
	out := apicontract.StorefrontList{
		Items:   make([]apicontract.StorefrontItem, 0, len(page.Items)),
		Total:   int(page.Total),
		Page:    page.Page,
		PerPage: page.PerPage,
	}
	for _, row := range page.Items {
		out.Items = append(out.Items, apicontract.StorefrontItem{
			ID:               row.ProductID,
			Slug:             row.Slug,
			Title:            row.Title,
			ShortDescription: row.ShortDescription,
			PriceAmount:      priceFromDTO(row.PriceAmount),
			PriceCurrency:    row.PriceCurrency,
			ImageURL:         fileURLPtr(row.CoverImageID),
		})
	}
	return out
}

func mapPublicDetail(agg *dto.ProductAggregateDTO) apicontract.StorefrontDetail {
	p := agg.Product
	tags := []string{}
	if p.Hashtags != nil {
		tags = append(tags, strings.Fields(*p.Hashtags)...)
	}
	return apicontract.StorefrontDetail{
		ID:               p.ProductID,
		Slug:             p.Slug,
		Title:            p.Title,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		PriceAmount:      priceFromDTO(p.PriceAmount),
		PriceCurrency:    p.PriceCurrency,
		Hashtags:         tags,
		Images:           mapImages(agg.Images),
		Attachments:      mapAttachments(agg.Attachments),
		Specs:            mapSpecs(agg.Specs),
	}
}

func mapCategory(c categorydto.CategoryDTO) apicontract.Category {
	return apicontract.Category{
		ID:        c.CategoryID,
		Name:      c.Name,
		Slug:      c.Slug,
		SortOrder: int(c.SortOrder),
		ParentID:  c.ParentID,
	}
}

func mapSettings(s settingsdomain.Settings) apicontract.Settings {
	return apicontract.Settings{
		ContactTelegramLink:           s.ContactTelegramLink,
		StorageMaxFileSizeMB:          s.MaxFileSizeMB,
		StorageAllowedImageTypes:      s.AllowedImageTypes,
		StorageAllowedAttachmentTypes: s.AllowedAttachmentTypes,
		LogLevel:                      s.LogLevel,
		LogMaxBytesMB:                 s.LogMaxBytesMB,
		MiniappShopName:               s.Miniapp.ShopName,
		MiniappSectionTitle:           s.Miniapp.SectionTitle,
		MiniappFooterText:             s.Miniapp.FooterText,
		MiniappBackgroundColor:        s.Miniapp.BackgroundColor,
		MiniappBackgroundImage:        s.Miniapp.BackgroundImage,
		MiniappTextColor:              s.Miniapp.TextColor,
		MiniappHeadingColor:           s.Miniapp.HeadingColor,
		MiniappPriceColor:             s.Miniapp.PriceColor,
		MiniappHintColor:              s.Miniapp.HintColor,
		MiniappCardBgColor:            s.Miniapp.CardBgColor,
		APIPort:                       s.APIPort,
		CORSOrigins:                   s.CORSOrigins,
		StoragePath:                   s.StoragePath,
	}
}

func mapMiniapp(m settingsdomain.Miniapp, telegram string) apicontract.MiniappSettings {
	return apicontract.MiniappSettings{
		ShopName:            m.ShopName,
		SectionTitle:        m.SectionTitle,
		FooterText:          m.FooterText,
		BackgroundColor:     m.BackgroundColor,
		BackgroundImage:     m.BackgroundImage,
		TextColor:           m.TextColor,
		HeadingColor:        m.HeadingColor,
		PriceColor:          m.PriceColor,
		HintColor:           m.HintColor,
		CardBgColor:         m.CardBgColor,
		ContactTelegramLink: telegram,
	}
}

func settingsPatchFromContract(in apicontract.SettingsPatch) settingsdomain.Patch {
	return settingsdomain.Patch{
		ContactTelegramLink:    in.ContactTelegramLink,
		MaxFileSizeMB:          in.StorageMaxFileSizeMB,
		AllowedImageTypes:      in.StorageAllowedImageTypes,
		AllowedAttachmentTypes: in.StorageAllowedAttachmentTypes,
		LogLevel:               in.LogLevel,
		LogMaxBytesMB:          in.LogMaxBytesMB,
		ShopName:               in.MiniappShopName,
		SectionTitle:           in.MiniappSectionTitle,
		FooterText:             in.MiniappFooterText,
		BackgroundColor:        in.MiniappBackgroundColor,
		TextColor:              in.MiniappTextColor,
		HeadingColor:           in.MiniappHeadingColor,
		PriceColor:             in.MiniappPriceColor,
		HintColor:              in.MiniappHintColor,
		CardBgColor:            in.MiniappCardBgColor,
	}
}
