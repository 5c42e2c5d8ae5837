package domain

import "errors"

// Domain errors for the Product aggregate
var (
	// ErrProductNotFound indicates that a product with the given ID (or published slug) does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrSlugTaken indicates another product already uses the slug.
	ErrSlugTaken = errors.New("slug is already used by another product")

	// ErrUnknownCategory indicates category_id references no category.
	ErrUnknownCategory = errors.New("category does not exist")
)

// Domain errors for Product validation
var (
	ErrEmptySlug         = errors.New("slug cannot be empty")
	ErrInvalidSlug       = errors.New("slug must be lowercase latin letters, digits or underscores separated by single hyphens")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title exceeds maximum length of 512 characters")
	ErrSKUTooLong        = errors.New("sku exceeds maximum length of 64 characters")
	ErrManufacturerLong  = errors.New("manufacturer exceeds maximum length of 255 characters")
	ErrHashtagsTooLong   = errors.New("hashtags exceed maximum length of 1024 characters")
	ErrInvalidCurrency   = errors.New("price currency must be a three-letter code")
	ErrInvalidCategoryID = errors.New("category_id must be a UUID")
)

// Domain errors for the Money value object
var (
	// ErrNegativePrice indicates an attempt to set a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidPrice indicates a price with more than two decimals or more than twelve integer digits.
	ErrInvalidPrice = errors.New("price must have at most 12 integer digits and 2 decimals")
)

// Domain errors for owned members (images, attachments, specs, variants)
var (
	ErrImageNotFound      = errors.New("image not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrSpecNotFound       = errors.New("spec not found")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrFileNotFound       = errors.New("file not found")

	ErrEmptySpecName    = errors.New("spec name cannot be empty")
	ErrEmptySpecValue   = errors.New("spec value cannot be empty")
	ErrSpecFieldTooLong = errors.New("spec name, value or unit exceeds maximum length")
	ErrEmptyOption      = errors.New("variant option name and value cannot be empty")
	ErrOptionTooLong    = errors.New("variant option name or value exceeds maximum length")
	ErrNegativeQuantity = errors.New("variant quantities cannot be negative")
	ErrAltTooLong       = errors.New("image alt text exceeds maximum length of 512 characters")

	// ErrInvalidOrder indicates a reorder list that is not a permutation of the product's images.
	ErrInvalidOrder = errors.New("image order must list every image of the product exactly once")
)

// Domain errors for uploads
var (
	// ErrUnsupportedMediaType indicates a content type outside the configured allow-list.
	ErrUnsupportedMediaType = errors.New("file type is not allowed")

	// ErrFileTooLarge indicates an upload above the configured size limit.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")

	// ErrEmptyFile indicates an upload without content.
	ErrEmptyFile = errors.New("file is empty")
)
