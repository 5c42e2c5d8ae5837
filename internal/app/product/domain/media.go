package domain

import (
	"path"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxAltLen             = 512
	maxAttachmentTitleLen = 512
	maxMimeLen            = 128
)

// StoredFile describes bytes already written to object storage.
type StoredFile struct {
	Key       string
	Mime      string
	SizeBytes int64
}

// Image is a product picture. Its id doubles as the public file id.
type Image struct {
	id        string
	productID string
	file      StoredFile
	alt       *string
	sortOrder int
	createdAt time.Time
	changes   *ChangeTracker
}

// NewImage validates and builds an image for an already stored file.
func NewImage(id, productID string, file StoredFile, alt *string, sortOrder int, now time.Time) (*Image, error) {
	alt = normalizeOptional(alt)
	if tooLong(alt, maxAltLen) {
		return nil, ErrAltTooLong
	}
	file.Mime = truncateRunes(file.Mime, maxMimeLen)
	return &Image{
		id:        id,
		productID: productID,
		file:      file,
		alt:       alt,
		sortOrder: sortOrder,
		createdAt: now,
		changes:   NewChangeTracker(),
	}, nil
}

// ReconstructImage rebuilds an image from a stored row.
func ReconstructImage(id, productID string, file StoredFile, alt *string, sortOrder int, createdAt time.Time) *Image {
	return &Image{
		id:        id,
		productID: productID,
		file:      file,
		alt:       alt,
		sortOrder: sortOrder,
		createdAt: createdAt,
		changes:   NewChangeTracker(),
	}
}

func (i *Image) ID() string              { return i.id }
func (i *Image) ProductID() string       { return i.productID }
func (i *Image) File() StoredFile        { return i.file }
func (i *Image) Alt() *string            { return i.alt }
func (i *Image) SortOrder() int          { return i.sortOrder }
func (i *Image) CreatedAt() time.Time    { return i.createdAt }
func (i *Image) Changes() *ChangeTracker { return i.changes }

// MoveTo sets the display position. Returns false when the position is unchanged.
func (i *Image) MoveTo(sortOrder int) bool {
	if i.sortOrder == sortOrder {
		return false
	}
	i.sortOrder = sortOrder
	i.changes.MarkDirty(FieldSortOrder)
	return true
}

// Attachment is a downloadable document such as a manual or a certificate.
type Attachment struct {
	id        string
	productID string
	title     string
	file      StoredFile
	sortOrder int
	createdAt time.Time
}

// NewAttachment builds an attachment. An empty title falls back to the uploaded
// file name, then to "Attachment".
func NewAttachment(id, productID, title, filename string, file StoredFile, sortOrder int, now time.Time) *Attachment {
	return &Attachment{
		id:        id,
		productID: productID,
		title:     AttachmentTitle(title, filename),
		file:      StoredFile{Key: file.Key, Mime: truncateRunes(file.Mime, maxMimeLen), SizeBytes: file.SizeBytes},
		sortOrder: sortOrder,
		createdAt: now,
	}
}

func (a *Attachment) ID() string           { return a.id }
func (a *Attachment) ProductID() string    { return a.productID }
func (a *Attachment) Title() string        { return a.title }
func (a *Attachment) File() StoredFile     { return a.file }
func (a *Attachment) SortOrder() int       { return a.sortOrder }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

// AttachmentTitle picks the display title of an uploaded document.
func AttachmentTitle(title, filename string) string {
	if t := strings.TrimSpace(title); t != "" {
		return truncateRunes(t, maxAttachmentTitleLen)
	}
	if f := strings.TrimSpace(path.Base(strings.ReplaceAll(filename, "\\", "/"))); f != "" && f != "." && f != "/" {
		return truncateRunes(f, maxAttachmentTitleLen)
	}
	return "Attachment"
}

// ImageKey is the storage key of a product image.
func ImageKey(productID, imageID, filename string) string {
	ext := FileExt(filename)
	if ext == "" {
		ext = ".jpg"
	}
	return "products/" + productID + "/images/" + imageID + ext
}

// AttachmentKey is the storage key of a product attachment. The extension may be empty.
func AttachmentKey(productID, attachmentID, filename string) string {
	return "products/" + productID + "/attachments/" + attachmentID + FileExt(filename)
}

// FileExt returns the lowercased extension of filename including the dot, or "".
func FileExt(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	ext := path.Ext(base)
	if ext == base || ext == "." {
		return ""
	}
	return strings.ToLower(ext)
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
