package admin

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
)

// File is one file to upload.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

func (c *Client) AddSpec(ctx context.Context, productID string, in apicontract.SpecInput) (string, error) {
	var out apicontract.IDResponse
	if err := c.callJSON(ctx, http.MethodPost, endpoint("admin/products", productID, "specs"), in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateSpec(ctx context.Context, productID, specID string, patch apicontract.SpecPatch) error {
	var out apicontract.IDResponse
	return c.callJSON(ctx, http.MethodPut, endpoint("admin/products", productID, "specs", specID), patch, &out)
}

func (c *Client) DeleteSpec(ctx context.Context, productID, specID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/products", productID, "specs", specID), nil, &out)
}

func (c *Client) AddVariant(ctx context.Context, productID string, in apicontract.VariantInput) (string, error) {
	var out apicontract.IDResponse
	if err := c.callJSON(ctx, http.MethodPost, endpoint("admin/products", productID, "variants"), in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) UpdateVariant(ctx context.Context, productID, variantID string, patch apicontract.VariantPatch) error {
	var out apicontract.IDResponse
	return c.callJSON(ctx, http.MethodPut, endpoint("admin/products", productID, "variants", variantID), patch, &out)
}

func (c *Client) DeleteVariant(ctx context.Context, productID, variantID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/products", productID, "variants", variantID), nil, &out)
}

// UploadImage stores f as a product image. An empty alt is not sent.
func (c *Client) UploadImage(ctx context.Context, productID string, f File, alt string, sortOrder int) (*apicontract.UploadedFile, error) {
	fields := map[string]string{"sort_order": strconv.Itoa(sortOrder)}
	if alt = strings.TrimSpace(alt); alt != "" {
		fields["alt"] = alt
	}
	return c.upload(ctx, endpoint("admin/products", productID, "images"), f, fields)
}

// UpdateImageSort writes the sort order of one image.
func (c *Client) UpdateImageSort(ctx context.Context, productID, imageID string, sortOrder int) error {
	var out apicontract.IDResponse
	return c.callJSON(ctx, http.MethodPut, endpoint("admin/products", productID, "images", imageID),
		apicontract.ImageSortUpdate{SortOrder: &sortOrder}, &out)
}

// ReorderImages replaces the whole image order in one atomic write.
func (c *Client) ReorderImages(ctx context.Context, productID string, imageIDs []string) error {
	var out apicontract.IDResponse
	return c.callJSON(ctx, http.MethodPut, endpoint("admin/products", productID, "images/order"),
		apicontract.ImageOrder{ImageIDs: imageIDs}, &out)
}

func (c *Client) DeleteImage(ctx context.Context, productID, imageID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/products", productID, "images", imageID), nil, &out)
}

// UploadAttachment stores f as a product document. An empty title lets the server fall back
// to the file name.
func (c *Client) UploadAttachment(ctx context.Context, productID string, f File, title string, sortOrder int) (*apicontract.UploadedFile, error) {
	fields := map[string]string{"sort_order": strconv.Itoa(sortOrder)}
	if title = strings.TrimSpace(title); title != "" {
		fields["title"] = title
	}
	return c.upload(ctx, endpoint("admin/products", productID, "attachments"), f, fields)
}

func (c *Client) DeleteAttachment(ctx context.Context, productID, attachmentID string) error {
	var out apicontract.DeletedResponse
	return c.callJSON(ctx, http.MethodDelete, endpoint("admin/products", productID, "attachments", attachmentID), nil, &out)
}

// upload streams a multipart body through a pipe so large files are never buffered whole.
func (c *Client) upload(ctx context.Context, path string, f File, fields map[string]string) (*apicontract.UploadedFile, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeMultipart(mw, f, fields))
	}()

	var out apicontract.UploadedFile
	err := c.call(ctx, http.MethodPost, path, nil, pr, mw.FormDataContentType(), &out)
	_ = pr.Close()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func writeMultipart(mw *multipart.Writer, f File, fields map[string]string) error {
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return err
		}
	}
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, f.Name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f.Body); err != nil {
		return err
	}
	return mw.Close()
}
