package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/murkotick/showcase-catalog-service/internal/apicontract"
	"github.com/murkotick/showcase-catalog-service/internal/client/admin"
	"github.com/murkotick/showcase-catalog-service/internal/client/reorder"
)

const defaultAttachmentTitle = "Attachment"

// UploadResult is the outcome of one file of a multi-file upload.
type UploadResult struct {
	Name string
	ID   string
	URL  string
	Err  error
}

func (e *Editor) AddSpec(ctx context.Context, in apicontract.SpecInput) (string, error) {
	if err := e.guard(); err != nil {
		return "", err
	}
	in.SortOrder = len(e.specs)
	id, err := e.client.AddSpec(ctx, e.id, in)
	if err != nil {
		return "", e.fail(err)
	}
	e.specs = append(e.specs, apicontract.Spec{
		ID: id, Name: in.Name, Value: in.Value, Unit: in.Unit, SortOrder: in.SortOrder,
	})
	return id, nil
}

func (e *Editor) UpdateSpec(ctx context.Context, specID string, patch apicontract.SpecPatch) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.UpdateSpec(ctx, e.id, specID, patch); err != nil {
		return e.fail(err)
	}
	for i := range e.specs {
		s := &e.specs[i]
		if s.ID != specID {
			continue
		}
		setIf(&s.Name, patch.Name)
		setIf(&s.Value, patch.Value)
		setIf(&s.SortOrder, patch.SortOrder)
		if patch.Unit.Set {
			s.Unit = patch.Unit.Ptr()
		}
	}
	return nil
}

func (e *Editor) DeleteSpec(ctx context.Context, specID string) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.DeleteSpec(ctx, e.id, specID); err != nil {
		return e.fail(err)
	}
	e.specs = without(e.specs, specID, func(s apicontract.Spec) string { return s.ID })
	return nil
}

func (e *Editor) AddVariant(ctx context.Context, in apicontract.VariantInput) (string, error) {
	if err := e.guard(); err != nil {
		return "", err
	}
	in.SortOrder = len(e.variants)
	id, err := e.client.AddVariant(ctx, e.id, in)
	if err != nil {
		return "", e.fail(err)
	}
	e.variants = append(e.variants, apicontract.Variant{
		ID:          id,
		OptionName:  in.OptionName,
		OptionValue: in.OptionValue,
		StockQty:    in.StockQty,
		InOrderQty:  in.InOrderQty,
		SortOrder:   in.SortOrder,
	})
	return id, nil
}

func (e *Editor) UpdateVariant(ctx context.Context, variantID string, patch apicontract.VariantPatch) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.UpdateVariant(ctx, e.id, variantID, patch); err != nil {
		return e.fail(err)
	}
	for i := range e.variants {
		v := &e.variants[i]
		if v.ID != variantID {
			continue
		}
		setIf(&v.OptionName, patch.OptionName)
		setIf(&v.OptionValue, patch.OptionValue)
		setIf(&v.StockQty, patch.StockQty)
		setIf(&v.InOrderQty, patch.InOrderQty)
		setIf(&v.SortOrder, patch.SortOrder)
	}
	return nil
}

func (e *Editor) DeleteVariant(ctx context.Context, variantID string) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.DeleteVariant(ctx, e.id, variantID); err != nil {
		return e.fail(err)
	}
	e.variants = without(e.variants, variantID, func(v apicontract.Variant) string { return v.ID })
	return nil
}

// UploadImages uploads files one by one. A failed file does not stop the others and files
// already uploaded are kept. An expired session stops the loop.
func (e *Editor) UploadImages(ctx context.Context, files []admin.File, alt string) ([]UploadResult, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	return e.uploadEach(files, func(f admin.File) (*apicontract.UploadedFile, error) {
		sortOrder := len(e.images)
		res, err := e.client.UploadImage(ctx, e.id, f, alt, sortOrder)
		if err != nil {
			return nil, err
		}
		e.images = append(e.images, apicontract.Image{
			ID: res.ID, URL: res.URL, Alt: opt(alt), SortOrder: sortOrder,
		})
		return res, nil
	})
}

// UploadAttachments works like UploadImages. Without a title the file name is used.
func (e *Editor) UploadAttachments(ctx context.Context, files []admin.File, title string) ([]UploadResult, error) {
	if err := e.guard(); err != nil {
		return nil, err
	}
	return e.uploadEach(files, func(f admin.File) (*apicontract.UploadedFile, error) {
		sortOrder := len(e.attachments)
		res, err := e.client.UploadAttachment(ctx, e.id, f, title, sortOrder)
		if err != nil {
			return nil, err
		}
		e.attachments = append(e.attachments, apicontract.Attachment{
			ID:        res.ID,
			Title:     attachmentTitle(title, f.Name),
			URL:       res.URL,
			SortOrder: sortOrder,
			Mime:      opt(f.ContentType),
		})
		return res, nil
	})
}

func (e *Editor) uploadEach(files []admin.File, upload func(admin.File) (*apicontract.UploadedFile, error)) ([]UploadResult, error) {
	e.phase = PhaseSaving
	results := make([]UploadResult, 0, len(files))
	var failed []UploadResult
	for i, f := range files {
		res, err := upload(f)
		if err != nil {
			r := UploadResult{Name: f.Name, Err: err}
			results = append(results, r)
			failed = append(failed, r)
			if errors.Is(err, admin.ErrUnauthorized) {
				for _, rest := range files[i+1:] {
					results = append(results, UploadResult{Name: rest.Name, Err: err})
				}
				return results, e.fail(err)
			}
			continue
		}
		results = append(results, UploadResult{Name: f.Name, ID: res.ID, URL: res.URL})
	}

	switch len(failed) {
	case 0:
		e.phase = PhaseReady
		return results, nil
	case 1:
		err := fmt.Errorf("%s: %w", failed[0].Name, failed[0].Err)
		e.fail(failed[0].Err)
		e.message = failed[0].Name + ": " + e.message
		return results, err
	default:
		errs := make([]error, len(failed))
		for i, r := range failed {
			errs[i] = fmt.Errorf("%s: %w", r.Name, r.Err)
		}
		e.fail(failed[0].Err)
		e.message = fmt.Sprintf("%d of %d uploads failed", len(failed), len(files))
		return results, errors.Join(errs...)
	}
}

func (e *Editor) DeleteImage(ctx context.Context, imageID string) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.DeleteFile(ctx, imageID); err != nil {
		return e.fail(err)
	}
	e.images = without(e.images, imageID, func(i apicontract.Image) string { return i.ID })
	return nil
}

func (e *Editor) DeleteAttachment(ctx context.Context, attachmentID string) error {
	if err := e.guard(); err != nil {
		return err
	}
	if err := e.client.DeleteFile(ctx, attachmentID); err != nil {
		return e.fail(err)
	}
	e.attachments = without(e.attachments, attachmentID, func(a apicontract.Attachment) string { return a.ID })
	return nil
}

// MoveImage swaps the image at index of the displayed order with its neighbour in dir
// (reorder.Up or reorder.Down) using two sort order writes.
func (e *Editor) MoveImage(ctx context.Context, index, dir int) error {
	if err := e.guard(); err != nil {
		return err
	}
	write := func(ctx context.Context, id string, sortOrder int) error {
		return e.client.UpdateImageSort(ctx, e.id, id, sortOrder)
	}
	out, err := moveIn(e.images, imageKey, func(m []reorder.Member) ([]reorder.Member, error) {
		return reorder.Move(ctx, m, index, dir, write)
	})
	if err != nil {
		return e.fail(err)
	}
	e.images = out
	return nil
}

// MoveImageBatched performs the same move with the atomic reorder endpoint.
func (e *Editor) MoveImageBatched(ctx context.Context, index, dir int) error {
	if err := e.guard(); err != nil {
		return err
	}
	write := func(ctx context.Context, ids []string) error {
		return e.client.ReorderImages(ctx, e.id, ids)
	}
	out, err := moveIn(e.images, imageKey, func(m []reorder.Member) ([]reorder.Member, error) {
		return reorder.MoveBatched(ctx, m, index, dir, write)
	})
	if err != nil {
		return e.fail(err)
	}
	e.images = out
	return nil
}

func (e *Editor) MoveSpec(ctx context.Context, index, dir int) error {
	if err := e.guard(); err != nil {
		return err
	}
	write := func(ctx context.Context, id string, sortOrder int) error {
		return e.client.UpdateSpec(ctx, e.id, id, apicontract.SpecPatch{SortOrder: &sortOrder})
	}
	out, err := moveIn(e.specs, specKey, func(m []reorder.Member) ([]reorder.Member, error) {
		return reorder.Move(ctx, m, index, dir, write)
	})
	if err != nil {
		return e.fail(err)
	}
	e.specs = out
	return nil
}

func (e *Editor) MoveVariant(ctx context.Context, index, dir int) error {
	if err := e.guard(); err != nil {
		return err
	}
	write := func(ctx context.Context, id string, sortOrder int) error {
		return e.client.UpdateVariant(ctx, e.id, id, apicontract.VariantPatch{SortOrder: &sortOrder})
	}
	out, err := moveIn(e.variants, variantKey, func(m []reorder.Member) ([]reorder.Member, error) {
		return reorder.Move(ctx, m, index, dir, write)
	})
	if err != nil {
		return e.fail(err)
	}
	e.variants = out
	return nil
}

// sortKey reads and writes the identity and sort order of a collection member.
type sortKey[T any] struct {
	id    func(T) string
	order func(T) int
	set   func(*T, int)
}

var (
	imageKey = sortKey[apicontract.Image]{
		id:    func(v apicontract.Image) string { return v.ID },
		order: func(v apicontract.Image) int { return v.SortOrder },
		set:   func(v *apicontract.Image, n int) { v.SortOrder = n },
	}
	specKey = sortKey[apicontract.Spec]{
		id:    func(v apicontract.Spec) string { return v.ID },
		order: func(v apicontract.Spec) int { return v.SortOrder },
		set:   func(v *apicontract.Spec, n int) { v.SortOrder = n },
	}
	variantKey = sortKey[apicontract.Variant]{
		id:    func(v apicontract.Variant) string { return v.ID },
		order: func(v apicontract.Variant) int { return v.SortOrder },
		set:   func(v *apicontract.Variant, n int) { v.SortOrder = n },
	}
)

// moveIn runs move over the members of items and rebuilds items in the resulting order.
func moveIn[T any](items []T, key sortKey[T], move func([]reorder.Member) ([]reorder.Member, error)) ([]T, error) {
	members := make([]reorder.Member, len(items))
	byID := make(map[string]T, len(items))
	for i, it := range items {
		members[i] = reorder.Member{ID: key.id(it), SortOrder: key.order(it)}
		byID[key.id(it)] = it
	}
	moved, err := move(members)
	if err != nil {
		return items, err
	}
	out := make([]T, len(moved))
	for i, m := range moved {
		out[i] = byID[m.ID]
		key.set(&out[i], m.SortOrder)
	}
	return out, nil
}

func without[T any](items []T, id string, key func(T) string) []T {
	out := items[:0:0]
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func attachmentTitle(title, filename string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if filename != "" {
		return filename
	}
	return defaultAttachmentTitle
}
