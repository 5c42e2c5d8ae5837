// Package apicontract defines the JSON bodies exchanged between the catalog API and its
// clients. Both sides encode and decode through these types, and clients run Validate on
// every response before handing it to callers.
package apicontract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers (12.5), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrInvalidContract is returned when a body does not satisfy its contract.
var ErrInvalidContract = errors.New("apicontract: body violates contract")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on v (a pointer to a contract type).
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidContract, err)
	}
	return nil
}

// FileURL is the public URL under which a stored file is served.
func FileURL(fileID string) string {
	return "/api/files/" + fileID
}

// Nullable distinguishes an absent JSON field (Set == false) from an explicit null
// (Set == true, Valid == false) in partial updates.
type Nullable[T any] struct {
	Set   bool
	Valid bool
	Value T
}

// Some returns a set, non-null value.
func Some[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Valid: true, Value: v}
}

// Null returns an explicit null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// FromPtr maps nil to an explicit null.
func FromPtr[T any](p *T) Nullable[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

// Ptr returns nil for null or unset values.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// IsZero makes `omitzero` drop unset fields.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		n.Valid = false
		n.Value = zero
		return nil
	}
	if err := json.Unmarshal(b, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// ErrorBody is the canonical error envelope written by the API.
type ErrorBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// IDResponse acknowledges an update.
type IDResponse struct {
	ID string `json:"id" validate:"required"`
}

// DeletedResponse acknowledges a delete by identity.
type DeletedResponse struct {
	Deleted string `json:"deleted" validate:"required"`
}

// DeletedFlag acknowledges a delete that has no identity of its own.
type DeletedFlag struct {
	Deleted bool `json:"deleted"`
}

// UploadedFile is returned by every multipart upload.
type UploadedFile struct {
	ID  string `json:"id" validate:"required"`
	URL string `json:"url" validate:"required"`
}
