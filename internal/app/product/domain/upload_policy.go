package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UploadPolicy is the size and type allow-list for one kind of upload.
type UploadPolicy struct {
	MaxBytes     int64
	AllowedTypes []string
}

// NewUploadPolicy builds a policy from the settings representation: a size in megabytes
// and a comma separated list of MIME types.
func NewUploadPolicy(maxMB float64, allowedCSV string) UploadPolicy {
	return UploadPolicy{
		MaxBytes:     int64(maxMB * 1024 * 1024),
		AllowedTypes: ParseTypeList(allowedCSV),
	}
}

// Check validates a declared content type and size before anything is stored.
func (p UploadPolicy) Check(contentType string, size int64) error {
	if !p.Allows(contentType) {
		return fmt.Errorf("%w: allowed types are %s", ErrUnsupportedMediaType, strings.Join(p.AllowedTypes, ", "))
	}
	if size == 0 {
		return ErrEmptyFile
	}
	if p.MaxBytes > 0 && size > p.MaxBytes {
		return fmt.Errorf("%w: limit is %s MB", ErrFileTooLarge, p.limitMB())
	}
	return nil
}

// Allows reports whether contentType (parameters ignored) is on the allow-list.
func (p UploadPolicy) Allows(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	for _, t := range p.AllowedTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}

func (p UploadPolicy) limitMB() string {
	return strconv.FormatFloat(float64(p.MaxBytes)/(1024*1024), 'f', -1, 64)
}

// ParseTypeList splits a comma separated MIME list, dropping blanks.
func ParseTypeList(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
