package httptransport

import (
	"net/http"
	"strconv"
	"strings"

	productshared "github.com/murkotick/showcase-catalog-service/internal/app/product/usecases/shared"
)

// multipartMemory is how much of a multipart body is buffered in memory before the rest
// spills to temporary files.
const multipartMemory = 8 << 20

// readUpload parses a multipart form with a single "file" part. The returned cleanup closes
// the part and removes temporary files.
func readUpload(r *http.Request) (productshared.Upload, func(), error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return productshared.Upload{}, func() {}, badRequest("multipart form with a file field is required")
	}
	cleanup := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		cleanup()
		return productshared.Upload{}, func() {}, badRequest("file is required")
	}
	up := productshared.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return up, func() {
		_ = file.Close()
		cleanup()
	}, nil
}

// formInt reads an optional integer form value.
func formInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest(name + " must be an integer")
	}
	return n, nil
}
