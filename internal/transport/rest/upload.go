package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// multipartMemory is the part of a multipart body kept in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

var errUploadTooLarge = errors.New("upload too large")

type uploadedFile struct {
	Name    string
	Content []byte
}

// readUpload parses a multipart body of at most limit bytes and returns the
// "file" part. Form values are available through r.FormValue afterwards.
func readUpload(w http.ResponseWriter, r *http.Request, limit int64) (uploadedFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return uploadedFile{}, fmt.Errorf("%w: limit is %d bytes", errUploadTooLarge, limit)
		}
		return uploadedFile{}, domain.NewValidationError("body", "must be multipart/form-data")
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		return uploadedFile{}, domain.NewValidationError("file", "required")
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return uploadedFile{}, fmt.Errorf("read upload: %w", err)
	}
	return uploadedFile{Name: header.Filename, Content: content}, nil
}
