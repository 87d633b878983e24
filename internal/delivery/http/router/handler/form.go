package handler

import (
	"io"
	"mime/multipart"
	"strconv"

	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/usecase"

	"github.com/pkg/errors"
)

// formFiles tracks opened multipart files so a handler can close them all
// once the usecase call returns.
type formFiles struct {
	closers []io.Closer
}

// open converts one multipart file header into a MediaUpload.
func (f *formFiles) open(header *multipart.FileHeader) (*usecase.MediaUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	f.closers = append(f.closers, file)

	return &usecase.MediaUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
}

// openFirst opens the first file under the given form key, or nil when the
// key is absent.
func (f *formFiles) openFirst(form *multipart.Form, key string) (*usecase.MediaUpload, error) {
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, nil
	}

	return f.open(headers[0])
}

// openAll opens every file under the given form key.
func (f *formFiles) openAll(form *multipart.Form, key string) ([]usecase.MediaUpload, error) {
	headers := form.File[key]
	if len(headers) == 0 {
		return nil, nil
	}

	uploads := make([]usecase.MediaUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := f.open(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}

	return uploads, nil
}

// Close releases every file opened from the form.
func (f *formFiles) Close() {
	for _, closer := range f.closers {
		_ = closer.Close()
	}
}

// formString returns the first value under key, or "" when absent.
func formString(form *multipart.Form, key string) string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return vals[0]
	}

	return ""
}

// optString returns a pointer to the first value under key, or nil when the
// field was not supplied at all. Absence and empty string are distinct so
// partial updates can leave stored values untouched.
func optString(form *multipart.Form, key string) *string {
	if vals, ok := form.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}

	return nil
}

// formFloat parses the first value under key, returning 0 when absent.
func formFloat(form *multipart.Form, key string) (float64, error) {
	raw := formString(form, key)
	if raw == "" {
		return 0, nil
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domainerrors.ErrValidation.WrapMessage("field '" + key + "' must be a number")
	}

	return val, nil
}

// optFloat parses the first value under key into a pointer, or nil when absent.
func optFloat(form *multipart.Form, key string) (*float64, error) {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil, nil
	}

	val, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return nil, domainerrors.ErrValidation.WrapMessage("field '" + key + "' must be a number")
	}

	return &val, nil
}
