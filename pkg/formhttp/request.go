package formhttp

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// fieldInput is the JSON body or DataStar signal set of change and blur.
// A null or missing value is Empty.
type fieldInput struct {
	Field string  `json:"field"`
	Value *string `json:"value"`
}

func formID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidFormID, err)
	}
	return id, nil
}

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// readField decodes the field name and value of a change or blur request.
func (h *Handler) readField(r *http.Request, f *form.Form) (string, validator.Value, error) {
	if isMultipart(r) {
		return h.readMultipart(r, f)
	}

	var in fieldInput
	if err := datastar.ReadSignals(r, &in); err != nil {
		return "", validator.Value{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if in.Field == "" {
		return "", validator.Value{}, ErrMissingField
	}
	if in.Value == nil {
		return in.Field, validator.Empty(), nil
	}
	return in.Field, validator.Text(*in.Value), nil
}

// readMultipart takes the field name from the "field" part and its files
// from parts named after the field. Only file metadata is kept.
func (h *Handler) readMultipart(r *http.Request, f *form.Form) (string, validator.Value, error) {
	if err := r.ParseMultipartForm(h.cfg.MaxMemory); err != nil {
		return "", validator.Value{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	name := r.MultipartForm.Value["field"]
	if len(name) == 0 || name[0] == "" {
		return "", validator.Value{}, ErrMissingField
	}
	field := name[0]
	multiple := f.FieldConfig(field).Multiple

	if headers := r.MultipartForm.File[field]; len(headers) > 0 {
		files := make([]validator.FileHandle, 0, len(headers))
		for _, fh := range headers {
			files = append(files, validator.FromFileHeader(fh))
		}
		if multiple {
			return field, validator.FileList(files...), nil
		}
		return field, validator.SingleFile(files[0]), nil
	}

	if text, ok := r.MultipartForm.Value["value"]; ok && len(text) > 0 {
		return field, validator.Text(text[0]), nil
	}
	if multiple {
		return field, validator.FileList(), nil
	}
	return field, validator.Empty(), nil
}
