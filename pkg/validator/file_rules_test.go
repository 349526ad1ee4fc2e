package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestFileRequired(t *testing.T) {
	t.Parallel()

	f := validator.NewFile("a.pdf", "application/pdf", 10)

	t.Run("single", func(t *testing.T) {
		rule := validator.FileRequired()
		assert.Empty(t, rule(validator.SingleFile(f)))
		assert.Equal(t, "Please select a file", rule(validator.Empty()))
		assert.Equal(t, "Please select a file", rule(validator.Text("a.pdf")))
	})

	t.Run("multiple", func(t *testing.T) {
		rule := validator.FileRequiredMultiple()
		assert.Empty(t, rule(validator.FileList(f)))
		assert.Equal(t, "Please select files", rule(validator.FileList()))
		assert.Equal(t, "Please select files", rule(validator.SingleFile(f)))
	})
}

func TestFileType(t *testing.T) {
	t.Parallel()

	rule := validator.FileType([]string{".pdf", "image"})

	tests := []struct {
		name  string
		value validator.Value
		want  string
	}{
		{"extension match", validator.SingleFile(validator.NewFile("doc.pdf", "", 1)), ""},
		{"extension is case insensitive", validator.SingleFile(validator.NewFile("DOC.PDF", "", 1)), ""},
		{"mime prefix match", validator.SingleFile(validator.NewFile("photo", "image/png", 1)), ""},
		{"mismatch", validator.SingleFile(validator.NewFile("doc.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1)), "File type must be one of: .pdf, image"},
		{"not a file", validator.Text("doc.pdf"), "Please select a file"},
		{"empty", validator.Empty(), "Please select a file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule(tt.value))
		})
	}

	t.Run("exact mime match", func(t *testing.T) {
		rule := validator.FileType([]string{"application/pdf"})
		assert.Empty(t, rule(validator.SingleFile(validator.NewFile("blob", "application/pdf", 1))))
	})

	t.Run("custom message covers both failures", func(t *testing.T) {
		rule := validator.FileType([]string{".pdf"}, validator.WithMessage("PDF only"))
		assert.Equal(t, "PDF only", rule(validator.Empty()))
		assert.Equal(t, "PDF only", rule(validator.SingleFile(validator.NewFile("a.txt", "text/plain", 1))))
	})
}

func TestFileTypeMultiple(t *testing.T) {
	t.Parallel()

	rule := validator.FileTypeMultiple([]string{".png", ".jpg"})
	png := validator.NewFile("a.png", "image/png", 1)
	jpg := validator.NewFile("b.jpg", "image/jpeg", 1)
	gif := validator.NewFile("c.gif", "image/gif", 1)

	assert.Empty(t, rule(validator.FileList(png, jpg)))
	assert.Equal(t, "All files must be one of: .png, .jpg", rule(validator.FileList(png, gif)))
	assert.Equal(t, "Please select files", rule(validator.FileList()))
	assert.Equal(t, "Please select files", rule(validator.SingleFile(png)))
	assert.Equal(t, "Please select valid files", rule(validator.FileList(png, nil)))
}

func TestFileSize(t *testing.T) {
	t.Parallel()

	const mb = 1024 * 1024
	small := validator.NewFile("small.pdf", "application/pdf", mb)
	big := validator.NewFile("big.pdf", "application/pdf", 6*mb)

	t.Run("max size", func(t *testing.T) {
		rule := validator.FileMaxSize(5 * mb)
		assert.Empty(t, rule(validator.SingleFile(small)))
		assert.Equal(t, "File size must be less than 5MB", rule(validator.SingleFile(big)))
		assert.Equal(t, "File size must be less than 5MB", rule(validator.FileList(small, big)))
		assert.Empty(t, rule(validator.FileList(small, small)))
		assert.Equal(t, "Please select a file", rule(validator.Text("x")))
	})

	t.Run("min size", func(t *testing.T) {
		rule := validator.FileMinSize(2 * mb)
		assert.Empty(t, rule(validator.SingleFile(big)))
		assert.Equal(t, "File size must be at least 2097152 bytes", rule(validator.SingleFile(small)))
	})
}
