package validator

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// ValueKind identifies which variant a Value holds.
type ValueKind uint8

const (
	// KindEmpty is the zero variant: the field holds nothing.
	KindEmpty ValueKind = iota
	// KindText holds user-entered text.
	KindText
	// KindFile holds a single file handle.
	KindFile
	// KindFileList holds an ordered list of file handles.
	KindFileList
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFile:
		return "file"
	case KindFileList:
		return "file_list"
	default:
		return "empty"
	}
}

// FileHandle is an opaque reference to a user-selected file.
// Validators only ever look at its metadata; content is never read.
type FileHandle interface {
	Name() string
	ContentType() string
	Size() int64
}

// Value is what a form field currently holds.
// The zero Value is Empty.
type Value struct {
	kind  ValueKind
	text  string
	files []FileHandle
}

// Text wraps a string value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// SingleFile wraps one file handle. A nil handle yields Empty.
func SingleFile(f FileHandle) Value {
	if f == nil {
		return Value{}
	}
	return Value{kind: KindFile, files: []FileHandle{f}}
}

// FileList wraps an ordered list of file handles. The list is copied.
func FileList(files ...FileHandle) Value {
	list := make([]FileHandle, 0, len(files))
	list = append(list, files...)
	return Value{kind: KindFileList, files: list}
}

// Empty returns the empty value.
func Empty() Value {
	return Value{}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsEmpty reports whether the value counts as "not filled in":
// whitespace-only text, Empty, or a file list with no elements.
// A single file is never empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindText:
		return strings.TrimSpace(v.text) == ""
	case KindFile:
		return false
	case KindFileList:
		return len(v.files) == 0
	default:
		return true
	}
}

// IsText reports whether v holds text.
func (v Value) IsText() bool {
	return v.kind == KindText
}

// IsFile reports whether v holds a single file or a file list.
func (v Value) IsFile() bool {
	return v.kind == KindFile || v.kind == KindFileList
}

// Text returns the text payload.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// File returns the single file payload.
func (v Value) File() (FileHandle, bool) {
	if v.kind != KindFile {
		return nil, false
	}
	return v.files[0], true
}

// Files returns a copy of the file list payload.
func (v Value) Files() ([]FileHandle, bool) {
	if v.kind != KindFileList {
		return nil, false
	}
	out := make([]FileHandle, len(v.files))
	copy(out, v.files)
	return out, true
}

// String renders the value for logs and plain-text snapshots.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindFile:
		return v.files[0].Name()
	case KindFileList:
		names := make([]string, 0, len(v.files))
		for _, f := range v.files {
			names = append(names, f.Name())
		}
		return strings.Join(names, ", ")
	default:
		return ""
	}
}

// Equal reports whether two values hold the same variant and payload.
// File handles are compared by identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.text != other.text || len(v.files) != len(other.files) {
		return false
	}
	for i := range v.files {
		if v.files[i] != other.files[i] {
			return false
		}
	}
	return true
}

// FileInfo is a plain metadata FileHandle.
type FileInfo struct {
	Filename string `json:"name"`
	MIMEType string `json:"type"`
	Bytes    int64  `json:"size"`
}

// NewFile returns a FileHandle built from bare metadata.
func NewFile(name, contentType string, size int64) *FileInfo {
	return &FileInfo{Filename: name, MIMEType: contentType, Bytes: size}
}

func (f *FileInfo) Name() string        { return f.Filename }
func (f *FileInfo) ContentType() string { return f.MIMEType }
func (f *FileInfo) Size() int64         { return f.Bytes }

// FromFileHeader adapts an uploaded multipart part into a FileHandle.
// The content type comes from the part header, falling back to the
// file extension. The file body is not opened.
func FromFileHeader(fh *multipart.FileHeader) FileHandle {
	if fh == nil {
		return nil
	}
	contentType := ""
	if ct := fh.Header.Get("Content-Type"); ct != "" {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			contentType = mediaType
		}
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fh.Filename))
		if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
			contentType = mediaType
		}
	}
	return &FileInfo{Filename: fh.Filename, MIMEType: contentType, Bytes: fh.Size}
}

// MarshalJSON writes text as a string, a file as its metadata object, a file
// list as an array and Empty as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindFile:
		return json.Marshal(fileJSON(v.files[0]))
	case KindFileList:
		out := make([]FileInfo, 0, len(v.files))
		for _, f := range v.files {
			out = append(out, fileJSON(f))
		}
		return json.Marshal(out)
	default:
		return []byte("null"), nil
	}
}

func fileJSON(f FileHandle) FileInfo {
	if f == nil {
		return FileInfo{}
	}
	return FileInfo{Filename: f.Name(), MIMEType: f.ContentType(), Bytes: f.Size()}
}
