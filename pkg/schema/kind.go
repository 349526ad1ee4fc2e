package schema

// Kind names a validation rule a schema can reference.
type Kind string

const (
	KindRequired             Kind = "required"
	KindEmail                Kind = "email"
	KindPhone                Kind = "phone"
	KindStrongPassword       Kind = "strongPassword"
	KindMinLength            Kind = "minLength"
	KindMaxLength            Kind = "maxLength"
	KindFile                 Kind = "file"
	KindFileRequired         Kind = "fileRequired"
	KindFileRequiredMultiple Kind = "fileRequiredMultiple"
	KindFileType             Kind = "fileType"
	KindFileTypeMultiple     Kind = "fileTypeMultiple"
	KindDateRequired         Kind = "dateRequired"
)

var kinds = []Kind{
	KindRequired,
	KindEmail,
	KindPhone,
	KindStrongPassword,
	KindMinLength,
	KindMaxLength,
	KindFile,
	KindFileRequired,
	KindFileRequiredMultiple,
	KindFileType,
	KindFileTypeMultiple,
	KindDateRequired,
}

// Kinds returns every known kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsFile reports whether k validates file values.
func (k Kind) IsFile() bool {
	switch k {
	case KindFile, KindFileRequired, KindFileRequiredMultiple, KindFileType, KindFileTypeMultiple:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
