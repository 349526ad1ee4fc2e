package validator

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

const (
	defaultFileMessage       = "Please select a file"
	defaultFilesMessage      = "Please select files"
	defaultValidFilesMessage = "Please select valid files"
)

// FileRequired accepts a single file handle.
func FileRequired(opts ...Option) Validator {
	cfg := newRuleConfig(defaultFileMessage, opts)
	return build(cfg, func(value Value) bool {
		_, ok := value.File()
		return ok
	})
}

// FileRequiredMultiple accepts a non-empty file list.
func FileRequiredMultiple(opts ...Option) Validator {
	cfg := newRuleConfig(defaultFilesMessage, opts)
	return build(cfg, func(value Value) bool {
		files, ok := value.Files()
		return ok && len(files) > 0
	})
}

// FileType accepts a single file whose extension, MIME type or MIME
// top-level type matches one of allowed, ignoring case.
// Entries look like ".pdf", "application/pdf" or "image".
func FileType(allowed []string, opts ...Option) Validator {
	cfg := newRuleConfig("", opts)
	allowed = normalizeAllowedTypes(allowed)
	mismatch := fmt.Sprintf("File type must be one of: %s", strings.Join(allowed, ", "))

	return func(value Value) string {
		if cfg.optional && value.IsEmpty() {
			return ""
		}
		file, ok := value.File()
		if !ok {
			return firstNonEmpty(cfg.message, defaultFileMessage)
		}
		if !matchesFileType(file, allowed) {
			return firstNonEmpty(cfg.message, mismatch)
		}
		return ""
	}
}

// FileTypeMultiple accepts a non-empty file list where every file passes
// the FileType check.
func FileTypeMultiple(allowed []string, opts ...Option) Validator {
	cfg := newRuleConfig("", opts)
	allowed = normalizeAllowedTypes(allowed)
	mismatch := fmt.Sprintf("All files must be one of: %s", strings.Join(allowed, ", "))

	return func(value Value) string {
		if cfg.optional && value.IsEmpty() {
			return ""
		}
		files, ok := value.Files()
		if !ok || len(files) == 0 {
			return firstNonEmpty(cfg.message, defaultFilesMessage)
		}
		for _, file := range files {
			if file == nil {
				return firstNonEmpty(cfg.message, defaultValidFilesMessage)
			}
			if !matchesFileType(file, allowed) {
				return firstNonEmpty(cfg.message, mismatch)
			}
		}
		return ""
	}
}

// FileMaxSize rejects any file larger than max bytes.
// Works on a single file or every file of a list.
func FileMaxSize(max int64, opts ...Option) Validator {
	mb := int64(math.Round(float64(max) / (1024 * 1024)))
	cfg := newRuleConfig(fmt.Sprintf("File size must be less than %dMB", mb), opts)
	return sizeRule(cfg, func(size int64) bool { return size <= max })
}

// FileMinSize rejects any file smaller than min bytes.
func FileMinSize(min int64, opts ...Option) Validator {
	cfg := newRuleConfig(fmt.Sprintf("File size must be at least %d bytes", min), opts)
	return sizeRule(cfg, func(size int64) bool { return size >= min })
}

func sizeRule(cfg ruleConfig, fits func(int64) bool) Validator {
	return func(value Value) string {
		if cfg.optional && value.IsEmpty() {
			return ""
		}
		var files []FileHandle
		switch value.Kind() {
		case KindFile:
			f, _ := value.File()
			files = []FileHandle{f}
		case KindFileList:
			files, _ = value.Files()
		default:
			return defaultFileMessage
		}
		for _, f := range files {
			if f == nil || !fits(f.Size()) {
				return cfg.message
			}
		}
		return ""
	}
}

func normalizeAllowedTypes(allowed []string) []string {
	out := make([]string, 0, len(allowed))
	for _, t := range allowed {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func matchesFileType(file FileHandle, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(file.Name()))
	if ext == "" {
		// a name without a dot is treated as its own extension
		ext = "." + strings.ToLower(file.Name())
	}
	mimeType := strings.ToLower(file.ContentType())

	for _, t := range allowed {
		want := strings.ToLower(t)
		if ext == want || (mimeType != "" && (mimeType == want || strings.HasPrefix(mimeType, want+"/"))) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
