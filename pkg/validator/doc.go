// Package validator provides the field value model and the rule set used to
// check user-entered form values.
//
// A Value is a closed tagged union: Text, SingleFile, FileList or Empty.
// Emptiness is defined per variant (whitespace-only text, Empty and an empty
// file list are empty; a single file never is) and every rule relies on that
// definition.
//
// A Validator is a plain function from Value to an error message, where the
// empty string means the value is acceptable. Rule factories close over
// their configuration and hold no other state, so a Validator can be cached
// and called concurrently.
//
// # Rules
//
//   - Required, MinLength, MaxLength
//   - Email, Phone
//   - StrongPassword
//   - DateRequired
//   - FileRequired, FileRequiredMultiple, FileType, FileTypeMultiple,
//     FileMaxSize, FileMinSize
//
// Every factory accepts WithMessage to replace the default message and
// Optional to accept empty values regardless of the rule:
//
//	v := validator.MinLength(10, validator.WithMessage("Tell us a bit more"), validator.Optional())
//	if msg, ok := v.Validate(validator.Text("short")); !ok {
//	    // msg == "Tell us a bit more"
//	}
//
// A value of the wrong variant (a file passed to Email, text passed to
// FileRequired) fails with the rule's message and never panics.
//
// Chain composes rules so the first failure wins.
//
// # Files
//
// Files are opaque FileHandle values; only name, content type and size are
// inspected. FromFileHeader adapts a *multipart.FileHeader without opening it.
//
// # Error Handling
//
// ValidationErrors collects per-field failures and implements error. Use
// ExtractValidationErrors or errors.As to get at the field messages.
package validator
