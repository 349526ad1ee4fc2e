// Package form tracks field values and errors for one form instance and
// decides when each field is validated.
//
// Every field moves from Untouched to Touched the first time it is blurred
// or validated, and never goes back. Validation then happens at three
// points:
//
//   - OnBlur validates immediately. An empty required field gets
//     "<Name> is required"; otherwise the validator passed to OnBlur runs and
//     is stored on the field for later use.
//   - OnChange stores the value at once. For text, validation is debounced
//     (500ms by default, trailing edge, last value wins) and only runs for a
//     touched field with a stored validator; required-empty errors are not
//     raised while typing. File values are validated synchronously.
//   - ValidateAll, used by Submit, checks every field regardless of touched
//     state. Requiredness is enforced even for fields without a validator.
//
// Submit calls its callback exactly once with the values when every field
// passes, and returns a *SubmitError matching ErrSubmissionBlocked otherwise.
//
//	f := form.New(map[string]validator.Value{
//	    "email":   validator.Text(""),
//	    "message": validator.Text(""),
//	}, form.WithFieldConfig("message", form.FieldConfig{Optional: true}))
//	defer f.Close()
//
//	_ = f.OnBlur("email", validator.Text("bad@"), validator.Email())
//	f.Error("email") // "Please enter a valid email address"
//
// Debounced validations fire on the scheduler's goroutine, so Form guards
// its state with a mutex. Listeners registered with WithListener or
// Subscribe receive a Snapshot after every transition, outside the lock.
// RemoveField and Close cancel pending debounced validations.
package form
