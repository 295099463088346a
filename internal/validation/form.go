// Package validation collects form field errors in the format the API returns them.
package validation

import (
	"fmt"

	"photoshare/internal/models"
	"photoshare/internal/storage"
)

const (
	MsgRequired   = "This field is required."
	MsgImagesOnly = "Images only!"
)

// Form accumulates field errors in the order fields are checked.
type Form struct {
	errs []string
}

// Add records msg against the field shown to users as label.
func (f *Form) Add(label, msg string) {
	f.errs = append(f.errs, fmt.Sprintf("Error in the %s field - %s", label, msg))
}

// Required fails when value is empty. Whitespace counts as input.
func (f *Form) Required(label, value string) {
	if value == "" {
		f.Add(label, MsgRequired)
	}
}

// Image requires an uploaded file that is a JPEG or PNG with a .jpg or .png name.
func (f *Form) Image(label, filename string, content []byte, present bool) {
	if !present || filename == "" {
		f.Add(label, MsgRequired)
		return
	}
	if err := storage.ValidateImage(filename, content); err != nil {
		f.Add(label, MsgImagesOnly)
	}
}

// Errors returns the collected messages.
func (f *Form) Errors() []string {
	return f.errs
}

// Err returns a validation AppError carrying every message, or nil when the form is valid.
func (f *Form) Err() error {
	if len(f.errs) == 0 {
		return nil
	}
	return models.NewFormError(f.errs)
}
