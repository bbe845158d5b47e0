package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrVisaTypeNotFound    = errors.New("visa type not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrUserNotFound        = errors.New("user not found")
)

// ValidationError reports every missing or invalid field of a
// submission at once so the applicant can fix the whole form in one
// pass.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
