// Package lserror exposes the error taxonomy rendered by the listara server.
package lserror

import (
	"net/http"

	"github.com/pkg/errors"
)

// Tags carried by the errors of the taxonomy.
const (
	// TagNotFound marks an addressed list/item identifier with no backing
	// record. Lists lazily materialize instead of producing it.
	TagNotFound = "not-found"
	// TagValidationFailed marks a missing or empty required text field.
	TagValidationFailed = "validation-failed"
	// TagDuplicateItem marks an item addition whose text already exists in the
	// target list. A soft, user-correctable condition distinct from
	// TagValidationFailed.
	TagDuplicateItem = "duplicate-item"
)

// An LSError represents an error that can be rendered by the listara server.
type LSError struct {
	HTTPCode int
	Tag      string
	Message  string
}

// StatusCode returns the HTTP status code.
func StatusCode(err error) int {
	if lserr, ok := errors.Cause(err).(*LSError); ok {
		return lserr.HTTPCode
	}
	return http.StatusInternalServerError
}

// New returns a new LSError with the given message.
func New(message string) *LSError {
	return &LSError{HTTPCode: http.StatusInternalServerError, Message: message}
}

// NewNotFound returns a new not-found LSError.
func NewNotFound(message string) *LSError {
	return &LSError{HTTPCode: http.StatusNotFound, Tag: TagNotFound, Message: message}
}

// NewValidationFailed returns a new validation LSError.
// The UI answers validation misses with a neutral empty response, hence the
// 200 status code.
func NewValidationFailed(message string) *LSError {
	return &LSError{HTTPCode: http.StatusOK, Tag: TagValidationFailed, Message: message}
}

// NewDuplicateItem returns a new duplicate-item LSError. It is rendered as a
// transient notice, not as a failure status.
func NewDuplicateItem(message string) *LSError {
	return &LSError{HTTPCode: http.StatusOK, Tag: TagDuplicateItem, Message: message}
}

// Error implements error interface.
func (e *LSError) Error() string {
	return e.Message
}

// IsNotFound returns true if err carries TagNotFound.
func IsNotFound(err error) bool {
	return is(err, TagNotFound)
}

// IsValidationFailed returns true if err carries TagValidationFailed.
func IsValidationFailed(err error) bool {
	return is(err, TagValidationFailed)
}

// IsDuplicateItem returns true if err carries TagDuplicateItem.
func IsDuplicateItem(err error) bool {
	return is(err, TagDuplicateItem)
}

func is(err error, tag string) bool {
	lserr, ok := errors.Cause(err).(*LSError)
	return ok && lserr.Tag == tag
}
