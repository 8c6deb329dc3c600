package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeBlogNotFound = "BLOG001"
	ErrCodeValidation   = "BLOG002"
	ErrCodeStore        = "BLOG003"
)

// Validation messages returned verbatim to the client.
const (
	MsgTitleRequired   = "Title is required and cannot be empty"
	MsgBodyRequired    = "Body is required and cannot be empty"
	MsgTitleEmpty      = "Title cannot be empty"
	MsgBodyEmpty       = "Body cannot be empty"
	MsgNoUpdateFields  = "No valid fields to update"
	MsgInvalidBlogID   = "Invalid blog ID format"
	MsgBlogNotFound    = "Blog not found"
	MsgInvalidBodyJSON = "Invalid request body"
)

// Errors
var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrInvalidBlogID = errors.New("invalid blog id")
	ErrValidation    = errors.New("validation failed")
	ErrStore         = errors.New("blog store failure")
)

// BlogError is the outcome of every failed blog operation. Code tells the
// HTTP layer which status to answer with.
type BlogError struct {
	Code    string
	Message string
	Err     error
}

func (e *BlogError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BlogError) Unwrap() error {
	return e.Err
}

// Cause returns the message of the underlying error, or the error message
// itself when nothing is wrapped.
func (e *BlogError) Cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Error constructors
func NewBlogNotFoundError() *BlogError {
	return &BlogError{
		Code:    ErrCodeBlogNotFound,
		Message: MsgBlogNotFound,
		Err:     ErrBlogNotFound,
	}
}

func NewInvalidBlogIDError() *BlogError {
	return &BlogError{
		Code:    ErrCodeValidation,
		Message: MsgInvalidBlogID,
		Err:     ErrInvalidBlogID,
	}
}

func NewValidationError(message string) *BlogError {
	return &BlogError{
		Code:    ErrCodeValidation,
		Message: message,
		Err:     ErrValidation,
	}
}

// NewStoreError wraps a driver failure. op names the document operation,
// e.g. "insert blog".
func NewStoreError(op string, err error) *BlogError {
	if err == nil {
		err = ErrStore
	}
	return &BlogError{
		Code:    ErrCodeStore,
		Message: op,
		Err:     err,
	}
}

// IsNotFound reports whether err is a not-found outcome.
func IsNotFound(err error) bool {
	var blogErr *BlogError
	if errors.As(err, &blogErr) {
		return blogErr.Code == ErrCodeBlogNotFound
	}
	return errors.Is(err, ErrBlogNotFound)
}
