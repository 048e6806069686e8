package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind is the machine-parseable failure code carried alongside the
// human-readable message in every error response.
type Kind string

const (
	KindRequiredFieldMissing Kind = "RequiredFieldMissing"
	KindInvalidNumber        Kind = "InvalidNumber"
	KindNegativeValue        Kind = "NegativeValue"
	KindNonPositiveValue     Kind = "NonPositiveValue"
	KindInvalidEnumValue     Kind = "InvalidEnumValue"
	KindInvalidDate          Kind = "InvalidDate"
	KindReferenceNotFound    Kind = "ReferenceNotFound"
	KindNotFound             Kind = "NotFound"
	KindInternal             Kind = "Internal"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

// BadRequest: a validation failure (400).
func BadRequest(kind Kind, message string) *Error {
	return New(kind, fiber.StatusBadRequest, message)
}

// NotFound: the addressed entity itself is absent (404).
func NotFound(entity string) *Error {
	return New(KindNotFound, fiber.StatusNotFound, fmt.Sprintf("%s not found.", entity))
}

// ReferenceNotFound: a foreign-key field points at a missing row (404).
func ReferenceNotFound(entity string) *Error {
	return New(KindReferenceNotFound, fiber.StatusNotFound, fmt.Sprintf("%s not found.", entity))
}

// Internal: unexpected fault, surfaced without leaking internals (500).
func Internal(message string) *Error {
	return New(KindInternal, fiber.StatusInternalServerError, message)
}
