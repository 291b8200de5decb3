// Package apperr definieert de foutsoorten van de kern. Services geven deze
// terug; de handlers vertalen ze in precies één plek naar een HTTP-status.
package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindPermission
	KindSettlement
	KindStorage
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ToFiber vertaalt een kernfout naar een fiber-fout met de juiste status.
// Onbekende fouten worden een generieke 500 zonder interne details.
func ToFiber(err error) error {
	var e *Error
	if !errors.As(err, &e) {
		return fiber.NewError(fiber.StatusInternalServerError, "Serverfout")
	}

	switch e.Kind {
	case KindValidation:
		return fiber.NewError(fiber.StatusBadRequest, e.Message)
	case KindNotFound:
		return fiber.NewError(fiber.StatusNotFound, e.Message)
	case KindConflict:
		return fiber.NewError(fiber.StatusConflict, e.Message)
	case KindPermission:
		return fiber.NewError(fiber.StatusForbidden, e.Message)
	case KindSettlement, KindStorage:
		return fiber.NewError(fiber.StatusInternalServerError, e.Message)
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Serverfout")
	}
}
