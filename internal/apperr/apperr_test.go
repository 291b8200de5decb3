package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(New(KindConflict, "bezet")); got != KindConflict {
		t.Fatalf("verwacht KindConflict, kreeg %v", got)
	}

	wrapped := fmt.Errorf("buitenlaag: %w", New(KindNotFound, "weg"))
	if got := KindOf(wrapped); got != KindNotFound {
		t.Fatalf("verwacht KindNotFound door de wrap heen, kreeg %v", got)
	}

	if got := KindOf(errors.New("kaal")); got != KindUnknown {
		t.Fatalf("verwacht KindUnknown, kreeg %v", got)
	}
}

func TestToFiberStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, fiber.StatusBadRequest},
		{KindNotFound, fiber.StatusNotFound},
		{KindConflict, fiber.StatusConflict},
		{KindPermission, fiber.StatusForbidden},
		{KindSettlement, fiber.StatusInternalServerError},
		{KindStorage, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := ToFiber(New(tt.kind, "bericht"))
		fe, ok := err.(*fiber.Error)
		if !ok {
			t.Fatalf("kind %v: verwacht *fiber.Error, kreeg %T", tt.kind, err)
		}
		if fe.Code != tt.status {
			t.Fatalf("kind %v: verwacht status %d, kreeg %d", tt.kind, tt.status, fe.Code)
		}
		if fe.Message != "bericht" {
			t.Fatalf("kind %v: bericht moet behouden blijven, kreeg %q", tt.kind, fe.Message)
		}
	}
}

func TestToFiberOnbekendeFout(t *testing.T) {
	err := ToFiber(errors.New("interne details die niet naar buiten mogen"))
	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("verwacht *fiber.Error, kreeg %T", err)
	}
	if fe.Code != fiber.StatusInternalServerError {
		t.Fatalf("verwacht 500, kreeg %d", fe.Code)
	}
	if fe.Message != "Serverfout" {
		t.Fatalf("interne details mogen niet lekken, kreeg %q", fe.Message)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("db kapot")
	err := Wrap(KindStorage, "opslag faalde", inner)
	if !errors.Is(err, inner) {
		t.Fatal("Wrap moet de binnenfout bewaren")
	}
	if err.Error() != "opslag faalde: db kapot" {
		t.Fatalf("onverwachte fouttekst: %q", err.Error())
	}
}
