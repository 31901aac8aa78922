package validate_test

import (
	"errors"
	"strings"
	"testing"

	apperrors "lotus/internal/platform/errors"
	"lotus/internal/platform/validate"
)

type credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Level    string `validate:"omitempty,oneof=debug info"`
}

func TestStructAcceptsValidInput(t *testing.T) {
	t.Parallel()
	if err := validate.Struct(credentials{Email: "ada@example.org", Password: "x"}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestStructFormatsFieldErrors(t *testing.T) {
	t.Parallel()
	err := validate.Struct(credentials{Email: "not-an-email", Level: "loud"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"email must be a valid email", "password is required", "level must be one of: debug info"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}
