package domain_test

import (
	"errors"
	"testing"

	"campushub/internal/domain"
)

func TestAppErrorKinds(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"validation", domain.NewValidationError([]string{"Title is required", "Price must be greater than 0"}), domain.ErrValidation, "Title is required; Price must be greater than 0"},
		{"not found", domain.NewNotFoundError("marketplace item", 7), domain.ErrNotFound, "marketplace item 7 not found"},
		{"persistence", domain.NewPersistenceError("updating item status", cause), domain.ErrPersistence, "an error occurred while updating item status"},
		{"forbidden", domain.NewForbiddenError(""), domain.ErrForbidden, "forbidden"},
		{"conflict", domain.NewConflictError("Username is already taken"), domain.ErrConflict, "Username is already taken"},
		{"unauthorized", domain.NewUnauthorizedError(), domain.ErrUnauthorized, "invalid username or password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			if got := domain.PublicMessage(tt.err); got != tt.msg {
				t.Errorf("PublicMessage = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestPersistenceErrorKeepsCause(t *testing.T) {
	cause := errors.New("deadlock")
	err := domain.NewPersistenceError("resolving report", cause)
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through errors.Is")
	}
	if errors.Is(err, domain.ErrNotFound) {
		t.Fatal("persistence error matched ErrNotFound")
	}
	if domain.PublicMessage(err) == err.Error() {
		t.Fatal("public message leaks the cause")
	}
}

func TestPublicMessageForForeignError(t *testing.T) {
	if got := domain.PublicMessage(errors.New("boom")); got != "internal server error" {
		t.Errorf("got %q", got)
	}
}
