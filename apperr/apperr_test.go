package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  *Error
		want int
	}{
		{Validation("thiếu trường"), http.StatusBadRequest},
		{NotFound("device", "abc"), http.StatusNotFound},
		{Internal("boom", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err.Kind, got, tc.want)
		}
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	base := Validation("số điểm triển khai là bắt buộc")
	wrapped := fmt.Errorf("create quotation: %w", base)

	var appErr *Error
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to find the domain error")
	}
	if appErr.Kind != KindValidation {
		t.Fatalf("kind = %v, want validation", appErr.Kind)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("primary down")
	err := Internal("ping mongodb", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to reach the cause")
	}
}
