package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestError_Is_MatchesByCode(t *testing.T) {
	err := Unauthorized("you must be logged in to vote")
	if !Is(err, ErrUnauthorized) {
		t.Errorf("expected %v to match ErrUnauthorized", err)
	}
	if Is(err, ErrNotFound) {
		t.Errorf("did not expect %v to match ErrNotFound", err)
	}
}

func TestError_WrappingPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, CodeUnavailable, "request to /api/Shelving/addBook failed")

	if !Is(err, ErrUnavailable) {
		t.Errorf("wrapped error should match ErrUnavailable")
	}
	if Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", Unwrap(err), cause)
	}
	want := "request to /api/Shelving/addBook failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_WithCause(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := ErrBadResponse.WithCause(cause)

	if !Is(err, ErrBadResponse) {
		t.Errorf("WithCause should preserve the code")
	}
	if Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", Unwrap(err), cause)
	}
	// The sentinel itself must stay untouched.
	if ErrBadResponse.cause != nil {
		t.Errorf("sentinel must not be mutated")
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Code
	}{
		{http.StatusNotFound, CodeNotFound},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeUnauthorized},
		{http.StatusBadRequest, CodeValidation},
		{http.StatusTooManyRequests, CodeRateLimited},
		{http.StatusInternalServerError, CodeRemote},
		{http.StatusBadGateway, CodeRemote},
	}

	for _, tt := range tests {
		if got := FromStatus(tt.status); got != tt.want {
			t.Errorf("FromStatus(%d) = %s, want %s", tt.status, got, tt.want)
		}
	}
}
