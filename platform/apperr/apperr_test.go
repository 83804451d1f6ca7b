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
		{Validation("x"), http.StatusBadRequest},
		{Unauthorized("x"), http.StatusUnauthorized},
		{Conflict("x"), http.StatusConflict},
		{New(KindInternal, "x"), http.StatusInternalServerError},
		{New(KindUnknown, "x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := tc.err.HTTPStatus(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.err.Kind, tc.want, got)
		}
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("outer: %w", Wrap(KindInternal, "failed to list leads", cause).WithOp("leads.List"))

	if !Is(err, KindInternal) {
		t.Fatalf("expected internal kind, got %s", GetKind(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to be reachable")
	}
	if GetKind(cause) != KindUnknown {
		t.Fatal("plain errors have no kind")
	}
	if got := err.Error(); got != "outer: leads.List: failed to list leads: connection refused" {
		t.Fatalf("unexpected message %q", got)
	}
}
