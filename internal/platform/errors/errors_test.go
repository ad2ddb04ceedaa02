package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code    Code
		status  int
		details bool
	}{
		{CodeValidation, http.StatusBadRequest, true},
		{CodeUnauthorized, http.StatusUnauthorized, false},
		{CodeForbidden, http.StatusForbidden, false},
		{CodeNotFound, http.StatusNotFound, false},
		{CodeConflict, http.StatusConflict, true},
		{CodeInternal, http.StatusInternalServerError, false},
		{CodeDependency, http.StatusServiceUnavailable, true},
	}

	for _, tc := range tests {
		meta := MetadataFor(tc.code)
		if meta.HTTPStatus != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.code, meta.HTTPStatus, tc.status)
		}
		if meta.DetailsAllowed != tc.details {
			t.Fatalf("%s: details allowed = %v, want %v", tc.code, meta.DetailsAllowed, tc.details)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("SOMETHING_ELSE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", meta.HTTPStatus)
	}
}

func TestAsFindsWrappedError(t *testing.T) {
	base := New(CodeNotFound, "zone not found")
	wrapped := fmt.Errorf("zones: get: %w", base)

	got := As(wrapped)
	if got == nil {
		t.Fatal("expected typed error")
	}
	if got.Code() != CodeNotFound {
		t.Fatalf("code = %s, want %s", got.Code(), CodeNotFound)
	}
	if !IsCode(wrapped, CodeNotFound) {
		t.Fatal("IsCode should match wrapped code")
	}
	if IsCode(stdErrors.New("plain"), CodeNotFound) {
		t.Fatal("IsCode should not match plain errors")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stdErrors.New("redis down")
	err := Wrap(CodeDependency, cause, "session store unavailable")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}

	dump := Dump(fmt.Errorf("auth: login: %w", err))
	if dump.Code != CodeDependency {
		t.Fatalf("dump code = %s, want %s", dump.Code, CodeDependency)
	}
	if len(dump.Chain) != 3 {
		t.Fatalf("chain length = %d, want 3", len(dump.Chain))
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "missing report filters").WithDetails(map[string]any{"missing": []string{"type"}})
	details, ok := err.Details().(map[string]any)
	if !ok {
		t.Fatalf("details type = %T", err.Details())
	}
	if _, ok := details["missing"]; !ok {
		t.Fatal("expected missing key in details")
	}
}
