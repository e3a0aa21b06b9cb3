package services_test

import (
	"errors"
	"strings"
	"testing"

	"shotname/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrFilesystem, "rename", "commit", "rename failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrFilesystem) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"rename", "commit", "rename failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "command failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestFailFastClassification(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{services.Wrap(services.ErrMissingColumn, "order", "check columns", "DateTimeOriginal", nil), true},
		{services.Wrap(services.ErrUnsupportedExtension, "rename", "check extension", ".png", nil), true},
		{services.Wrap(services.ErrFilesystem, "rename", "commit", "", errors.New("io")), false},
		{services.Wrap(services.ErrUnrecognizedValue, "rename", "classify", "", nil), false},
		{nil, false},
	}
	for _, tc := range cases {
		if got := services.FailFast(tc.err); got != tc.want {
			t.Fatalf("FailFast(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
