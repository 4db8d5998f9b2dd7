package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "known error code",
			code:    "V001",
			wantMsg: "Document references an unregistered component",
			wantCat: CategoryDocument,
		},
		{
			name:    "registry error",
			code:    "V020",
			wantMsg: "Duplicate component registration",
			wantCat: CategoryRegistry,
		},
		{
			name:    "unknown error code",
			code:    "V999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "file %q not found", "home.vellum.json")
	if err.Message != `file "home.vellum.json" not found` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestVellumError_Error(t *testing.T) {
	err := New("V001")
	want := "V001: Document references an unregistered component"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err2 := &VellumError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := New("V003").Wrap(cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed through VellumError")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("V002").
		WithSuggestion("declare a migration from the document's version").
		Wrap(errors.New("component \"Button\": document version 0.5.0 is incompatible"))

	out := err.Format()
	for _, want := range []string{
		"ERROR V002",
		"Hint: declare a migration",
		"cause: component",
		"Learn more:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "V001") != nil {
		t.Error("FromError(nil) should be nil")
	}
	cause := errors.New("boom")
	err := FromError(cause, "V999")
	if err.Detail != "boom" {
		t.Errorf("Detail = %q, want cause text", err.Detail)
	}
}
