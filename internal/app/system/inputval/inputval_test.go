package inputval

import (
	"strings"
	"testing"
)

type sampleInput struct {
	Title      string `validate:"required,max=100" label:"Title"`
	ProjectURL string `validate:"httpurl" label:"Project URL"`
	Email      string `validate:"required,email" label:"Email"`
	RefID      string `validate:"objectid" label:"Reference"`
}

func TestValidate_AllValid(t *testing.T) {
	res := Validate(sampleInput{
		Title:      "Help with my project",
		ProjectURL: "https://github.com/someone/project",
		Email:      "student@example.edu",
		RefID:      "507f1f77bcf86cd799439011",
	})
	if res.HasErrors() {
		t.Errorf("unexpected errors: %s", res.All())
	}
}

func TestValidate_Required(t *testing.T) {
	res := Validate(sampleInput{Email: "a@b.com"})
	if !res.HasErrors() {
		t.Fatal("expected error for missing title")
	}
	if res.First() != "Title is required." {
		t.Errorf("First: got %q", res.First())
	}
}

func TestValidate_MaxLength(t *testing.T) {
	res := Validate(sampleInput{
		Title: strings.Repeat("x", 101),
		Email: "a@b.com",
	})
	if !res.HasErrors() {
		t.Fatal("expected max-length error")
	}
	if res.First() != "Title must be at most 100 characters." {
		t.Errorf("First: got %q", res.First())
	}
}

func TestValidate_OptionalFieldsSkipWhenEmpty(t *testing.T) {
	res := Validate(sampleInput{Title: "ok", Email: "a@b.com"})
	if res.HasErrors() {
		t.Errorf("empty optional fields should pass, got: %s", res.All())
	}
}

func TestValidate_HTTPURL(t *testing.T) {
	res := Validate(sampleInput{Title: "ok", Email: "a@b.com", ProjectURL: "ftp://example.com"})
	if !res.HasErrors() {
		t.Fatal("expected URL error")
	}
	if !strings.Contains(res.First(), "Project URL") {
		t.Errorf("First: got %q", res.First())
	}
}

func TestValidate_Email(t *testing.T) {
	res := Validate(sampleInput{Title: "ok", Email: "not-an-email"})
	if !res.HasErrors() {
		t.Fatal("expected email error")
	}
}

func TestValidate_ObjectID(t *testing.T) {
	res := Validate(sampleInput{Title: "ok", Email: "a@b.com", RefID: "nope"})
	if !res.HasErrors() {
		t.Fatal("expected objectid error")
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	res := Validate(sampleInput{ProjectURL: "bad"})
	if len(res.Errors) < 2 {
		t.Errorf("expected multiple errors, got %d: %s", len(res.Errors), res.All())
	}
}
