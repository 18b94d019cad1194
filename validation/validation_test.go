package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/testrail/errors"
)

func TestValidatorPositive(t *testing.T) {
	if err := New().Positive("project_id", 1).Err(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	err := New().Positive("project_id", 0).Positive("suite_id", -3).Err()
	if err == nil {
		t.Fatal("expected error for non-positive ids")
	}
	if !errors.IsValidation(err) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
	if !strings.Contains(err.Error(), "project_id") || !strings.Contains(err.Error(), "suite_id") {
		t.Errorf("expected both fields in message, got %q", err.Error())
	}
}

func TestID(t *testing.T) {
	if err := ID("run_id", 5); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := ID("run_id", 0); !errors.IsValidation(err) {
		t.Errorf("expected INVALID_INPUT for zero id, got %v", err)
	}
}

func TestEmail_Func(t *testing.T) {
	if err := Email("qa@example.com"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := Email("qa@"); err == nil {
		t.Error("expected error for malformed address")
	}
}

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "Release 1")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "   ")
	if !v2.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorNotNil(t *testing.T) {
	v := New().NotNil("project", false)
	if len(v.Errors()) != 1 || v.Errors()[0].Field != "project" {
		t.Errorf("expected one error for project, got %v", v.Errors())
	}
}

func TestValidatorRequiredUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", uuid.New().String(), false},
		{"empty", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New().RequiredUUID("entry_id", tt.value)
			if v.HasErrors() != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, v.Errors())
			}
		})
	}
}

func TestValidatorEmail(t *testing.T) {
	if New().Email("email", "jane@example.com").HasErrors() {
		t.Error("expected valid email to pass")
	}
	if !New().Email("email", "jane").HasErrors() {
		t.Error("expected invalid email to fail")
	}
}

type sample struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Username string `json:"username" validate:"required"`
	Count    int    `validate:"gt=0"`
}

func TestValidate_Struct(t *testing.T) {
	if err := Validate(sample{Endpoint: "https://example.testrail.io/", Username: "u", Count: 1}); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := Validate(sample{})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"endpoint: is required", "username: is required", "count: must be greater than 0"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}
