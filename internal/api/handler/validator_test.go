package handler

import (
	"strings"
	"testing"
)

func TestValidator_JSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createAttendanceRequest{Date: "2024-06-01", Status: "present"})
	if err == nil {
		t.Fatalf("expected validation error for missing user_id")
	}
	if !strings.Contains(err.Error(), "user_id") {
		t.Fatalf("expected message to use the json field name, got %q", err)
	}
}

func TestValidator_RoleMessage(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{
		Username: "alice", Password: "pw123456", Email: "a@example.com", Role: "owner",
	})
	if err == nil {
		t.Fatalf("expected validation error for unknown role")
	}
	if !strings.Contains(err.Error(), "role must be super_admin, admin or employee") {
		t.Fatalf("unexpected role message: %q", err)
	}
}

func TestValidator_MultipleErrorsJoined(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerRequest{Username: "al", Password: "pw", Email: "not-an-email", Role: "admin"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"username", "password", "email must be a valid email address", "; "} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestValidator_ValidPayload(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&loginRequest{Username: "alice", Password: "pw123456"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
