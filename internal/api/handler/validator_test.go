package handler

import (
	"strings"
	"testing"
)

func TestValidator_RequiredFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&credentialsRequest{Username: "alice"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "password must not be empty") {
		t.Fatalf("unexpected message: %v", err)
	}

	if err := v.Validate(&credentialsRequest{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}
