package models

import "testing"

func TestSubmissionStatusValid(t *testing.T) {
	for _, s := range []SubmissionStatus{StatusPending, StatusApproved, StatusRejected} {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []SubmissionStatus{"", "PENDING", "done"} {
		if s.Valid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSubmissionStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Error("pending must not be terminal")
	}
	if !StatusApproved.Terminal() || !StatusRejected.Terminal() {
		t.Error("approved and rejected are terminal")
	}
}

func TestUserDisplayName(t *testing.T) {
	u := &User{FullName: "Jane Doe", Email: "jane@example.com"}
	if got := u.DisplayName(); got != "Jane Doe" {
		t.Errorf("unexpected display name: %q", got)
	}

	u.FullName = ""
	if got := u.DisplayName(); got != "jane@example.com" {
		t.Errorf("expected email fallback, got %q", got)
	}
}
