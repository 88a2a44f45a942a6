package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "jane", "jane@", "@example.com", "jane@example"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("expected short password to fail")
	}
	if ok, _ := ValidatePassword(" padded-pass "); ok {
		t.Error("expected padded password to fail")
	}
	if ok, msg := ValidatePassword("long-enough-pass"); !ok {
		t.Errorf("expected password to pass, got %q", msg)
	}
}

func TestIsVideoContentType(t *testing.T) {
	for _, ct := range []string{"video/mp4", "video/webm", " VIDEO/quicktime"} {
		if !IsVideoContentType(ct) {
			t.Errorf("expected %q to be accepted", ct)
		}
	}
	for _, ct := range []string{"", "image/png", "application/octet-stream", "text/video"} {
		if IsVideoContentType(ct) {
			t.Errorf("expected %q to be refused", ct)
		}
	}
}
