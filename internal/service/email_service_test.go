package service

import (
	"testing"

	"github.com/toybox-next/internal/config"
)

func TestSendCustomEmailValidation(t *testing.T) {
	disabled := NewEmailService(&config.EmailConfig{Enabled: false}, "EGP")
	if err := disabled.SendCustomEmail("a@b.com", "", ""); err != ErrEmailServiceDisabled {
		t.Fatalf("expected ErrEmailServiceDisabled, got %v", err)
	}

	incomplete := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com"}, "EGP")
	if err := incomplete.SendCustomEmail("a@b.com", "", ""); err != ErrEmailServiceNotConfigured {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}

	configured := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "store@example.com",
	}, "EGP")
	if err := configured.SendCustomEmail("not-an-address", "", ""); err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
