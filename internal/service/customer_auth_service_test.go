package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/toybox-next/internal/config"
	"github.com/toybox-next/internal/models"
	"github.com/toybox-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCustomerAuthTest(t *testing.T) (*CustomerAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:customer_auth_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-customer-auth-0001"
	cfg.CustomerJWT.ExpireHours = 168
	cfg.Store.DefaultLocale = "ar-EG"
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireLower:  true,
		RequireNumber: true,
	}

	return NewCustomerAuthService(cfg, repository.NewCustomerRepository(db)), db
}

func TestCustomerRegisterAndLogin(t *testing.T) {
	svc, _ := setupCustomerAuthTest(t)

	customer, err := svc.Register(RegisterCustomerInput{
		Name:     "سارة",
		Email:    "Sara@Example.com",
		Password: "password123",
		Phone:    "0101111111",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if customer.Email != "sara@example.com" {
		t.Fatalf("expected lowercased email, got %s", customer.Email)
	}
	if customer.Locale != "ar-EG" {
		t.Fatalf("expected default locale ar-EG, got %s", customer.Locale)
	}
	if !customer.IsActive {
		t.Fatalf("expected new customer active")
	}
	if customer.PasswordHash == "password123" {
		t.Fatalf("password stored in plain text")
	}

	logged, token, expiresAt, err := svc.Login("SARA@example.com", "password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != customer.ID {
		t.Fatalf("unexpected customer id %d", logged.ID)
	}
	if token == "" || expiresAt.Before(time.Now()) {
		t.Fatalf("invalid token result")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.CustomerID != customer.ID {
		t.Fatalf("expected customer id in claims, got %d", claims.CustomerID)
	}
}

func TestCustomerRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupCustomerAuthTest(t)
	input := RegisterCustomerInput{Name: "سارة", Email: "sara@example.com", Password: "password123"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	input.Email = "SARA@EXAMPLE.COM"
	if _, err := svc.Register(input); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestCustomerRegisterPasswordPolicy(t *testing.T) {
	svc, _ := setupCustomerAuthTest(t)
	cases := []string{"short1", "longenoughbutnonumber", "12345678"}
	for _, password := range cases {
		_, err := svc.Register(RegisterCustomerInput{Name: "سارة", Email: "sara@example.com", Password: password})
		if !errors.Is(err, ErrPasswordPolicy) {
			t.Fatalf("password %q: expected policy error, got %v", password, err)
		}
	}
}

func TestCustomerLoginWrongPassword(t *testing.T) {
	svc, _ := setupCustomerAuthTest(t)
	if _, err := svc.Register(RegisterCustomerInput{Name: "سارة", Email: "sara@example.com", Password: "password123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Login("sara@example.com", "wrongpass123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "password123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestCustomerLoginDisabledAccount(t *testing.T) {
	svc, db := setupCustomerAuthTest(t)
	customer, err := svc.Register(RegisterCustomerInput{Name: "سارة", Email: "sara@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(&models.Customer{}).Where("id = ?", customer.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("disable customer failed: %v", err)
	}
	if _, _, _, err := svc.Login("sara@example.com", "password123"); err != ErrAccountDisabled {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestCustomerUpdateProfile(t *testing.T) {
	svc, _ := setupCustomerAuthTest(t)
	customer, err := svc.Register(RegisterCustomerInput{Name: "سارة", Email: "sara@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateProfile(customer.ID, "سارة أحمد", "0102222222", "الجيزة")
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.Name != "سارة أحمد" || updated.Phone != "0102222222" || updated.Address != "الجيزة" {
		t.Fatalf("unexpected profile: %+v", updated)
	}

	if _, err := svc.UpdateProfile(customer.ID+100, "x", "", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
