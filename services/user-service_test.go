package services

import (
	"context"
	"errors"
	"testing"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/repositories"
)

func signUpRequest(email string) SignUpRequest {
	return SignUpRequest{
		FirstName:  "Laura",
		LastName:   "Gómez",
		Email:      email,
		Password:   "secreta1",
		Country:    "Colombia",
		Department: "Cundinamarca",
		City:       "Bogotá",
	}
}

func TestSignUpAndSignIn(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	manager, err := svc.SignUp(ctx, signUpRequest("laura@example.com"))
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if manager.ID == "" {
		t.Fatal("SignUp returned a manager without id")
	}
	if manager.Password != "" {
		t.Error("SignUp response must not carry the password")
	}
	if manager.CompanyIDs == nil || len(manager.CompanyIDs) != 0 {
		t.Errorf("CompanyIDs = %v, want empty set", manager.CompanyIDs)
	}

	signedIn, token, err := svc.SignIn(ctx, "laura@example.com", "secreta1")
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}
	if token == "" {
		t.Error("SignIn returned an empty token")
	}
	if signedIn.ID != manager.ID {
		t.Errorf("SignIn id = %q, want %q", signedIn.ID, manager.ID)
	}

	// Email matching ignores case and padding.
	if _, _, err := svc.SignIn(ctx, "  LAURA@example.com ", "secreta1"); err != nil {
		t.Errorf("SignIn with unnormalized email failed: %v", err)
	}
}

func TestSignUpRejectsBadInput(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SignUpRequest)
	}{
		{name: "missing first name", mutate: func(r *SignUpRequest) { r.FirstName = " " }},
		{name: "missing last name", mutate: func(r *SignUpRequest) { r.LastName = "" }},
		{name: "bad email", mutate: func(r *SignUpRequest) { r.Email = "not-an-email" }},
		{name: "short password", mutate: func(r *SignUpRequest) { r.Password = "abc" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signUpRequest("x@example.com")
			tt.mutate(&req)
			_, err := svc.SignUp(ctx, req)
			var validation *apperrors.ValidationError
			if !errors.As(err, &validation) {
				t.Errorf("SignUp returned %v, want ValidationError", err)
			}
		})
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, signUpRequest("dup@example.com")); err != nil {
		t.Fatalf("first SignUp failed: %v", err)
	}

	_, err := svc.SignUp(ctx, signUpRequest("dup@example.com"))
	var auth *apperrors.AuthError
	if !errors.As(err, &auth) {
		t.Fatalf("duplicate SignUp returned %v, want AuthError", err)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, signUpRequest("laura@example.com")); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "laura@example.com", password: "incorrecta"},
		{name: "unknown email", email: "nadie@example.com", password: "secreta1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.SignIn(ctx, tt.email, tt.password)
			var auth *apperrors.AuthError
			if !errors.As(err, &auth) {
				t.Errorf("SignIn returned %v, want AuthError", err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	manager, err := svc.SignUp(ctx, signUpRequest("laura@example.com"))
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	// Wrong current password is rejected.
	err = svc.ChangePassword(ctx, manager.ID, "incorrecta", "nueva-clave")
	var auth *apperrors.AuthError
	if !errors.As(err, &auth) {
		t.Fatalf("ChangePassword with wrong old password returned %v, want AuthError", err)
	}

	if err := svc.ChangePassword(ctx, manager.ID, "secreta1", "nueva-clave"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}

	if _, _, err := svc.SignIn(ctx, "laura@example.com", "secreta1"); err == nil {
		t.Error("old password still accepted after change")
	}
	if _, _, err := svc.SignIn(ctx, "laura@example.com", "nueva-clave"); err != nil {
		t.Errorf("new password rejected after change: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := repositories.NewMemoryRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	manager, err := svc.SignUp(ctx, signUpRequest("laura@example.com"))
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	manager.FirstName = "Laura Cristina"
	manager.City = "Cali"
	if err := svc.UpdateProfile(ctx, manager); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	stored, err := svc.GetProfile(ctx, manager.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if stored.FirstName != "Laura Cristina" || stored.City != "Cali" {
		t.Errorf("profile not updated: %+v", stored)
	}
	if stored.Password != "" {
		t.Error("GetProfile must not expose the password hash")
	}
}
