package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"food-ordering/auth"
	"food-ordering/order-svc/internal/domain"
)

type AuthService struct {
	admins AdminRepository
	issuer *auth.Issuer
}

func NewAuthService(admins AdminRepository, issuer *auth.Issuer) *AuthService {
	return &AuthService{admins: admins, issuer: issuer}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return domain.LoginResponse{}, auth.ErrInvalidCredentials
	}

	admin, err := s.admins.GetAdminByEmail(ctx, email)
	if errors.Is(err, domain.ErrAdminNotFound) {
		return domain.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if err := auth.CheckPassword(admin.PasswordHash, password); err != nil {
		return domain.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(admin.Email, auth.RoleAdmin)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// EnsureAdmin creates the first admin account when none exists yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		log.Printf("[order-svc] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	n, err := s.admins.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.admins.CreateAdmin(ctx, &domain.Admin{Email: email, PasswordHash: hash}); err != nil {
		return err
	}
	log.Printf("[order-svc] bootstrapped admin %s", email)
	return nil
}
