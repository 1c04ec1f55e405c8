package services

import (
	"context"

	"golang-food-storefront/internal/models"
	"golang-food-storefront/pkg/gateway"
)

type AuthService struct {
	client *gateway.Client
}

func NewAuthService(client *gateway.Client) *AuthService {
	return &AuthService{client: client}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login forwards credentials to the platform and returns its session object.
// Credentials are never inspected or stored here; authentication is remote.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (models.Session, error) {
	var sess models.Session
	if err := s.client.Post(ctx, "/api/auth/login", gateway.Anonymous, req, &sess); err != nil {
		return models.Session{}, err
	}
	if err := sess.Validate(); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (models.Session, error) {
	var sess models.Session
	if err := s.client.Post(ctx, "/api/auth/register", gateway.Anonymous, req, &sess); err != nil {
		return models.Session{}, err
	}
	if err := sess.Validate(); err != nil {
		return models.Session{}, err
	}
	return sess, nil
}
