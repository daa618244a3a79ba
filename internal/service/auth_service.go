package service

import (
	"context"
	"courseware_backend/internal/config"
	"courseware_backend/internal/model"
	"courseware_backend/internal/repository"
	"courseware_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

func NewAuthService(users repository.UserRepository, cfg config.JWTConfig) *AuthService {
	return &AuthService{users: users, jwt: cfg}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, notFound(err, util.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) IssueToken(user *model.User) (string, error) {
	return util.GenerateJWT(user, s.jwt.Secret, s.jwt.ExpireTime)
}

func (s *AuthService) ParseToken(token string) (*util.Claims, error) {
	return util.ParseJWT(token, s.jwt.Secret)
}

func (s *AuthService) Me(ctx context.Context, actor Actor) (*model.User, error) {
	user, err := s.users.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, notFound(err, util.ErrUserNotFound)
	}
	return user, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
