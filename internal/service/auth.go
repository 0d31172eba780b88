package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rody-huancas/expense-tracker-api/internal/config"
	"github.com/rody-huancas/expense-tracker-api/internal/model"
	"github.com/rody-huancas/expense-tracker-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo *repository.UserRepository
	jwtConf  config.JWTConfig
}

func NewAuthService(userRepo *repository.UserRepository, jwtConf config.JWTConfig) *AuthService {
	return &AuthService{userRepo: userRepo, jwtConf: jwtConf}
}

// Register 注册逻辑
func (s *AuthService) Register(ctx context.Context, username, email, password string) error {
	// 密码加密，明文不落库
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	user := &model.User{
		ID:       id.String(),
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	// Email/Username 的唯一性由 DB Unique Index 兜底
	return s.userRepo.Create(ctx, user)
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", errors.New("invalid credentials") // 模糊报错为了安全
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", errors.New("invalid credentials")
	}

	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID string) (string, string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour * time.Duration(s.jwtConf.ExpireHours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString([]byte(s.jwtConf.Secret))
	return ss, userID, err
}
