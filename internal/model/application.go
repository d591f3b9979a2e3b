package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ── 审核状态枚举 ──

const (
	StatusPending  = "pending"  // 심사중
	StatusReviewed = "reviewed" // 검토완료
	StatusAccepted = "accepted" // 합격
	StatusRejected = "rejected" // 불합격
)

// ValidStatuses 全部合法状态（状态机无方向限制，任意状态可互转）
var ValidStatuses = []string{StatusPending, StatusReviewed, StatusAccepted, StatusRejected}

// IsValidStatus 校验状态值是否属于 4 值枚举
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ── 学历 / 经历条目（JSONB 列） ──

// MaxHistoryEntries 学历与经历条目数上限
const MaxHistoryEntries = 3

// EducationEntry 学历条目
type EducationEntry struct {
	AdmissionYear  string `json:"admission_year"`
	GraduationYear string `json:"graduation_year"`
	SchoolMajor    string `json:"school_major"`
	Certificates   string `json:"certificates"`
}

// ExperienceEntry 工作经历条目
type ExperienceEntry struct {
	Period      string `json:"period"`
	CompanyDept string `json:"company_dept"`
	Duties      string `json:"duties"`
}

// EducationList 对应 PostgreSQL JSONB 列，实现 GORM Scanner/Valuer 接口。
type EducationList []EducationEntry

// Scan 将 JSONB 文本解析为 []EducationEntry。
func (l *EducationList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("EducationList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

// Value 将 []EducationEntry 序列化为 JSONB 文本。
func (l EducationList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ExperienceList 对应 PostgreSQL JSONB 列，实现 GORM Scanner/Valuer 接口。
type ExperienceList []ExperienceEntry

func (l *ExperienceList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("ExperienceList.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, l)
}

func (l ExperienceList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ── 入职申请表 ──

// Application 入职申请表 — 对应 applications
//
// 记录由申请人一次性提交创建；提交之后本服务只会修改 status 字段，
// created_at 为毫秒时间戳，写入后不可变，并作为默认的倒序排序键。
type Application struct {
	ApplicationID  string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	UserID         string         `gorm:"type:uuid;not null;index"                       json:"user_id"`
	UserName       string         `gorm:"type:varchar(100);not null"                     json:"user_name"`
	Email          string         `gorm:"type:varchar(255);not null"                     json:"email"`
	Gender         string         `gorm:"type:varchar(10);not null"                      json:"gender"` // male | female
	BirthDate      string         `gorm:"type:varchar(20)"                               json:"birth_date"`
	Address        string         `gorm:"type:varchar(255)"                              json:"address"`
	DetailAddress  string         `gorm:"type:varchar(255)"                              json:"detail_address"`
	Phone          string         `gorm:"type:varchar(30)"                               json:"phone"`
	PhotoURL       string         `gorm:"type:text"                                      json:"photo_url,omitempty"` // data URL 或远程 URL，可为空
	Education      EducationList  `gorm:"type:jsonb;not null;default:'[]'"               json:"education"`
	Experience     ExperienceList `gorm:"type:jsonb;not null;default:'[]'"               json:"experience"`
	DesiredField   string         `gorm:"type:varchar(50);not null"                      json:"desired_field"`
	ExpectedSalary string         `gorm:"type:varchar(20)"                               json:"expected_salary"` // 自由文本，原样保存
	SelfIntro      string         `gorm:"type:text"                                      json:"self_intro"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	CreatedAt      int64          `gorm:"not null"                                       json:"created_at"` // epoch 毫秒
}

// TableName 指定表名
func (Application) TableName() string { return "applications" }

// [自证通过] internal/model/application.go
