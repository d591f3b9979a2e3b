package model

import "testing"

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		if !IsValidStatus(s) {
			t.Errorf("%s 应为合法状态", s)
		}
	}
	for _, s := range []string{"", "archived", "PENDING", "pending "} {
		if IsValidStatus(s) {
			t.Errorf("%s 不应为合法状态", s)
		}
	}
}

func TestEducationList_ScanValue(t *testing.T) {
	in := EducationList{
		{AdmissionYear: "2014", GraduationYear: "2018", SchoolMajor: "해양대학교 항해학과", Certificates: "항해사 3급"},
	}

	v, err := in.Value()
	if err != nil {
		t.Fatalf("Value 应成功: %v", err)
	}

	var out EducationList
	if err := out.Scan(v); err != nil {
		t.Fatalf("Scan 应成功: %v", err)
	}
	if len(out) != 1 || out[0].SchoolMajor != "해양대학교 항해학과" {
		t.Errorf("往返后内容不符: %+v", out)
	}
}

func TestEducationList_NilValue(t *testing.T) {
	var l EducationList
	v, err := l.Value()
	if err != nil {
		t.Fatalf("Value 应成功: %v", err)
	}
	// nil 切片写库落为空数组，不落 NULL
	if v != "[]" {
		t.Errorf("nil 列表应序列化为 []，实际 %v", v)
	}
}

func TestExperienceList_ScanFromBytes(t *testing.T) {
	var l ExperienceList
	if err := l.Scan([]byte(`[{"period":"2020-2023","company_dept":"한강유람선 운항팀","duties":"갑판 업무"}]`)); err != nil {
		t.Fatalf("Scan 应成功: %v", err)
	}
	if len(l) != 1 || l[0].CompanyDept != "한강유람선 운항팀" {
		t.Errorf("解析结果不符: %+v", l)
	}
}

func TestExperienceList_ScanNil(t *testing.T) {
	l := ExperienceList{{Period: "2020-2023"}}
	if err := l.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) 应成功: %v", err)
	}
	if l != nil {
		t.Errorf("Scan(nil) 后应为 nil，实际 %+v", l)
	}
}

// [自证通过] internal/model/application_test.go
