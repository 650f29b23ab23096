package jobextract

import (
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestValidateAcceptsMinimalResult(t *testing.T) {
	r := &Result{}
	if errs := Validate(r); len(errs) != 0 {
		t.Fatalf("expected empty result to validate, got %v", errs)
	}
}

func TestValidateSalaryOrdering(t *testing.T) {
	r := &Result{Salary: Salary{Minimum: ptr(50000), Maximum: ptr(20000)}}
	errs := Validate(r)
	if len(errs) == 0 {
		t.Fatal("expected salary ordering violation")
	}
	if !strings.Contains(errs[0], "salary.maximum") {
		t.Errorf("error should name salary.maximum, got %q", errs[0])
	}
}

func TestValidateAgeOrdering(t *testing.T) {
	r := &Result{AgeCriteria: AgeCriteria{MinimumAge: ptr(30), MaximumAge: ptr(18)}}
	errs := Validate(r)
	if len(errs) != 1 || !strings.Contains(errs[0], "ageCriteria.maximumAge") {
		t.Errorf("expected one ageCriteria.maximumAge violation, got %v", errs)
	}
}

func TestValidateVacancySumTolerance(t *testing.T) {
	tests := []struct {
		name    string
		general int
		obc     int
		wantOK  bool
	}{
		{"double counted", 150, 50, false}, // sum 200 vs total 100
		{"within tolerance", 100, 15, true}, // sum 115 vs total 100
		{"exactly at tolerance", 100, 20, true},
		{"just over tolerance", 100, 21, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Result{Vacancies: Vacancies{
				Total:   ptr(100),
				General: ptr(tt.general),
				OBC:     ptr(tt.obc),
			}}
			errs := Validate(r)
			if ok := len(errs) == 0; ok != tt.wantOK {
				t.Errorf("valid = %v, want %v (errs %v)", ok, tt.wantOK, errs)
			}
		})
	}
}

func TestValidateDateFormat(t *testing.T) {
	r := &Result{ImportantDates: ImportantDates{
		ApplicationEnd: ptr("15/08/2025"),
		ExamDate:       ptr("2025-09-20"),
	}}
	errs := Validate(r)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one date violation, got %v", errs)
	}
	if !strings.Contains(errs[0], "importantDates.applicationEnd") {
		t.Errorf("error should name the bad field, got %q", errs[0])
	}
}

func TestValidateInsightsBounds(t *testing.T) {
	r := &Result{AIInsights: AIInsights{
		DifficultyScore:          ptr(11),
		CompetitionLevel:         ptr("Extreme"),
		EstimatedPreparationTime: ptr("5 years"),
		ShortSummary:             ptr("too short"),
	}}
	errs := Validate(r)
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations accumulated, got %d: %v", len(errs), errs)
	}
}

func TestValidateAccumulatesAcrossGroups(t *testing.T) {
	r := &Result{
		Salary:      Salary{Minimum: ptr(100), Maximum: ptr(50)},
		AgeCriteria: AgeCriteria{MinimumAge: ptr(40), MaximumAge: ptr(20)},
		SelectionProcess: []SelectionStage{
			{Stage: 0, Name: ""},
		},
	}
	errs := Validate(r)
	if len(errs) != 4 {
		t.Fatalf("expected 4 violations (salary, age, stage, name), got %d: %v", len(errs), errs)
	}
}
