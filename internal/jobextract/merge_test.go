package jobextract

import (
	"reflect"
	"testing"
)

func TestMergeEmptyAndSingle(t *testing.T) {
	if got := Merge(nil); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
	r := &Result{JobInfo: JobInfo{Title: ptr("Clerk")}}
	if got := Merge([]*Result{r}); got != r {
		t.Errorf("single-result merge should return the input unchanged")
	}
}

func TestMergeFirstNonNilWinsForJobInfo(t *testing.T) {
	a := &Result{JobInfo: JobInfo{Title: ptr("SSC CGL 2025"), Department: nil}}
	b := &Result{JobInfo: JobInfo{Title: ptr("ignored later title"), Department: ptr("Staff Selection Commission")}}
	got := Merge([]*Result{a, b})
	if *got.JobInfo.Title != "SSC CGL 2025" {
		t.Errorf("title = %q, want first chunk's title", *got.JobInfo.Title)
	}
	if got.JobInfo.Department == nil || *got.JobInfo.Department != "Staff Selection Commission" {
		t.Errorf("department should be filled from the later chunk")
	}
}

func TestMergeLastNonNilWinsForDates(t *testing.T) {
	a := &Result{ImportantDates: ImportantDates{ApplicationEnd: ptr("2025-08-01")}}
	b := &Result{ImportantDates: ImportantDates{ApplicationEnd: ptr("2025-08-15"), ExamDate: ptr("2025-10-05")}}
	c := &Result{}
	got := Merge([]*Result{a, b, c})
	if *got.ImportantDates.ApplicationEnd != "2025-08-15" {
		t.Errorf("applicationEnd = %q, want the later chunk's value", *got.ImportantDates.ApplicationEnd)
	}
	if *got.ImportantDates.ExamDate != "2025-10-05" {
		t.Errorf("examDate from chunk b must survive a trailing empty chunk")
	}
}

func TestMergeHighestVacancyTotalReplacesGroup(t *testing.T) {
	a := &Result{Vacancies: Vacancies{Total: ptr(500), General: ptr(500)}}
	b := &Result{Vacancies: Vacancies{Total: ptr(7951), General: ptr(3200), OBC: ptr(2100), SC: ptr(1200), ST: ptr(600), EWS: ptr(851)}}
	got := Merge([]*Result{a, b})
	if *got.Vacancies.Total != 7951 {
		t.Fatalf("total = %d, want 7951", *got.Vacancies.Total)
	}
	// Replacement is wholesale; the smaller chunk's general count must not
	// leak into the winning group.
	if *got.Vacancies.General != 3200 {
		t.Errorf("general = %d, want 3200", *got.Vacancies.General)
	}

	// Lower total never displaces a higher one, regardless of order.
	got = Merge([]*Result{b, a})
	if *got.Vacancies.Total != 7951 {
		t.Errorf("reversed order: total = %d, want 7951", *got.Vacancies.Total)
	}
}

func TestMergeSalaryGroupAnchoredOnMinimum(t *testing.T) {
	a := &Result{}
	b := &Result{Salary: Salary{Minimum: ptr(25500), Maximum: ptr(81100), PayScale: ptr("Level 4")}}
	c := &Result{Salary: Salary{Minimum: ptr(99999)}}
	got := Merge([]*Result{a, b, c})
	if *got.Salary.Minimum != 25500 || *got.Salary.PayScale != "Level 4" {
		t.Errorf("salary group should come wholesale from the first anchored chunk, got %+v", got.Salary)
	}
}

func TestMergeSelectionProcessUnionSortedByStage(t *testing.T) {
	a := &Result{SelectionProcess: []SelectionStage{
		{Stage: 2, Name: "Mains"},
		{Stage: 1, Name: "Prelims"},
	}}
	b := &Result{SelectionProcess: []SelectionStage{
		{Stage: 1, Name: "prelims"}, // duplicate, case-insensitive
		{Stage: 3, Name: "Interview"},
	}}
	got := Merge([]*Result{a, b})
	want := []SelectionStage{
		{Stage: 1, Name: "Prelims"},
		{Stage: 2, Name: "Mains"},
		{Stage: 3, Name: "Interview"},
	}
	if !reflect.DeepEqual(got.SelectionProcess, want) {
		t.Errorf("selectionProcess = %+v, want %+v", got.SelectionProcess, want)
	}
}

func TestMergeRequiredDocumentsDeduplicated(t *testing.T) {
	a := &Result{RequiredDocuments: []string{"Aadhaar Card", "Photograph"}}
	b := &Result{RequiredDocuments: []string{"Photograph", "Signature"}}
	got := Merge([]*Result{a, b})
	want := []string{"Aadhaar Card", "Photograph", "Signature"}
	if !reflect.DeepEqual(got.RequiredDocuments, want) {
		t.Errorf("requiredDocuments = %v, want %v", got.RequiredDocuments, want)
	}
}

func TestMergeDifficultyScoreAveraged(t *testing.T) {
	a := &Result{AIInsights: AIInsights{DifficultyScore: ptr(6), ShortSummary: ptr("first")}}
	b := &Result{AIInsights: AIInsights{DifficultyScore: ptr(8)}}
	c := &Result{}
	got := Merge([]*Result{a, b, c})
	if got.AIInsights.DifficultyScore == nil || *got.AIInsights.DifficultyScore != 7 {
		t.Errorf("difficultyScore = %v, want mean 7", got.AIInsights.DifficultyScore)
	}
	if *got.AIInsights.ShortSummary != "first" {
		t.Errorf("other insight fields come from the first chunk")
	}
}

func TestMergeMultipleJobsORed(t *testing.T) {
	got := Merge([]*Result{{}, {MultipleJobs: true}, {}})
	if !got.MultipleJobs {
		t.Error("multipleJobs should be true if any chunk reported it")
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	a := &Result{
		SelectionProcess:  []SelectionStage{{Stage: 2, Name: "Mains"}},
		RequiredDocuments: []string{"Photo"},
	}
	b := &Result{
		SelectionProcess:  []SelectionStage{{Stage: 1, Name: "Prelims"}},
		RequiredDocuments: []string{"ID"},
	}
	Merge([]*Result{a, b})
	if len(a.SelectionProcess) != 1 || a.SelectionProcess[0].Name != "Mains" {
		t.Errorf("first input mutated: %+v", a.SelectionProcess)
	}
	if len(b.RequiredDocuments) != 1 || b.RequiredDocuments[0] != "ID" {
		t.Errorf("second input mutated: %+v", b.RequiredDocuments)
	}
}
