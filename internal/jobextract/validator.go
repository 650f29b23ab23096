package jobextract

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/jobsarthi/notification-parser/constants"
)

var reISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// VacancySumTolerance allows category-wise counts to overrun the reported
// total by 20% before the result is rejected (notification tables often
// double-count backlog or PwD sub-quotas).
const VacancySumTolerance = 1.2

// Validate runs structural and business-rule checks over a candidate
// result and returns every violation found, not just the first. Nil/empty
// means the candidate is acceptable. Pure function, no side effects; safe
// to call on unmerged per-chunk output as well as the merged record.
func Validate(r *Result) []string {
	if r == nil {
		return []string{"result: is nil"}
	}
	var v violations

	// Phase 1: field-level structure (types are guaranteed by decoding;
	// enums, ranges and formats are re-checked here so a caller holding a
	// hand-built Result gets the same guarantees as the decode path).
	v.date("ageCriteria.cutoffDate", r.AgeCriteria.CutoffDate)
	v.date("importantDates.notificationDate", r.ImportantDates.NotificationDate)
	v.date("importantDates.applicationStart", r.ImportantDates.ApplicationStart)
	v.date("importantDates.applicationEnd", r.ImportantDates.ApplicationEnd)
	v.date("importantDates.feePaymentEnd", r.ImportantDates.FeePaymentEnd)
	v.date("importantDates.examDate", r.ImportantDates.ExamDate)
	v.date("importantDates.admitCardDate", r.ImportantDates.AdmitCardDate)

	v.nonNegative("vacancies.total", r.Vacancies.Total)
	v.nonNegative("vacancies.general", r.Vacancies.General)
	v.nonNegative("vacancies.obc", r.Vacancies.OBC)
	v.nonNegative("vacancies.sc", r.Vacancies.SC)
	v.nonNegative("vacancies.st", r.Vacancies.ST)
	v.nonNegative("vacancies.ews", r.Vacancies.EWS)

	for i, st := range r.SelectionProcess {
		if st.Stage < 1 {
			v.addf("selectionProcess[%d].stage: must be a positive integer, got %d", i, st.Stage)
		}
		if strings.TrimSpace(st.Name) == "" {
			v.addf("selectionProcess[%d].name: must not be empty", i)
		}
	}
	for i, s := range r.Syllabus {
		if strings.TrimSpace(s.Subject) == "" {
			v.addf("syllabus[%d].subject: must not be empty", i)
		}
	}

	if sc := r.AIInsights.DifficultyScore; sc != nil &&
		(*sc < constants.DifficultyScoreMin || *sc > constants.DifficultyScoreMax) {
		v.addf("aiInsights.difficultyScore: must be between %d and %d, got %d",
			constants.DifficultyScoreMin, constants.DifficultyScoreMax, *sc)
	}
	if cl := r.AIInsights.CompetitionLevel; cl != nil && !slices.Contains(constants.CompetitionLevels, *cl) {
		v.addf("aiInsights.competitionLevel: %q is not one of %v", *cl, constants.CompetitionLevels)
	}
	if pt := r.AIInsights.EstimatedPreparationTime; pt != nil && !slices.Contains(constants.PreparationTimes, *pt) {
		v.addf("aiInsights.estimatedPreparationTime: %q is not one of %v", *pt, constants.PreparationTimes)
	}
	if ss := r.AIInsights.ShortSummary; ss != nil {
		if n := len(*ss); n < constants.ShortSummaryMinLen || n > constants.ShortSummaryMaxLen {
			v.addf("aiInsights.shortSummary: length must be between %d and %d characters, got %d",
				constants.ShortSummaryMinLen, constants.ShortSummaryMaxLen, n)
		}
	}

	// Phase 2: cross-field business rules.
	if r.Salary.Minimum != nil && r.Salary.Maximum != nil && *r.Salary.Maximum < *r.Salary.Minimum {
		v.addf("salary.maximum: %d is less than salary.minimum %d", *r.Salary.Maximum, *r.Salary.Minimum)
	}
	if r.AgeCriteria.MinimumAge != nil && r.AgeCriteria.MaximumAge != nil &&
		*r.AgeCriteria.MaximumAge < *r.AgeCriteria.MinimumAge {
		v.addf("ageCriteria.maximumAge: %d is less than ageCriteria.minimumAge %d",
			*r.AgeCriteria.MaximumAge, *r.AgeCriteria.MinimumAge)
	}
	if r.Vacancies.Total != nil {
		sum := 0
		for _, c := range []*int{r.Vacancies.General, r.Vacancies.OBC, r.Vacancies.SC, r.Vacancies.ST, r.Vacancies.EWS} {
			if c != nil {
				sum += *c
			}
		}
		if limit := float64(*r.Vacancies.Total) * VacancySumTolerance; float64(sum) > limit {
			v.addf("vacancies: category sum %d exceeds total %d by more than %.0f%%",
				sum, *r.Vacancies.Total, (VacancySumTolerance-1)*100)
		}
	}

	return v.list
}

type violations struct {
	list []string
}

func (v *violations) addf(format string, args ...any) {
	v.list = append(v.list, fmt.Sprintf(format, args...))
}

func (v *violations) date(field string, val *string) {
	if val != nil && !reISODate.MatchString(*val) {
		v.addf("%s: %q is not a YYYY-MM-DD date", field, *val)
	}
}

func (v *violations) nonNegative(field string, val *int) {
	if val != nil && *val < 0 {
		v.addf("%s: must not be negative, got %d", field, *val)
	}
}
