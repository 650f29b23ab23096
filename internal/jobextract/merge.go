package jobextract

import (
	"math"
	"sort"
	"strings"
)

// Merge combines per-chunk extraction results, in original document order,
// into one canonical record. Field rules differ by group:
//
//   - jobInfo, eligibility: per-field, first non-null wins (header info
//     lives in early chunks).
//   - importantDates: per-field, last non-null wins (the consolidated dates
//     table tends to sit near the end).
//   - vacancies: the chunk reporting the strictly highest total replaces
//     the whole group (the fullest vacancy table reports the highest total).
//   - salary, ageCriteria, applicationFees, examPattern: first chunk with a
//     non-null anchor field wins the group wholesale.
//   - selectionProcess, syllabus, requiredDocuments: set union, then
//     selectionProcess re-sorted ascending by stage.
//   - aiInsights: taken from the first chunk, except difficultyScore which
//     is the rounded arithmetic mean over all chunks reporting one.
//
// Inputs are never mutated. Merge of a single result returns that result
// unchanged.
func Merge(results []*Result) *Result {
	if len(results) == 0 {
		return nil
	}
	if len(results) == 1 {
		return results[0]
	}

	merged := *results[0]
	for _, next := range results[1:] {
		mergeJobInfo(&merged.JobInfo, next.JobInfo)
		mergeVacancies(&merged.Vacancies, next.Vacancies)

		if merged.Salary.Minimum == nil && next.Salary.Minimum != nil {
			merged.Salary = next.Salary
		}
		if merged.AgeCriteria.MinimumAge == nil && next.AgeCriteria.MinimumAge != nil {
			merged.AgeCriteria = next.AgeCriteria
		}
		if merged.ApplicationFees.General == nil && next.ApplicationFees.General != nil {
			merged.ApplicationFees = next.ApplicationFees
		}
		if merged.ExamPattern.TotalQuestions == nil && next.ExamPattern.TotalQuestions != nil {
			merged.ExamPattern = next.ExamPattern
		}

		mergeEligibility(&merged.Eligibility, next.Eligibility)
		mergeDates(&merged.ImportantDates, next.ImportantDates)

		merged.SelectionProcess = unionStages(merged.SelectionProcess, next.SelectionProcess)
		merged.Syllabus = unionSyllabus(merged.Syllabus, next.Syllabus)
		merged.RequiredDocuments = unionStrings(merged.RequiredDocuments, next.RequiredDocuments)

		merged.MultipleJobs = merged.MultipleJobs || next.MultipleJobs
	}

	merged.AIInsights.DifficultyScore = meanDifficulty(results)

	sort.SliceStable(merged.SelectionProcess, func(i, j int) bool {
		return merged.SelectionProcess[i].Stage < merged.SelectionProcess[j].Stage
	})
	return &merged
}

func mergeJobInfo(acc *JobInfo, next JobInfo) {
	firstStr(&acc.Title, next.Title)
	firstStr(&acc.Department, next.Department)
	firstStr(&acc.AdvertisementNumber, next.AdvertisementNumber)
	firstStr(&acc.JobLocation, next.JobLocation)
	firstStr(&acc.OfficialWebsite, next.OfficialWebsite)
	firstStr(&acc.ApplicationMode, next.ApplicationMode)
}

func mergeVacancies(acc *Vacancies, next Vacancies) {
	if next.Total == nil {
		return
	}
	if acc.Total == nil || *next.Total > *acc.Total {
		*acc = next
	}
}

func mergeEligibility(acc *Eligibility, next Eligibility) {
	firstStr(&acc.Education, next.Education)
	firstStr(&acc.Experience, next.Experience)
	firstStr(&acc.Nationality, next.Nationality)
}

func mergeDates(acc *ImportantDates, next ImportantDates) {
	lastStr(&acc.NotificationDate, next.NotificationDate)
	lastStr(&acc.ApplicationStart, next.ApplicationStart)
	lastStr(&acc.ApplicationEnd, next.ApplicationEnd)
	lastStr(&acc.FeePaymentEnd, next.FeePaymentEnd)
	lastStr(&acc.ExamDate, next.ExamDate)
	lastStr(&acc.AdmitCardDate, next.AdmitCardDate)
}

func unionStages(acc, next []SelectionStage) []SelectionStage {
	out := make([]SelectionStage, 0, len(acc)+len(next))
	seen := make(map[string]struct{}, len(acc)+len(next))
	for _, st := range acc {
		key := strings.ToLower(strings.TrimSpace(st.Name))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, st)
	}
	for _, st := range next {
		key := strings.ToLower(strings.TrimSpace(st.Name))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, st)
	}
	return out
}

func unionSyllabus(acc, next []SyllabusEntry) []SyllabusEntry {
	out := make([]SyllabusEntry, 0, len(acc)+len(next))
	seen := make(map[string]struct{}, len(acc)+len(next))
	for _, lst := range [][]SyllabusEntry{acc, next} {
		for _, s := range lst {
			key := strings.ToLower(strings.TrimSpace(s.Subject))
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

func unionStrings(acc, next []string) []string {
	out := make([]string, 0, len(acc)+len(next))
	seen := make(map[string]struct{}, len(acc)+len(next))
	for _, lst := range [][]string{acc, next} {
		for _, s := range lst {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// meanDifficulty averages difficultyScore over every chunk reporting one,
// rounding half away from zero. A single chunk's skewed local judgment
// should not dominate the stored score.
func meanDifficulty(results []*Result) *int {
	sum, n := 0, 0
	for _, r := range results {
		if r.AIInsights.DifficultyScore != nil {
			sum += *r.AIInsights.DifficultyScore
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := int(math.Round(float64(sum) / float64(n)))
	return &avg
}

func firstStr(acc **string, next *string) {
	if *acc == nil && next != nil {
		*acc = next
	}
}

func lastStr(acc **string, next *string) {
	if next != nil {
		*acc = next
	}
}
