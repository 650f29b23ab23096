package jobextract

import "github.com/jobsarthi/notification-parser/constants"

// JSONSchema returns the extraction contract as a JSON-Schema
// (draft 2020-12 subset) generic map. It is sent to the completion service
// as the output constraint and compiled locally for strict validation —
// additionalProperties is false at every level, so hallucinated or injected
// keys fail structural validation instead of leaking into storage.
func JSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"jobInfo", "vacancies", "salary", "eligibility", "ageCriteria",
			"applicationFees", "importantDates", "selectionProcess",
			"syllabus", "examPattern", "requiredDocuments", "multipleJobs",
			"aiInsights",
		},
		"properties": map[string]any{
			"jobInfo": objectProp(map[string]any{
				"title":               nullableString(),
				"department":          nullableString(),
				"advertisementNumber": nullableString(),
				"jobLocation":         nullableString(),
				"officialWebsite":     nullableString(),
				"applicationMode":     nullableString(),
			}),
			"vacancies": objectProp(map[string]any{
				"total":   nullableInt(),
				"general": nullableInt(),
				"obc":     nullableInt(),
				"sc":      nullableInt(),
				"st":      nullableInt(),
				"ews":     nullableInt(),
			}),
			"salary": objectProp(map[string]any{
				"minimum":  nullableInt(),
				"maximum":  nullableInt(),
				"payScale": nullableString(),
				"gradePay": nullableString(),
			}),
			"eligibility": objectProp(map[string]any{
				"education":   nullableString(),
				"experience":  nullableString(),
				"nationality": nullableString(),
			}),
			"ageCriteria": objectProp(map[string]any{
				"minimumAge":    nullableInt(),
				"maximumAge":    nullableInt(),
				"ageRelaxation": nullableString(),
				"cutoffDate":    nullableDate(),
			}),
			"applicationFees": objectProp(map[string]any{
				"general":     nullableInt(),
				"obc":         nullableInt(),
				"scst":        nullableInt(),
				"women":       nullableInt(),
				"paymentMode": nullableString(),
			}),
			"importantDates": objectProp(map[string]any{
				"notificationDate": nullableDate(),
				"applicationStart": nullableDate(),
				"applicationEnd":   nullableDate(),
				"feePaymentEnd":    nullableDate(),
				"examDate":         nullableDate(),
				"admitCardDate":    nullableDate(),
			}),
			"selectionProcess": map[string]any{
				"type": "array",
				"items": objectProp(map[string]any{
					"stage":       map[string]any{"type": "integer", "minimum": 1},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"description": nullableString(),
				}),
			},
			"syllabus": map[string]any{
				"type": "array",
				"items": objectProp(map[string]any{
					"subject": map[string]any{"type": "string", "minLength": 1},
					"topics":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				}),
			},
			"examPattern": objectProp(map[string]any{
				"totalQuestions":  nullableInt(),
				"totalMarks":      nullableInt(),
				"durationMinutes": nullableInt(),
				"negativeMarking": map[string]any{"type": []string{"number", "null"}},
			}),
			"requiredDocuments": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"multipleJobs": map[string]any{"type": "boolean"},
			"aiInsights": objectProp(map[string]any{
				"difficultyScore": map[string]any{
					"type":    []string{"integer", "null"},
					"minimum": constants.DifficultyScoreMin,
					"maximum": constants.DifficultyScoreMax,
				},
				"competitionLevel": map[string]any{
					"type": []string{"string", "null"},
					"enum": appendNull(constants.CompetitionLevels),
				},
				"estimatedPreparationTime": map[string]any{
					"type": []string{"string", "null"},
					"enum": appendNull(constants.PreparationTimes),
				},
				"shortSummary": map[string]any{
					"type":      []string{"string", "null"},
					"minLength": constants.ShortSummaryMinLen,
					"maxLength": constants.ShortSummaryMaxLen,
				},
			}),
		},
	}
}

// PostsJSONSchema is the narrower contract for the multi-post breakdown
// pass: just an array of per-post records.
func PostsJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"posts"},
		"properties": map[string]any{
			"posts": map[string]any{
				"type": "array",
				"items": objectProp(map[string]any{
					"postName":    map[string]any{"type": "string", "minLength": 1},
					"vacancies":   nullableInt(),
					"eligibility": nullableString(),
					"payLevel":    nullableString(),
					"ageLimit":    nullableString(),
				}),
			},
		},
	}
}

func objectProp(props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func nullableInt() map[string]any {
	return map[string]any{"type": []string{"integer", "null"}, "minimum": 0}
}

func nullableDate() map[string]any {
	return map[string]any{
		"type":    []string{"string", "null"},
		"pattern": `^\d{4}-\d{2}-\d{2}$`,
	}
}

func appendNull(values []string) []any {
	out := make([]any, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v)
	}
	return append(out, nil)
}
