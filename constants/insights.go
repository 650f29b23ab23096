package constants

// Allowed values for aiInsights enums. The extraction prompt and the
// validator must agree on these exact strings.
var (
	CompetitionLevels = []string{"Low", "Medium", "High"}

	PreparationTimes = []string{"1-2 months", "3-4 months", "6+ months"}
)

// Bounds for aiInsights fields.
const (
	DifficultyScoreMin = 1
	DifficultyScoreMax = 10

	ShortSummaryMinLen = 100
	ShortSummaryMaxLen = 400
)
