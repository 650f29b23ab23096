// Package jobextract defines the structured job record extracted from a
// government notification, plus the validation and multi-chunk merge rules
// that keep LLM output honest.
package jobextract

// Result is the canonical structured job record for one notification.
// Every scalar that the model may legitimately not find is a pointer;
// JSON null maps to nil.
type Result struct {
	JobInfo           JobInfo          `json:"jobInfo"`
	Vacancies         Vacancies        `json:"vacancies"`
	Salary            Salary           `json:"salary"`
	Eligibility       Eligibility      `json:"eligibility"`
	AgeCriteria       AgeCriteria      `json:"ageCriteria"`
	ApplicationFees   ApplicationFees  `json:"applicationFees"`
	ImportantDates    ImportantDates   `json:"importantDates"`
	SelectionProcess  []SelectionStage `json:"selectionProcess"`
	Syllabus          []SyllabusEntry  `json:"syllabus"`
	ExamPattern       ExamPattern      `json:"examPattern"`
	RequiredDocuments []string         `json:"requiredDocuments"`
	MultipleJobs      bool             `json:"multipleJobs"`
	AIInsights        AIInsights       `json:"aiInsights"`
}

type JobInfo struct {
	Title               *string `json:"title"`
	Department          *string `json:"department"`
	AdvertisementNumber *string `json:"advertisementNumber"`
	JobLocation         *string `json:"jobLocation"`
	OfficialWebsite     *string `json:"officialWebsite"`
	ApplicationMode     *string `json:"applicationMode"`
}

type Vacancies struct {
	Total   *int `json:"total"`
	General *int `json:"general"`
	OBC     *int `json:"obc"`
	SC      *int `json:"sc"`
	ST      *int `json:"st"`
	EWS     *int `json:"ews"`
}

type Salary struct {
	Minimum  *int    `json:"minimum"`
	Maximum  *int    `json:"maximum"`
	PayScale *string `json:"payScale"`
	GradePay *string `json:"gradePay"`
}

type Eligibility struct {
	Education   *string `json:"education"`
	Experience  *string `json:"experience"`
	Nationality *string `json:"nationality"`
}

type AgeCriteria struct {
	MinimumAge    *int    `json:"minimumAge"`
	MaximumAge    *int    `json:"maximumAge"`
	AgeRelaxation *string `json:"ageRelaxation"`
	CutoffDate    *string `json:"cutoffDate"` // YYYY-MM-DD
}

type ApplicationFees struct {
	General     *int    `json:"general"`
	OBC         *int    `json:"obc"`
	SCST        *int    `json:"scst"`
	Women       *int    `json:"women"`
	PaymentMode *string `json:"paymentMode"`
}

// ImportantDates are all YYYY-MM-DD or nil.
type ImportantDates struct {
	NotificationDate *string `json:"notificationDate"`
	ApplicationStart *string `json:"applicationStart"`
	ApplicationEnd   *string `json:"applicationEnd"`
	FeePaymentEnd    *string `json:"feePaymentEnd"`
	ExamDate         *string `json:"examDate"`
	AdmitCardDate    *string `json:"admitCardDate"`
}

type SelectionStage struct {
	Stage       int     `json:"stage"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type SyllabusEntry struct {
	Subject string   `json:"subject"`
	Topics  []string `json:"topics"`
}

type ExamPattern struct {
	TotalQuestions  *int     `json:"totalQuestions"`
	TotalMarks      *int     `json:"totalMarks"`
	DurationMinutes *int     `json:"durationMinutes"`
	NegativeMarking *float64 `json:"negativeMarking"`
}

type AIInsights struct {
	DifficultyScore          *int    `json:"difficultyScore"`          // 1..10
	CompetitionLevel         *string `json:"competitionLevel"`         // Low|Medium|High
	EstimatedPreparationTime *string `json:"estimatedPreparationTime"` // fixed enum
	ShortSummary             *string `json:"shortSummary"`             // 100..400 chars
}

// PostRecord is one entry of the secondary multi-post breakdown produced
// when a notification advertises several distinct posts.
type PostRecord struct {
	PostName    string  `json:"postName"`
	Vacancies   *int    `json:"vacancies"`
	Eligibility *string `json:"eligibility"`
	PayLevel    *string `json:"payLevel"`
	AgeLimit    *string `json:"ageLimit"`
}
