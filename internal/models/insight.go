package models

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
)

const (
	InsightPattern     = "pattern"
	InsightCorrelation = "correlation"
	InsightPrediction  = "prediction"
)

type CyclePhase struct {
	Phase       string `json:"phase"`
	Day         int    `json:"day"`
	Description string `json:"description"`
}

type HealthInsight struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
	IsPremium   bool    `json:"isPremium"`
}
