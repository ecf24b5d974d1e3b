package services

import "github.com/terraincognita07/cyclezen/internal/models"

const MinSymptomLogsForInsights = 7

type symptomMetric func(models.SymptomLog) int

type insightRule struct {
	// window limits the rule to the last N entries by position; 0 means all.
	window    int
	metric    symptomMetric
	triggered func(mean float64) bool
	insight   models.HealthInsight
}

var symptomInsightRules = []insightRule{
	{
		metric:    func(log models.SymptomLog) int { return log.PainLevel },
		triggered: func(mean float64) bool { return mean > 6 },
		insight: models.HealthInsight{
			ID:          "high-pain",
			Type:        models.InsightPattern,
			Title:       "High Pain Levels Detected",
			Description: "Your average pain level is higher than normal. Consider consulting a healthcare provider.",
			Confidence:  0.8,
		},
	},
	{
		window:    7,
		metric:    func(log models.SymptomLog) int { return log.EnergyLevel },
		triggered: func(mean float64) bool { return mean < 4 },
		insight: models.HealthInsight{
			ID:          "low-energy",
			Type:        models.InsightPattern,
			Title:       "Low Energy Pattern",
			Description: "You've been experiencing lower energy levels. Focus on rest and nutrition.",
			Confidence:  0.7,
		},
	},
}

// AnalyzeSymptomPatterns runs the threshold rules in order and returns the
// insights that fired. Fewer than seven logs yield no insights.
func AnalyzeSymptomPatterns(symptomLogs []models.SymptomLog) []models.HealthInsight {
	insights := make([]models.HealthInsight, 0, len(symptomInsightRules))
	if len(symptomLogs) < MinSymptomLogsForInsights {
		return insights
	}

	for _, rule := range symptomInsightRules {
		if rule.triggered(meanMetric(tailSymptomLogs(symptomLogs, rule.window), rule.metric)) {
			insights = append(insights, rule.insight)
		}
	}
	return insights
}

// PremiumInsights is the fixed catalog of insights reserved for premium users.
func PremiumInsights() []models.HealthInsight {
	return []models.HealthInsight{
		{
			ID:          "cycle-prediction",
			Type:        models.InsightPrediction,
			Title:       "Advanced Cycle Prediction",
			Description: "Get 3-month cycle predictions with 95% accuracy based on your unique patterns.",
			Confidence:  0.95,
			IsPremium:   true,
		},
		{
			ID:          "symptom-correlation",
			Type:        models.InsightCorrelation,
			Title:       "Symptom-Lifestyle Correlation",
			Description: "Discover how sleep, exercise, and diet affect your cycle symptoms.",
			Confidence:  0.85,
			IsPremium:   true,
		},
		{
			ID:          "personalized-tips",
			Type:        models.InsightPattern,
			Title:       "Personalized Wellness Tips",
			Description: "Get custom recommendations for nutrition, exercise, and self-care based on your cycle phase.",
			Confidence:  0.9,
			IsPremium:   true,
		},
	}
}

func tailSymptomLogs(values []models.SymptomLog, n int) []models.SymptomLog {
	if n <= 0 || len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}

func meanMetric(logs []models.SymptomLog, metric symptomMetric) float64 {
	if len(logs) == 0 {
		return 0
	}
	total := 0
	for _, log := range logs {
		total += metric(log)
	}
	return float64(total) / float64(len(logs))
}
