package services

import (
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

const SymptomTrendPoints = 14

type SymptomTrendPoint struct {
	Date      time.Time `json:"date"`
	Pain      int       `json:"pain"`
	Energy    int       `json:"energy"`
	MoodScore int       `json:"moodScore"`
}

var moodScores = map[string]int{
	models.MoodEnergetic: 9,
	models.MoodHappy:     8,
	models.MoodCalm:      7,
	models.MoodTired:     4,
	models.MoodAnxious:   3,
	models.MoodIrritable: 2,
}

// MoodScore places a mood on the 1-10 chart scale. Unlisted moods score 1.
func MoodScore(mood string) int {
	if score, ok := moodScores[mood]; ok {
		return score
	}
	return 1
}

// BuildSymptomTrend charts the last SymptomTrendPoints entries by position.
func BuildSymptomTrend(symptomLogs []models.SymptomLog) []SymptomTrendPoint {
	recent := tailSymptomLogs(symptomLogs, SymptomTrendPoints)
	points := make([]SymptomTrendPoint, 0, len(recent))
	for _, log := range recent {
		points = append(points, SymptomTrendPoint{
			Date:      log.Date,
			Pain:      log.PainLevel,
			Energy:    log.EnergyLevel,
			MoodScore: MoodScore(log.Mood),
		})
	}
	return points
}
