package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
)

const exportDateLayout = "2006-01-02"

const (
	ExportRowPeriodStart = "Period Start"
	ExportRowPeriodEnd   = "Period End"
	ExportRowSymptomLog  = "Symptom Log"
)

var ExportCSVHeaders = []string{
	"Date",
	"Type",
	"Flow Intensity",
	"Pain Level",
	"Energy Level",
	"Mood",
	"Symptoms",
	"Notes",
}

// ExportRows flattens the history into table rows without the header: cycle
// rows first, then symptom rows, each in input order.
func ExportRows(cycleLogs []models.CycleLog, symptomLogs []models.SymptomLog) [][]string {
	rows := make([][]string, 0, len(cycleLogs)*2+len(symptomLogs))

	for _, log := range cycleLogs {
		rows = append(rows, []string{
			log.StartDate.Format(exportDateLayout),
			ExportRowPeriodStart,
			log.FlowIntensity,
			"",
			"",
			"",
			"",
			log.Notes,
		})
		if log.EndDate != nil {
			rows = append(rows, []string{
				log.EndDate.Format(exportDateLayout),
				ExportRowPeriodEnd,
				"", "", "", "", "", "",
			})
		}
	}

	for _, log := range symptomLogs {
		rows = append(rows, []string{
			log.Date.Format(exportDateLayout),
			ExportRowSymptomLog,
			"",
			strconv.Itoa(log.PainLevel),
			strconv.Itoa(log.EnergyLevel),
			log.Mood,
			strings.Join(log.OtherSymptoms, ";"),
			log.Notes,
		})
	}
	return rows
}

// ExportHealthData renders the rows as comma-joined lines separated by "\n".
// Fields are not quoted, so a comma or newline inside notes or symptom tags
// shifts the columns of that row. WriteHealthDataCSV is the escaped variant.
func ExportHealthData(cycleLogs []models.CycleLog, symptomLogs []models.SymptomLog) string {
	rows := ExportRows(cycleLogs, symptomLogs)
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(ExportCSVHeaders, ","))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, ","))
	}
	return strings.Join(lines, "\n")
}

func WriteHealthDataCSV(w io.Writer, cycleLogs []models.CycleLog, symptomLogs []models.SymptomLog) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ExportCSVHeaders); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}
	if err := writer.WriteAll(ExportRows(cycleLogs, symptomLogs)); err != nil {
		return fmt.Errorf("write export rows: %w", err)
	}
	return nil
}

func BuildExportFilename(now time.Time) string {
	return fmt.Sprintf("cyclezen-data-%s.csv", now.Format(exportDateLayout))
}
