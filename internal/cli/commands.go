package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/cyclezen/internal/db"
	"github.com/terraincognita07/cyclezen/internal/models"
	"github.com/terraincognita07/cyclezen/internal/services"
)

var ErrClearDataNotConfirmed = errors.New("clear-data not confirmed")

func RunExportCommand(store *db.Store, out io.Writer) error {
	if err := services.WriteHealthDataCSV(out, store.GetCycleLogs(), store.GetSymptomLogs()); err != nil {
		return fmt.Errorf("export health data: %w", err)
	}
	return nil
}

type insightsReport struct {
	Insights []models.HealthInsight      `json:"insights"`
	Trend    []services.SymptomTrendPoint `json:"trend"`
}

func RunInsightsCommand(store *db.Store, out io.Writer) error {
	symptoms := store.GetSymptomLogs()
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(insightsReport{
		Insights: services.AnalyzeSymptomPatterns(symptoms),
		Trend:    services.BuildSymptomTrend(symptoms),
	})
}

type ClearDataOptions struct {
	// Confirmed skips the prompt, as with --yes.
	Confirmed   bool
	Interactive bool
	Input       io.Reader
	Output      io.Writer
}

// RunClearDataCommand deletes the profile and every log, then creates a fresh
// default profile. Without Confirmed it asks on an interactive terminal and
// refuses otherwise.
func RunClearDataCommand(store *db.Store, options ClearDataOptions) error {
	output := options.Output
	if output == nil {
		output = io.Discard
	}

	if !options.Confirmed {
		if !options.Interactive || options.Input == nil {
			return fmt.Errorf("%w: pass --yes when stdin is not a terminal", ErrClearDataNotConfirmed)
		}
		fmt.Fprint(output, "This deletes every cycle and symptom log. Type 'yes' to continue: ")
		answer, err := bufio.NewReader(options.Input).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
			return ErrClearDataNotConfirmed
		}
	}

	user, err := services.NewSettingsService(store).ResetAllData()
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "All data cleared. New profile: %s\n", user.UserID)
	return nil
}

func StdinIsTerminal() bool {
	return isTerminal(os.Stdin)
}
