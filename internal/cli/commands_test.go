package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraincognita07/cyclezen/internal/config"
	"github.com/terraincognita07/cyclezen/internal/db"
	"github.com/terraincognita07/cyclezen/internal/models"
	"go.uber.org/zap"
)

func newMemoryStore(t *testing.T) *db.Store {
	t.Helper()
	return db.NewStore(db.NewMemoryKV())
}

func seedSymptomLogs(t *testing.T, store *db.Store, count int, pain int) {
	t.Helper()
	for i := 0; i < count; i++ {
		if err := store.SaveSymptomLog(models.SymptomLog{
			SymptomLogID: string(rune('a' + i)),
			Date:         time.Date(2025, time.May, 1+i, 0, 0, 0, 0, time.UTC),
			PainLevel:    pain,
			EnergyLevel:  7,
			Mood:         models.MoodHappy,
		}); err != nil {
			t.Fatalf("seed symptom log: %v", err)
		}
	}
}

func TestRunExportCommandWritesEscapedCSV(t *testing.T) {
	store := newMemoryStore(t)
	if err := store.SaveCycleLog(models.CycleLog{
		LogID:         "c1",
		StartDate:     time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		FlowIntensity: models.FlowLight,
		Notes:         "a, b",
	}); err != nil {
		t.Fatalf("seed cycle log: %v", err)
	}

	var out bytes.Buffer
	if err := RunExportCommand(store, &out); err != nil {
		t.Fatalf("RunExportCommand() unexpected error: %v", err)
	}

	records, err := csv.NewReader(&out).ReadAll()
	if err != nil {
		t.Fatalf("parse export: %v", err)
	}
	if len(records) != 2 || records[1][7] != "a, b" {
		t.Fatalf("unexpected export records %v", records)
	}
}

func TestRunInsightsCommandPrintsJSON(t *testing.T) {
	store := newMemoryStore(t)
	seedSymptomLogs(t, store, 7, 8)

	var out bytes.Buffer
	if err := RunInsightsCommand(store, &out); err != nil {
		t.Fatalf("RunInsightsCommand() unexpected error: %v", err)
	}

	report := struct {
		Insights []models.HealthInsight `json:"insights"`
		Trend    []json.RawMessage      `json:"trend"`
	}{}
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if len(report.Insights) != 1 || report.Insights[0].ID != "high-pain" {
		t.Fatalf("expected high-pain insight, got %+v", report.Insights)
	}
	if len(report.Trend) != 7 {
		t.Fatalf("expected 7 trend points, got %d", len(report.Trend))
	}
}

func TestRunClearDataCommandRequiresConfirmation(t *testing.T) {
	store := newMemoryStore(t)
	seedSymptomLogs(t, store, 2, 3)

	err := RunClearDataCommand(store, ClearDataOptions{Interactive: false})
	if !errors.Is(err, ErrClearDataNotConfirmed) {
		t.Fatalf("expected non-interactive refusal, got %v", err)
	}

	err = RunClearDataCommand(store, ClearDataOptions{Interactive: true, Input: strings.NewReader("no\n")})
	if !errors.Is(err, ErrClearDataNotConfirmed) {
		t.Fatalf("expected declined prompt, got %v", err)
	}
	if len(store.GetSymptomLogs()) != 2 {
		t.Fatal("expected data to survive without confirmation")
	}
}

func TestRunClearDataCommandClearsAndRecreatesProfile(t *testing.T) {
	tests := []struct {
		name    string
		options ClearDataOptions
	}{
		{name: "flag", options: ClearDataOptions{Confirmed: true}},
		{name: "prompt", options: ClearDataOptions{Interactive: true, Input: strings.NewReader(" YES \n")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryStore(t)
			seedSymptomLogs(t, store, 3, 3)
			original, err := store.CreateUser("")
			if err != nil {
				t.Fatalf("create user: %v", err)
			}

			var out bytes.Buffer
			tc.options.Output = &out
			if err := RunClearDataCommand(store, tc.options); err != nil {
				t.Fatalf("RunClearDataCommand() unexpected error: %v", err)
			}

			if len(store.GetSymptomLogs()) != 0 {
				t.Fatal("expected symptom logs to be cleared")
			}
			user, ok := store.GetUser()
			if !ok || user.UserID == original.UserID {
				t.Fatalf("expected a fresh profile, got %+v", user)
			}
			if !strings.Contains(out.String(), "All data cleared") {
				t.Fatalf("unexpected output %q", out.String())
			}
		})
	}
}

func TestOpenRecordStoreUsesConfiguredBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: db.BackendFile, Path: filepath.Join(t.TempDir(), "records")}}
	registry := prometheus.NewRegistry()

	store, closeFn, err := OpenRecordStore(cfg, zap.NewNop(), registry)
	if err != nil {
		t.Fatalf("OpenRecordStore() unexpected error: %v", err)
	}
	defer func() { _ = closeFn() }()

	if _, err := store.CreateUser("ext"); err != nil {
		t.Fatalf("create user: %v", err)
	}

	reopened, closeAgain, err := OpenRecordStore(cfg, zap.NewNop(), nil)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer func() { _ = closeAgain() }()

	user, ok := reopened.GetUser()
	if !ok || user.ExternalID != "ext" {
		t.Fatalf("expected profile to persist across opens, got %+v", user)
	}
}

func TestOpenRecordStoreRejectsUnknownBackend(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Backend: "s3"}}
	_, closeFn, err := OpenRecordStore(cfg, zap.NewNop(), nil)
	if err == nil {
		t.Fatal("expected unknown backend error")
	}
	if closeFn == nil {
		t.Fatal("expected non-nil close function")
	}
}
