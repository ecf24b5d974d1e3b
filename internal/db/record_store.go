package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/terraincognita07/cyclezen/internal/models"
	"go.uber.org/zap"
)

const (
	UserKey        = "user"
	CycleLogsKey   = "cycle_logs"
	SymptomLogsKey = "symptom_logs"
)

// Store owns the user profile and the cycle and symptom collections.
//
// Reads never fail: a missing or unreadable blob is reported as the empty
// state. Every read returns a fresh copy. Store does no locking; callers that
// share one Store across goroutines must serialise access.
type Store struct {
	kv      KeyValueStore
	logger  *zap.Logger
	metrics *StoreMetrics
	now     func() time.Time
	newID   func() string
}

type StoreOption func(*Store)

func WithLogger(logger *zap.Logger) StoreOption {
	return func(store *Store) {
		if logger != nil {
			store.logger = logger
		}
	}
}

func WithMetrics(metrics *StoreMetrics) StoreOption {
	return func(store *Store) {
		store.metrics = metrics
	}
}

func WithClock(now func() time.Time) StoreOption {
	return func(store *Store) {
		if now != nil {
			store.now = now
		}
	}
}

func WithIDGenerator(newID func() string) StoreOption {
	return func(store *Store) {
		if newID != nil {
			store.newID = newID
		}
	}
}

func NewStore(kv KeyValueStore, options ...StoreOption) *Store {
	store := &Store{
		kv:     kv,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  NewRecordID,
	}
	for _, option := range options {
		option(store)
	}
	return store
}

func (store *Store) GetUser() (models.User, bool) {
	var user models.User
	if !store.readBlob(UserKey, &user) || user.UserID == "" {
		return models.User{}, false
	}
	return user, true
}

// CreateUser replaces any existing profile with a fresh one using default
// settings.
func (store *Store) CreateUser(externalID string) (models.User, error) {
	user := models.User{
		UserID:     store.newID(),
		ExternalID: externalID,
		CreatedAt:  store.now().UTC(),
		Settings:   models.DefaultUserSettings(),
	}
	if err := store.writeBlob(UserKey, user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	store.metrics.recordWrite(UserKey, "create")
	return user, nil
}

func (store *Store) SaveUser(user models.User) error {
	if err := store.writeBlob(UserKey, user); err != nil {
		return fmt.Errorf("save user: %w", err)
	}
	store.metrics.recordWrite(UserKey, "save")
	return nil
}

func (store *Store) GetCycleLogs() []models.CycleLog {
	var logs []models.CycleLog
	if !store.readBlob(CycleLogsKey, &logs) || logs == nil {
		return []models.CycleLog{}
	}
	return logs
}

// SaveCycleLog upserts by LogID. The saved entry always moves to the end of
// the collection, so save order defines which cycle counts as most recent.
func (store *Store) SaveCycleLog(log models.CycleLog) error {
	existing := store.GetCycleLogs()
	updated := make([]models.CycleLog, 0, len(existing)+1)
	for _, entry := range existing {
		if entry.LogID != log.LogID {
			updated = append(updated, entry)
		}
	}
	updated = append(updated, log.Clone())

	if err := store.writeBlob(CycleLogsKey, updated); err != nil {
		return fmt.Errorf("save cycle log %s: %w", log.LogID, err)
	}
	store.metrics.recordWrite(CycleLogsKey, "save")
	return nil
}

func (store *Store) DeleteCycleLog(logID string) error {
	existing := store.GetCycleLogs()
	updated := make([]models.CycleLog, 0, len(existing))
	for _, entry := range existing {
		if entry.LogID != logID {
			updated = append(updated, entry)
		}
	}
	if len(updated) == len(existing) {
		return nil
	}

	if err := store.writeBlob(CycleLogsKey, updated); err != nil {
		return fmt.Errorf("delete cycle log %s: %w", logID, err)
	}
	store.metrics.recordWrite(CycleLogsKey, "delete")
	return nil
}

func (store *Store) GetSymptomLogs() []models.SymptomLog {
	var logs []models.SymptomLog
	if !store.readBlob(SymptomLogsKey, &logs) || logs == nil {
		return []models.SymptomLog{}
	}
	return logs
}

func (store *Store) SaveSymptomLog(log models.SymptomLog) error {
	existing := store.GetSymptomLogs()
	updated := make([]models.SymptomLog, 0, len(existing)+1)
	for _, entry := range existing {
		if entry.SymptomLogID != log.SymptomLogID {
			updated = append(updated, entry)
		}
	}
	updated = append(updated, log.Clone())

	if err := store.writeBlob(SymptomLogsKey, updated); err != nil {
		return fmt.Errorf("save symptom log %s: %w", log.SymptomLogID, err)
	}
	store.metrics.recordWrite(SymptomLogsKey, "save")
	return nil
}

func (store *Store) DeleteSymptomLog(symptomLogID string) error {
	existing := store.GetSymptomLogs()
	updated := make([]models.SymptomLog, 0, len(existing))
	for _, entry := range existing {
		if entry.SymptomLogID != symptomLogID {
			updated = append(updated, entry)
		}
	}
	if len(updated) == len(existing) {
		return nil
	}

	if err := store.writeBlob(SymptomLogsKey, updated); err != nil {
		return fmt.Errorf("delete symptom log %s: %w", symptomLogID, err)
	}
	store.metrics.recordWrite(SymptomLogsKey, "delete")
	return nil
}

// ClearAllData drops the profile and both collections in one backend call.
func (store *Store) ClearAllData() error {
	if err := store.kv.Delete(UserKey, CycleLogsKey, SymptomLogsKey); err != nil {
		return fmt.Errorf("clear all data: %w", err)
	}
	store.metrics.recordWrite("all", "clear")
	store.logger.Info("record store cleared")
	return nil
}

func (store *Store) readBlob(key string, target any) bool {
	raw, ok, err := store.kv.Get(key)
	if err != nil {
		store.logger.Warn("record store read failed, treating as empty", zap.String("key", key), zap.Error(err))
		store.metrics.recordCorruptRead(key)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		store.logger.Warn("record store blob unreadable, treating as empty", zap.String("key", key), zap.Error(err))
		store.metrics.recordCorruptRead(key)
		return false
	}
	return true
}

func (store *Store) writeBlob(key string, value any) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.kv.Put(key, serialized)
}
