package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	embeddedmigrations "github.com/terraincognita07/cyclezen/migrations"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

func OpenSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := migrate(database, embeddedmigrations.Files); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}

type recordEntry struct {
	Key       string         `gorm:"column:entry_key;primaryKey"`
	Payload   datatypes.JSON `gorm:"column:payload;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

func (recordEntry) TableName() string {
	return "record_entries"
}

// SQLiteKV keeps each key as one row of record_entries.
type SQLiteKV struct {
	database *gorm.DB
}

func NewSQLiteKV(database *gorm.DB) *SQLiteKV {
	return &SQLiteKV{database: database}
}

func (repo *SQLiteKV) Get(key string) ([]byte, bool, error) {
	entry := recordEntry{}
	result := repo.database.
		Select("entry_key", "payload").
		Where("entry_key = ?", key).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return nil, false, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, false, nil
	}
	return append([]byte(nil), entry.Payload...), true, nil
}

func (repo *SQLiteKV) Put(key string, value []byte) error {
	now := time.Now().UTC()
	entry := recordEntry{
		Key:       key,
		Payload:   datatypes.JSON(append([]byte(nil), value...)),
		UpdatedAt: now,
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&entry).Error
}

func (repo *SQLiteKV) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		return tx.Where("entry_key IN ?", keys).Delete(&recordEntry{}).Error
	})
}

func (repo *SQLiteKV) Close() error {
	sqlDB, err := repo.database.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
