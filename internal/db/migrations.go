package db

import (
	"cmp"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

type schemaMigration struct {
	Version   int       `gorm:"column:version;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

type migrationFile struct {
	version int
	name    string
}

// migrate applies each NNNN_name.sql file of files at most once, in version
// order. A failed file rolls back and is not recorded.
func migrate(database *gorm.DB, files fs.FS) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return fmt.Errorf("prepare schema_migrations: %w", err)
	}

	pending, err := listMigrationFiles(files)
	if err != nil {
		return err
	}

	var applied []int
	if err := database.Model(&schemaMigration{}).Pluck("version", &applied).Error; err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, file := range pending {
		if slices.Contains(applied, file.version) {
			continue
		}
		body, err := fs.ReadFile(files, file.name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", file.name, err)
		}
		err = database.Transaction(func(tx *gorm.DB) error {
			for _, statement := range strings.Split(string(body), ";") {
				if strings.TrimSpace(statement) == "" {
					continue
				}
				if err := tx.Exec(statement).Error; err != nil {
					return err
				}
			}
			return tx.Create(&schemaMigration{
				Version:   file.version,
				Name:      file.name,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", file.name, err)
		}
	}
	return nil
}

func listMigrationFiles(files fs.FS) ([]migrationFile, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	result := make([]migrationFile, 0, len(names))
	for _, name := range names {
		prefix, _, found := strings.Cut(path.Base(name), "_")
		if !found {
			return nil, fmt.Errorf("migration %s: expected NNNN_name.sql", name)
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s: bad version %q", name, prefix)
		}
		result = append(result, migrationFile{version: version, name: name})
	}

	slices.SortFunc(result, func(a, b migrationFile) int {
		return cmp.Compare(a.version, b.version)
	})
	for i := 1; i < len(result); i++ {
		if result[i].version == result[i-1].version {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s", result[i].version, result[i-1].name, result[i].name)
		}
	}
	return result, nil
}
