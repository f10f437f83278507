package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds the query-path indexes used by lookups and list filtering.
// Only meaningful on Postgres; AutoMigrate covers the tagged indexes already,
// these are the extra composite-free ones from the original schema.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"users", "idx_users_unique_id", "unique_id"},
		{"users", "idx_users_email", "email"},
		{"tasks", "idx_tasks_assigned_to", "assigned_to"},
		{"tasks", "idx_tasks_created_by", "created_by"},
		{"tasks", "idx_tasks_status", "status"},
		{"activity_logs", "idx_activity_logs_user_id", "user_id"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
