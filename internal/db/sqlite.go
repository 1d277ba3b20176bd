package db

import (
	"fmt"
	"strings"

	"github.com/yigit/studentmanagement/internal/app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewSQLiteDB opens a sqlite database through gorm with foreign keys enforced
// and creates the students and subjects tables.
func NewSQLiteDB(dsn string) (*gorm.DB, error) {
	// Driver errors are left untranslated: the raw constraint message names the
	// failing column, which the gateway needs to pick the conflict reported.
	gdb, err := gorm.Open(sqlite.Open(withForeignKeys(dsn)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := gdb.AutoMigrate(&models.Student{}, &models.Subject{}); err != nil {
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return gdb, nil
}

// CloseSQLiteDB closes the connection pool underneath gdb
func CloseSQLiteDB(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
