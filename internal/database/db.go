package database

import (
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"store-console/internal/models"
)

var DB *gorm.DB

// Init opens the audit-trail database. A postgres DSN gets a short connect
// retry loop; anything else is treated as a local sqlite file. An empty DSN
// disables auditing entirely.
func Init(dsn string) {
	if dsn == "" {
		log.Warn("audit trail disabled: no DSN configured")
		return
	}

	var err error
	if isPostgres(dsn) {
		const maxAttempts = 10
		for i := 1; i <= maxAttempts; i++ {
			DB, err = gorm.Open(postgres.Open(dsn), gormConfig())
			if err == nil {
				break
			}
			log.WithError(err).Warnf("audit DB connect attempt %d/%d failed", i, maxAttempts)
			time.Sleep(2 * time.Second)
		}
	} else {
		DB, err = gorm.Open(sqlite.Open(dsn), gormConfig())
	}
	if err != nil {
		log.WithError(err).Fatal("failed to open audit DB")
	}

	if err := DB.AutoMigrate(&models.AuditLog{}); err != nil {
		log.WithError(err).Fatal("failed to migrate audit DB")
	}
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
