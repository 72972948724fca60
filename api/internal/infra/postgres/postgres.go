package postgres

import (
	"fmt"
	"time"

	"watchdog/api/internal/config"
	"watchdog/api/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	MAX_OPEN_CONNS    = 20
	MAX_IDLE_CONNS    = 10
	CONN_MAX_LIFETIME = time.Hour

	// server-side caps. a hung statement fails as a retryable error
	// instead of blocking a handler
	CONNECT_TIMEOUT_SECONDS = 5
	STATEMENT_TIMEOUT_MS    = 5000
)

func Init(config *config.Config) *gorm.DB {
	dbConfig := config.Postgres
	dsn := buildDSN(dbConfig.Host, dbConfig.User, dbConfig.Password, dbConfig.Db_name, dbConfig.Port, dbConfig.Ssl_mode)
	return open(dsn)
}

// unrecognized dsn keywords (statement_timeout) are passed to the server
// as runtime parameters by pgx
func buildDSN(host, user, password, dbName string, port uint16, sslMode string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s connect_timeout=%d statement_timeout=%d",
		host, user, password, dbName, port, sslMode, CONNECT_TIMEOUT_SECONDS, STATEMENT_TIMEOUT_MS)
}

func open(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("Gorm error: " + err.Error())
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic("Gorm error: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(MAX_OPEN_CONNS)
	sqlDB.SetMaxIdleConns(MAX_IDLE_CONNS)
	sqlDB.SetConnMaxLifetime(CONN_MAX_LIFETIME)

	if err := db.AutoMigrate(&domain.Charities{}, &domain.Transactions{}, &domain.Orphans{}); err != nil {
		panic("Auto migrate error: " + err.Error())
	}

	return db
}

type TestConfig struct {
	Host     string
	User     string
	Password string
	DbName   string
	Port     uint16
}

var TEST_CONFIG = TestConfig{
	Host:     "localhost",
	User:     "postgres",
	Password: "lol",
	DbName:   "test",
	Port:     5432,
}

func InitTest(dbConfig TestConfig) *gorm.DB {
	return open(buildDSN(dbConfig.Host, dbConfig.User, dbConfig.Password, dbConfig.DbName, dbConfig.Port, "disable"))
}

func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(&domain.Charities{}, &domain.Transactions{}, &domain.Orphans{})
}
