// Package postgres connects to PostgreSQL and manages the schema used by
// orderrepo.
//
// Connections go through lib/pq wrapped by otelsql, so every query is traced.
// GORM runs on top of that pool. The schema lives in embedded SQL migrations
// applied with golang-migrate.
//
// Example:
//
//	db, sqlDB, err := postgres.Connect(postgres.MakeConnectionString(host, port, user, password, name, sslMode))
//	if err != nil {
//	    return err
//	}
//	defer sqlDB.Close()
//
//	if err = postgres.Migrate(sqlDB); err != nil {
//	    return err
//	}
//	orders := orderrepo.NewGormOrderRepository(db)
package postgres

import (
	"database/sql"
	"fmt"

	"coffeeshop/internal/pkg/telemetry"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MakeConnectionString builds a lib/pq keyword/value DSN.
func MakeConnectionString(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		host, port, user, password, dbName, sslMode)
}

// Connect opens a traced pool and a GORM handle sharing it. Closing the
// returned *sql.DB closes both.
func Connect(dsn string) (*gorm.DB, *sql.DB, error) {
	sqlDB, err := telemetry.OpenDB("postgres", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to reach database: %w", err)
	}

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to initialise gorm: %w", err)
	}

	return db, sqlDB, nil
}
