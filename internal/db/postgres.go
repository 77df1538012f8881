package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"aeroclub/flightdesk/internal/logging"
)

var DB *sqlx.DB

const (
	connectAttempts = 10
	connectBackoff  = 500 * time.Millisecond
)

// PostgresDSN builds the connection string from the PG_* environment. Both
// the sqlx catalog reader and the GORM schedule store connect with it.
func PostgresDSN() string {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

// InitPostgres opens the shared sqlx handle, retrying while the database
// container comes up.
func InitPostgres() error {
	dsn := PostgresDSN()

	var err error
	for i := 0; i < connectAttempts; i++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		logging.Warn("Postgres not ready, retrying",
			"attempt", i+1,
			"error", err.Error(),
		)
		time.Sleep(connectBackoff)
	}
	return err
}
