package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "modernc.org/sqlite"
)

type Database struct {
	*sql.DB
}

// New opens the sqlite database at path. Foreign-key enforcement is applied
// to every connection through the DSN; the whole delete-conflict contract
// depends on it, so it is also verified once after connecting.
func New(path string) (*Database, error) {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)"

	sqldb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		// Each pooled connection would otherwise get its own empty database.
		sqldb.SetMaxOpenConns(1)
	} else {
		sqldb.SetMaxOpenConns(10)
		sqldb.SetMaxIdleConns(5)
	}

	if err = sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var fk int
	if err = sqldb.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if fk != 1 {
		sqldb.Close()
		return nil, fmt.Errorf("foreign key enforcement is off")
	}

	log.Println("Successfully connected to database")
	return &Database{sqldb}, nil
}

func (db *Database) Close() error {
	return db.DB.Close()
}
