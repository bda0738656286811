package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"AdoptionTutorial_API/internal/models"

	_ "modernc.org/sqlite"
)

// SQLiteStore는 records, calls 두 테이블을 가진 단일 DB 파일
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string, seeder *Seeder) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to create data directory: %w", err)
	}
	_, statErr := os.Stat(path)
	isNew := errors.Is(statErr, fs.ErrNotExist)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite(): failed to open database: %w", err)
	}
	// 단일 커넥션으로 모든 쓰기를 직렬화
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to connect to database: %w", err)
	}

	createRecordsTable := `
	CREATE TABLE IF NOT EXISTS records (
			"seq" INTEGER PRIMARY KEY AUTOINCREMENT,
			"id" TEXT NOT NULL UNIQUE,
			"phrase" TEXT NOT NULL,
			"pic" TEXT NOT NULL,
			"num" INTEGER NOT NULL
	);`
	createCallsTable := `
	CREATE TABLE IF NOT EXISTS calls (
			"seq" INTEGER PRIMARY KEY AUTOINCREMENT,
			"called_at" TEXT NOT NULL,
			"route" TEXT NOT NULL,
			"detail" TEXT NOT NULL
	);`

	if _, err := db.Exec(createRecordsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create records table: %w", err)
	}
	if _, err := db.Exec(createCallsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenSQLite(): failed to create calls table: %w", err)
	}

	s := &SQLiteStore{db: db}
	if isNew {
		if err := s.Replace(seeder.Generate(DefaultRecordCount)); err != nil {
			db.Close()
			return nil, err
		}
		log.Printf("OpenSQLite(): created %s with default data", path)
	}
	return s, nil
}

func (s *SQLiteStore) Records() ([]models.Record, error) {
	rows, err := s.db.Query("SELECT id, phrase, pic, num FROM records ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.Record{}
	for rows.Next() {
		var r models.Record
		if err := rows.Scan(&r.ID, &r.Phrase, &r.Pic, &r.Num); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Random() (models.Record, bool, error) {
	var r models.Record
	row := s.db.QueryRow("SELECT id, phrase, pic, num FROM records ORDER BY RANDOM() LIMIT 1")
	if err := row.Scan(&r.ID, &r.Phrase, &r.Pic, &r.Num); err != nil {
		if err == sql.ErrNoRows {
			return r, false, nil
		}
		return r, false, err
	}
	return r, true, nil
}

func (s *SQLiteStore) Replace(records []models.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("SQLiteStore.Replace(): failed to clear records: %w", err)
	}
	stmt, err := tx.Prepare("INSERT INTO records(id, phrase, pic, num) VALUES(?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ID, r.Phrase, r.Pic, r.Num); err != nil {
			return fmt.Errorf("SQLiteStore.Replace(): failed to insert record %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) AppendCall(call models.Call) error {
	stmt, err := s.db.Prepare("INSERT INTO calls(called_at, route, detail) VALUES(?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(call.When, call.Where, call.What)
	return err
}

func (s *SQLiteStore) Calls() ([]models.Call, error) {
	rows, err := s.db.Query("SELECT called_at, route, detail FROM calls ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calls := []models.Call{}
	for rows.Next() {
		var c models.Call
		if err := rows.Scan(&c.When, &c.Where, &c.What); err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, rows.Err()
}

func (s *SQLiteStore) ClearCalls() error {
	_, err := s.db.Exec("DELETE FROM calls")
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
