// Package datastore persists collected process metrics. Each record holds
// the planned and actual size and time of one finished project, which is
// the history PROBE estimation runs against.
package datastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"pspkit/internal/probe"
)

// Project is one recorded project's process metrics. Sizes are in lines of
// code, times in minutes.
type Project struct {
	ID          string
	Name        string
	CreatedAt   time.Time
	PlannedSize float64
	ProxySize   float64
	ActualSize  float64
	PlannedTime float64
	ActualTime  float64
}

// Store manages the process-metrics database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// Open creates or opens the metrics store inside dataDir.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, "process_metrics.db")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("datastore: create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("datastore: open database: %w", err)
	}

	store := &Store{db: db, dbPath: dbPath}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("datastore: initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		planned_size REAL NOT NULL,
		proxy_size REAL NOT NULL,
		actual_size REAL NOT NULL,
		planned_time REAL NOT NULL,
		actual_time REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_created ON projects(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record inserts a project's metrics. A missing ID is filled in.
func (s *Store) Record(p *Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, created_at, planned_size, proxy_size,
			actual_size, planned_time, actual_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.CreatedAt, p.PlannedSize, p.ProxySize,
		p.ActualSize, p.PlannedTime, p.ActualTime)
	if err != nil {
		return fmt.Errorf("datastore: record project: %w", err)
	}
	return nil
}

// List returns every recorded project, oldest first.
func (s *Store) List() ([]Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, created_at, planned_size, proxy_size,
			actual_size, planned_time, actual_time
		FROM projects ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("datastore: list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.PlannedSize,
			&p.ProxySize, &p.ActualSize, &p.PlannedTime, &p.ActualTime); err != nil {
			return nil, fmt.Errorf("datastore: scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// HistoricalData projects the stored metrics into the shape PROBE consumes.
func (s *Store) HistoricalData() (*probe.HistoricalData, error) {
	projects, err := s.List()
	if err != nil {
		return nil, err
	}
	h := &probe.HistoricalData{}
	for _, p := range projects {
		h.PlannedSizes = append(h.PlannedSizes, p.PlannedSize)
		h.ProxySizes = append(h.ProxySizes, p.ProxySize)
		h.ActualSizes = append(h.ActualSizes, p.ActualSize)
		h.PlannedTimes = append(h.PlannedTimes, p.PlannedTime)
		h.ActualTimes = append(h.ActualTimes, p.ActualTime)
	}
	return h, nil
}
