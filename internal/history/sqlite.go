package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the history log in a SQLite database.
type SQLiteStore struct {
	db        *sql.DB
	namespace string
	logger    *zap.Logger
	mu        sync.Mutex
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path, namespace string, logger *zap.Logger) (*SQLiteStore, error) {
	if namespace == "" {
		namespace = Namespace
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; the game never writes concurrently anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, namespace: namespace, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Info("history store opened", zap.String("path", path), zap.String("namespace", namespace))
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS game_history (
			seq         INTEGER PRIMARY KEY AUTOINCREMENT,
			namespace   TEXT    NOT NULL,
			id          INTEGER NOT NULL,
			timestamp   TEXT    NOT NULL,
			yield_rate  REAL,
			profit      REAL,
			stock_name  TEXT,
			trade_count INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_ns ON game_history(namespace, seq)`,
	}
	for i, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Append adds a record to the log.
func (s *SQLiteStore) Append(ctx context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `INSERT INTO game_history
		(namespace, id, timestamp, yield_rate, profit, stock_name, trade_count)
		VALUES (?,?,?,?,?,?,?)`,
		s.namespace, r.ID, r.Timestamp.UTC().Format(time.RFC3339Nano),
		r.YieldRate, r.Profit, r.StockName, r.TradeCount,
	)
	if err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	return nil
}

// List returns the namespace's records, newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `SELECT id, timestamp, yield_rate, profit, stock_name, trade_count
		FROM game_history WHERE namespace = ? ORDER BY seq DESC`, s.namespace)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r  Record
			ts string
		)
		if err := rows.Scan(&r.ID, &ts, &r.YieldRate, &r.Profit, &r.StockName, &r.TradeCount); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			s.logger.Warn("skipping record with bad timestamp", zap.Int64("id", r.ID), zap.Error(err))
			continue
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return out, nil
}

// Clear removes every record of the namespace.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM game_history WHERE namespace = ?`, s.namespace); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.logger.Info("closing history store")
	return s.db.Close()
}
