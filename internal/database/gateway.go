package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
)

var (
	// ErrNotConfigured means DATABASE_URL is unset. Surfaced as 503 and
	// never retried.
	ErrNotConfigured = errors.New("DATABASE_URL environment variable is not set")

	// ErrUnavailable means every retry of a transient failure was spent.
	ErrUnavailable = errors.New("database unavailable")
)

// maxRetries bounds transient-failure retries per call (3 attempts total).
const maxRetries = 2

// Gateway owns the process-wide shared connection pool. The pool is
// created lazily on first use and goes through an explicit
// Healthy -> Invalid -> Healthy cycle: a transient failure discards it,
// the next call recreates it. Callers share the pool freely; the mutex
// only guards creation and teardown, never query execution.
type Gateway struct {
	mu   sync.Mutex
	db   *sql.DB
	open func() (*sql.DB, error)
}

// NewGateway returns a gateway with no pool yet. DATABASE_URL is read
// per call, so configuring it late works without a restart.
func NewGateway() *Gateway {
	return &Gateway{open: openFromEnv}
}

func openFromEnv() (*sql.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, ErrNotConfigured
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database pool: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Second)
	return db, nil
}

// pool returns the shared pool, creating it under the lock if absent.
func (g *Gateway) pool() (*sql.DB, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		return g.db, nil
	}
	db, err := g.open()
	if err != nil {
		return nil, err
	}
	g.db = db
	return db, nil
}

// Invalidate discards the shared pool so the next call recreates it.
// Used after transient failures and available to callers that observe a
// fatal pool-level event out of band.
func (g *Gateway) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.db != nil {
		g.db.Close()
		g.db = nil
	}
}

// Query runs a parameterized query with bounded retry on transient failure.
func (g *Gateway) Query(query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := g.withRetry(func(db *sql.DB) error {
		var err error
		rows, err = db.Query(query, args...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// QueryRowScan runs a single-row query and scans it into dest. A missing
// row is reported as sql.ErrNoRows, untouched by the retry wrapper.
func (g *Gateway) QueryRowScan(query string, args []any, dest ...any) error {
	return g.withRetry(func(db *sql.DB) error {
		return db.QueryRow(query, args...).Scan(dest...)
	})
}

// Exec runs a statement with bounded retry on transient failure.
func (g *Gateway) Exec(query string, args ...any) (sql.Result, error) {
	var res sql.Result
	err := g.withRetry(func(db *sql.DB) error {
		var err error
		res, err = db.Exec(query, args...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// withRetry executes fn against the shared pool. Transient failures
// invalidate the pool and retry up to maxRetries; exhaustion escalates to
// ErrUnavailable. Non-transient failures return immediately, wrapped with
// the original message. Configuration errors are never retried.
func (g *Gateway) withRetry(fn func(db *sql.DB) error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		db, err := g.pool()
		if err != nil {
			return err
		}
		err = fn(db)
		if err == nil {
			return nil
		}
		if err == sql.ErrNoRows {
			return err
		}
		if !IsTransient(err) {
			return fmt.Errorf("database query failed: %w", err)
		}
		lastErr = err
		if attempt < maxRetries {
			log.Printf("DB connection error (attempt %d/%d), recreating pool: %v", attempt+1, maxRetries+1, err)
			g.Invalidate()
		}
	}
	return fmt.Errorf("%w after %d attempts: %v", ErrUnavailable, maxRetries+1, lastErr)
}

// IsTransient classifies an error as a connection-level failure likely to
// succeed on retry, as opposed to a structural error (constraint, syntax,
// permission) that retrying cannot fix.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 08: connection exceptions. 57P01/02/03: server shutdown
		// or restart in progress.
		if pqErr.Code.Class() == "08" {
			return true
		}
		switch pqErr.Code {
		case "57P01", "57P02", "57P03":
			return true
		}
		return false
	}
	msg := err.Error()
	for _, needle := range []string{
		"connection reset",
		"connection refused",
		"connection timed out",
		"broken pipe",
		"terminating connection",
		"server closed the connection",
		"the database system is shutting down",
		"the database system is starting up",
	} {
		if strings.Contains(msg, needle) {
			return true
		}
	}
	return false
}

// IsSchemaMismatch reports whether err points at a column, table, or
// foreign key the current schema does not have. The leaderboard write
// cascade logs these before falling back to a smaller statement shape.
func IsSchemaMismatch(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "42703", "42P01", "23503": // undefined column, undefined table, FK violation
		return true
	}
	return false
}
