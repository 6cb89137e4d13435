package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/lib/pq"
)

// fakeDriver hands each statement execution the next scripted error
// (nil meaning success), so retry behavior can be observed end to end.
type fakeDriver struct {
	mu    sync.Mutex
	queue []error
	execs int
}

func (d *fakeDriver) Open(name string) (driver.Conn, error) { return &fakeConn{d: d}, nil }

type fakeConn struct{ d *fakeDriver }

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) { return &fakeStmt{d: c.d}, nil }
func (c *fakeConn) Close() error                              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)                 { return nil, driver.ErrSkip }

type fakeStmt struct{ d *fakeDriver }

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) next() error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.execs++
	if len(s.d.queue) == 0 {
		return nil
	}
	err := s.d.queue[0]
	s.d.queue = s.d.queue[1:]
	return err
}

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return driver.RowsAffected(1), nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	if err := s.next(); err != nil {
		return nil, err
	}
	return &fakeRows{}, nil
}

type fakeRows struct{ done bool }

func (r *fakeRows) Columns() []string { return []string{"ok"} }
func (r *fakeRows) Close() error      { return nil }
func (r *fakeRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = int64(1)
	return nil
}

var driverSeq int

// newTestGateway wires a gateway to a scripted driver and counts pool
// creations.
func newTestGateway(d *fakeDriver) (*Gateway, *int) {
	driverSeq++
	name := fmt.Sprintf("gateway-fake-%d", driverSeq)
	sql.Register(name, d)

	opens := 0
	g := NewGateway()
	g.open = func() (*sql.DB, error) {
		opens++
		return sql.Open(name, "")
	}
	return g, &opens
}

func TestGateway_TransientFailureRecreatesPoolAndRetries(t *testing.T) {
	reset := errors.New("read tcp 10.0.0.1:5432: connection reset by peer")
	d := &fakeDriver{queue: []error{reset, reset, nil}}
	g, opens := newTestGateway(d)

	if _, err := g.Exec("DELETE FROM leaderboard WHERE id = $1"); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if d.execs != 3 {
		t.Errorf("expected 3 attempts, got %d", d.execs)
	}
	if *opens != 3 {
		t.Errorf("expected pool recreated per retry (3 opens), got %d", *opens)
	}
}

func TestGateway_TransientFailureExhaustsRetries(t *testing.T) {
	refused := errors.New("dial tcp 10.0.0.1:5432: connection refused")
	d := &fakeDriver{queue: []error{refused, refused, refused}}
	g, _ := newTestGateway(d)

	_, err := g.Exec("SELECT 1")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if d.execs != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", d.execs)
	}
}

func TestGateway_NonTransientFailureDoesNotRetry(t *testing.T) {
	syntax := errors.New("pq: syntax error at or near \"INSRT\"")
	d := &fakeDriver{queue: []error{syntax}}
	g, opens := newTestGateway(d)

	_, err := g.Exec("INSRT INTO leaderboard")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrUnavailable) {
		t.Errorf("structural error misclassified as unavailable: %v", err)
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("original message lost: %v", err)
	}
	if d.execs != 1 {
		t.Errorf("expected a single attempt, got %d", d.execs)
	}
	if *opens != 1 {
		t.Errorf("expected no pool recreation, got %d opens", *opens)
	}
}

func TestGateway_MissingConfigIsNotRetried(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	g := NewGateway()

	_, err := g.Exec("SELECT 1")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"bad conn", driver.ErrBadConn, true},
		{"eof", io.EOF, true},
		{"net op error", &net.OpError{Op: "read", Err: errors.New("timeout")}, true},
		{"pq admin shutdown", &pq.Error{Code: "57P01"}, true},
		{"pq cannot connect now", &pq.Error{Code: "57P03"}, true},
		{"pq connection failure class", &pq.Error{Code: "08006"}, true},
		{"pq unique violation", &pq.Error{Code: "23505"}, false},
		{"pq undefined column", &pq.Error{Code: "42703"}, false},
		{"reset by peer text", errors.New("read: connection reset by peer"), true},
		{"refused text", errors.New("dial: connection refused"), true},
		{"broken pipe text", errors.New("write: broken pipe"), true},
		{"terminating connection text", errors.New("pq: terminating connection due to administrator command"), true},
		{"constraint text", errors.New("pq: null value in column \"name\" violates not-null constraint"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, expected %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"undefined column", &pq.Error{Code: "42703"}, true},
		{"undefined table", &pq.Error{Code: "42P01"}, true},
		{"fk violation", &pq.Error{Code: "23503"}, true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSchemaMismatch(tt.err); got != tt.want {
				t.Errorf("IsSchemaMismatch(%v) = %v, expected %v", tt.err, got, tt.want)
			}
		})
	}
}
