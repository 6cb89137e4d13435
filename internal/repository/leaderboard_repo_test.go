package repository

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// fakeQueryer scripts per-shape insert outcomes. Full-shape statements
// are recognized by their user_id column.
type fakeQueryer struct {
	fullErr    error
	minimalErr error
	calls      []string
}

func (f *fakeQueryer) Query(query string, args ...any) (*sql.Rows, error) {
	return nil, errors.New("not used in this test")
}

func (f *fakeQueryer) Exec(query string, args ...any) (sql.Result, error) {
	return nil, errors.New("not used in this test")
}

func (f *fakeQueryer) QueryRowScan(query string, args []any, dest ...any) error {
	if strings.Contains(query, "user_id") {
		f.calls = append(f.calls, "full")
		return f.fullErr
	}
	f.calls = append(f.calls, "minimal")
	if f.minimalErr != nil {
		return f.minimalErr
	}
	// Echo the minimal RETURNING row back from the statement params.
	*dest[0].(*string) = args[0].(string)
	*dest[1].(*string) = args[1].(string)
	*dest[2].(*int) = args[2].(int)
	*dest[3].(*float64) = args[3].(float64)
	*dest[4].(*int) = args[4].(int)
	*dest[5].(*models.Level) = models.Level(args[5].(string))
	*dest[6].(*int64) = args[6].(int64)
	return nil
}

func testEntry(withUser bool) *models.LeaderboardEntry {
	handle := "@designer"
	e := &models.LeaderboardEntry{
		ID:            "1700000000000-abc123def",
		Name:          "Ada",
		Score:         1100,
		Accuracy:      92,
		TimeTaken:     145,
		Level:         models.LevelAll,
		Timestamp:     1700000000000,
		TwitterHandle: &handle,
	}
	if withUser {
		uid := "user-42"
		e.UserID = &uid
	}
	return e
}

func TestInsertPlan_OrderDependsOnUserRef(t *testing.T) {
	planNames := func(e *models.LeaderboardEntry) []string {
		var names []string
		for _, shape := range insertPlan(e) {
			names = append(names, shape.name)
		}
		return names
	}

	withUser := planNames(testEntry(true))
	if strings.Join(withUser, ",") != "full,full-no-user,minimal" {
		t.Errorf("with user ref: got %v", withUser)
	}

	anonymous := planNames(testEntry(false))
	if strings.Join(anonymous, ",") != "full,minimal" {
		t.Errorf("anonymous: got %v", anonymous)
	}
}

func TestInsert_FallsBackToMinimalOnSchemaMismatch(t *testing.T) {
	fake := &fakeQueryer{fullErr: &pq.Error{Code: "42703", Message: `column "twitter_handle" does not exist`}}
	repo := NewLeaderboardRepository(fake)
	entry := testEntry(true)

	if err := repo.Insert(entry); err != nil {
		t.Fatalf("expected the minimal shape to save the score, got %v", err)
	}
	if strings.Join(fake.calls, ",") != "full,full,minimal" {
		t.Errorf("unexpected cascade order: %v", fake.calls)
	}
	if entry.TwitterHandle != nil {
		t.Error("optional handle should surface as null after minimal insert")
	}
	if entry.UserID != nil {
		t.Error("user ref should surface as null after minimal insert")
	}
	if entry.Score != 1100 || entry.Name != "Ada" {
		t.Errorf("minimal insert lost mandatory fields: %+v", entry)
	}
}

func TestInsert_MinimalFailureIsCanonical(t *testing.T) {
	fullErr := &pq.Error{Code: "42703", Message: "optional column missing"}
	minimalErr := errors.New("pq: relation \"leaderboard\" does not exist")
	fake := &fakeQueryer{fullErr: fullErr, minimalErr: minimalErr}
	repo := NewLeaderboardRepository(fake)

	err := repo.Insert(testEntry(false))
	if err != minimalErr {
		t.Fatalf("expected the minimal attempt's error, got %v", err)
	}
}
