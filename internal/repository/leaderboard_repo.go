package repository

import (
	"database/sql"
	"log"

	"github.com/Quadmor009/Design-Gym/internal/database"
	"github.com/Quadmor009/Design-Gym/internal/models"
)

// Queryer is the slice of the connection gateway the repositories use.
type Queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRowScan(query string, args []any, dest ...any) error
	Exec(query string, args ...any) (sql.Result, error)
}

// LeaderboardRepository handles leaderboard persistence through the
// connection gateway.
type LeaderboardRepository struct {
	gw Queryer
}

// NewLeaderboardRepository creates a new leaderboard repository.
func NewLeaderboardRepository(gw Queryer) *LeaderboardRepository {
	return &LeaderboardRepository{gw: gw}
}

const (
	fullInsertSQL = `
		INSERT INTO leaderboard (id, name, score, accuracy, time_taken, level, timestamp, twitter_handle, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, score, accuracy, time_taken, level, timestamp, twitter_handle`

	minimalInsertSQL = `
		INSERT INTO leaderboard (id, name, score, accuracy, time_taken, level, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, score, accuracy, time_taken, level, timestamp`
)

// writeShape is one statement shape of the insert cascade: a pure
// mapping from an entry to a parameterized statement.
type writeShape struct {
	name        string
	sql         string
	params      func(e *models.LeaderboardEntry) []any
	withOptions bool // whether the RETURNING clause includes twitter_handle
}

func baseParams(e *models.LeaderboardEntry) []any {
	return []any{e.ID, e.Name, e.Score, e.Accuracy, e.TimeTaken, string(e.Level), e.Timestamp}
}

var (
	shapeFull = writeShape{
		name: "full",
		sql:  fullInsertSQL,
		params: func(e *models.LeaderboardEntry) []any {
			return append(baseParams(e), e.TwitterHandle, e.UserID)
		},
		withOptions: true,
	}
	shapeFullNoUser = writeShape{
		name: "full-no-user",
		sql:  fullInsertSQL,
		params: func(e *models.LeaderboardEntry) []any {
			return append(baseParams(e), e.TwitterHandle, nil)
		},
		withOptions: true,
	}
	shapeMinimal = writeShape{
		name:   "minimal",
		sql:    minimalInsertSQL,
		params: func(e *models.LeaderboardEntry) []any { return baseParams(e) },
	}
)

// insertPlan returns the ordered statement shapes to try for an entry.
// The full insert goes first; when a user reference exists, the same
// shape is retried without it (the reference may violate a foreign key,
// or the column may not exist yet); the minimal shape is always last and
// is the ground truth of whether a score can be written at all.
func insertPlan(e *models.LeaderboardEntry) []writeShape {
	if e.UserID != nil {
		return []writeShape{shapeFull, shapeFullNoUser, shapeMinimal}
	}
	return []writeShape{shapeFull, shapeMinimal}
}

// Insert persists an entry via the cascading fallback plan and fills it
// in from the RETURNING row. A valid entry is never lost to an
// optional-column mismatch; only a failure of the minimal shape comes
// back as the canonical error.
func (r *LeaderboardRepository) Insert(e *models.LeaderboardEntry) error {
	var lastErr error
	for _, shape := range insertPlan(e) {
		var err error
		if shape.withOptions {
			var handle sql.NullString
			err = r.gw.QueryRowScan(shape.sql, shape.params(e),
				&e.ID, &e.Name, &e.Score, &e.Accuracy, &e.TimeTaken, &e.Level, &e.Timestamp, &handle)
			if err == nil {
				e.TwitterHandle = nil
				if handle.Valid {
					e.TwitterHandle = &handle.String
				}
			}
		} else {
			err = r.gw.QueryRowScan(shape.sql, shape.params(e),
				&e.ID, &e.Name, &e.Score, &e.Accuracy, &e.TimeTaken, &e.Level, &e.Timestamp)
			if err == nil {
				e.TwitterHandle = nil
				e.UserID = nil
			}
		}
		if err == nil {
			return nil
		}
		if database.IsSchemaMismatch(err) {
			log.Printf("Leaderboard insert (%s shape) hit schema mismatch, falling back: %v", shape.name, err)
		} else {
			log.Printf("Leaderboard insert (%s shape) failed: %v", shape.name, err)
		}
		lastErr = err
	}
	return lastErr
}

// List returns entries ranked by score descending, accuracy descending,
// then time taken ascending. The "all" (or "global") sentinel returns
// every entry; any other level filters.
func (r *LeaderboardRepository) List(level models.Level) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT id, name, score, accuracy, time_taken, level, timestamp, twitter_handle
		FROM leaderboard
		ORDER BY score DESC, accuracy DESC, time_taken ASC`
	var args []any
	if level != models.LevelAll && level != "global" {
		query = `
			SELECT id, name, score, accuracy, time_taken, level, timestamp, twitter_handle
			FROM leaderboard
			WHERE level = $1
			ORDER BY score DESC, accuracy DESC, time_taken ASC`
		args = []any{string(level)}
	}

	rows, err := r.gw.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var e models.LeaderboardEntry
		var handle sql.NullString
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Accuracy, &e.TimeTaken, &e.Level, &e.Timestamp, &handle); err != nil {
			return nil, err
		}
		if handle.Valid {
			e.TwitterHandle = &handle.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
