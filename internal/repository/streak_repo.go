package repository

import (
	"database/sql"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// StreakRepository handles streak persistence. One row per user.
type StreakRepository struct {
	gw Queryer
}

// NewStreakRepository creates a new streak repository.
func NewStreakRepository(gw Queryer) *StreakRepository {
	return &StreakRepository{gw: gw}
}

// Get returns the user's streak record, or (nil, nil) when none exists.
func (r *StreakRepository) Get(userID string) (*models.StreakRecord, error) {
	var streak int
	var lastDate sql.NullTime
	err := r.gw.QueryRowScan(
		`SELECT current_streak, last_practice_date FROM streaks WHERE user_id = $1`,
		[]any{userID},
		&streak, &lastDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rec := &models.StreakRecord{UserID: userID, CurrentStreak: streak}
	if lastDate.Valid {
		rec.LastPracticeDate = lastDate.Time.UTC().Format("2006-01-02")
	}
	return rec, nil
}

// Upsert writes the user's streak atomically. The ON CONFLICT clause
// makes concurrent calls for the same user collapse into one effective
// row instead of racing a read-then-write.
func (r *StreakRepository) Upsert(userID string, streak int, date string) error {
	_, err := r.gw.Exec(
		`INSERT INTO streaks (user_id, current_streak, last_practice_date, updated_at)
		 VALUES ($1, $2, $3::date, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id) DO UPDATE SET
		   current_streak = EXCLUDED.current_streak,
		   last_practice_date = EXCLUDED.last_practice_date,
		   updated_at = CURRENT_TIMESTAMP`,
		userID, streak, date,
	)
	return err
}
