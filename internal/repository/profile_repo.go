package repository

import (
	"github.com/Quadmor009/Design-Gym/internal/models"
)

// ProfileRepository reads a user's own leaderboard history.
type ProfileRepository struct {
	gw Queryer
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(gw Queryer) *ProfileRepository {
	return &ProfileRepository{gw: gw}
}

// SessionsByUserID returns the user's scoring sessions, newest first.
func (r *ProfileRepository) SessionsByUserID(userID string) ([]models.ProfileSession, error) {
	return r.querySessions(
		`SELECT id, score, accuracy, time_taken, timestamp
		 FROM leaderboard
		 WHERE user_id = $1
		 ORDER BY timestamp DESC`,
		userID,
	)
}

// SessionsByName matches sessions by display name, for entries written
// before the user_id column existed or while signed out.
func (r *ProfileRepository) SessionsByName(name string) ([]models.ProfileSession, error) {
	return r.querySessions(
		`SELECT id, score, accuracy, time_taken, timestamp
		 FROM leaderboard
		 WHERE LOWER(TRIM(name)) = LOWER(TRIM($1))
		 ORDER BY timestamp DESC
		 LIMIT 20`,
		name,
	)
}

func (r *ProfileRepository) querySessions(query string, arg any) ([]models.ProfileSession, error) {
	rows, err := r.gw.Query(query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.ProfileSession
	for rows.Next() {
		var s models.ProfileSession
		if err := rows.Scan(&s.ID, &s.Score, &s.Accuracy, &s.TimeTaken, &s.Timestamp); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
