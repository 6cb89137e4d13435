package service

import (
	"time"

	"github.com/Quadmor009/Design-Gym/internal/models"
	"github.com/Quadmor009/Design-Gym/internal/repository"
)

// StreakService applies the consecutive-day practice rules. All calendar
// math uses UTC dates (YYYY-MM-DD); per-user local-time streaks are not
// a thing this system defines.
type StreakService struct {
	repo *repository.StreakRepository
}

// NewStreakService creates a new streak service.
func NewStreakService(repo *repository.StreakRepository) *StreakService {
	return &StreakService{repo: repo}
}

const dateLayout = "2006-01-02"

// NextStreak computes the streak count that one practice on `today`
// produces given the existing record, and whether a write is needed.
// Same-day calls leave the count unchanged with no write; a last
// practice exactly yesterday increments; any larger gap resets to 1.
func NextStreak(existing *models.StreakRecord, today time.Time) (count int, write bool) {
	todayStr := today.UTC().Format(dateLayout)
	if existing == nil {
		return 1, true
	}
	if existing.LastPracticeDate == todayStr {
		if existing.CurrentStreak > 0 {
			return existing.CurrentStreak, false
		}
		return 1, false
	}
	yesterdayStr := today.UTC().AddDate(0, 0, -1).Format(dateLayout)
	if existing.LastPracticeDate == yesterdayStr {
		return existing.CurrentStreak + 1, true
	}
	return 1, true
}

// RecordPractice registers one practice session for the user today and
// returns the resulting streak count.
func (s *StreakService) RecordPractice(userID string) (int, error) {
	existing, err := s.repo.Get(userID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	count, write := NextStreak(existing, now)
	if !write {
		return count, nil
	}
	if err := s.repo.Upsert(userID, count, now.Format(dateLayout)); err != nil {
		return 0, err
	}
	return count, nil
}

// GetStreak returns the user's streak, defaulting to zero values when no
// record exists. A missing record is not an error.
func (s *StreakService) GetStreak(userID string) (*models.StreakRecord, error) {
	rec, err := s.repo.Get(userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return &models.StreakRecord{UserID: userID}, nil
	}
	return rec, nil
}
