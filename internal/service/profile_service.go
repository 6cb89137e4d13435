package service

import (
	"log"
	"math"
	"time"

	"github.com/Quadmor009/Design-Gym/internal/models"
	"github.com/Quadmor009/Design-Gym/internal/repository"
)

// ProfileService aggregates a user's practice history. Every underlying
// query may fail independently; the profile degrades to zeroed stats
// instead of failing the request.
type ProfileService struct {
	profileRepo *repository.ProfileRepository
	streakRepo  *repository.StreakRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo *repository.ProfileRepository, streakRepo *repository.StreakRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, streakRepo: streakRepo}
}

// GetProfile builds the aggregated view for a user. Identity comes from
// the auth token; the name doubles as a fallback match for entries
// written without a user link.
func (s *ProfileService) GetProfile(userID string, user models.ProfileUser) *models.Profile {
	profile := &models.Profile{
		User:           user,
		RecentSessions: []models.ProfileSession{},
	}

	sessions, err := s.profileRepo.SessionsByUserID(userID)
	if err != nil {
		log.Printf("Profile sessions query failed for user %s: %v", userID, err)
	}
	if len(sessions) == 0 && user.Name != "" {
		fallback, err := s.profileRepo.SessionsByName(user.Name)
		if err != nil {
			log.Printf("Profile name-fallback query failed for %q: %v", user.Name, err)
		} else {
			sessions = fallback
		}
	}

	if rec, err := s.streakRepo.Get(userID); err != nil {
		// Streaks table may not exist yet; the profile still loads.
		log.Printf("Profile streak query failed for user %s: %v", userID, err)
	} else if rec != nil {
		profile.Streak = rec.CurrentStreak
	}

	if len(sessions) == 0 {
		return profile
	}

	var accuracySum, timeSum float64
	for _, sess := range sessions {
		if sess.Score > profile.PersonalBestScore {
			profile.PersonalBestScore = sess.Score
		}
		accuracySum += sess.Accuracy
		timeSum += float64(sess.TimeTaken)
	}
	n := float64(len(sessions))
	profile.TotalSessions = len(sessions)
	profile.AverageAccuracy = math.Round(accuracySum/n*100) / 100
	profile.AverageTime = int(math.Round(timeSum / n))

	recent := sessions
	if len(recent) > 15 {
		recent = recent[:15]
	}
	for _, sess := range recent {
		sess.Date = time.UnixMilli(sess.Timestamp).UTC().Format("1/2/2006")
		profile.RecentSessions = append(profile.RecentSessions, sess)
	}
	return profile
}
