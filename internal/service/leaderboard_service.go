package service

import (
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Quadmor009/Design-Gym/internal/cache"
	"github.com/Quadmor009/Design-Gym/internal/models"
	"github.com/Quadmor009/Design-Gym/internal/repository"
)

// FlexFloat unmarshals a JSON number or a numeric string. Anything else
// coerces to 0, matching how the original client-submitted bodies were
// normalized before storage.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = FlexFloat(n)
			return nil
		}
	}
	*f = 0
	return nil
}

// Submission is the loosely-typed POST /v1/leaderboard body. Pointer
// numeric fields distinguish "missing" from "zero".
type Submission struct {
	Name          string     `json:"name"`
	Score         *FlexFloat `json:"score"`
	Accuracy      *FlexFloat `json:"accuracy"`
	TimeTaken     *FlexFloat `json:"timeTaken"`
	Level         string     `json:"level"`
	TwitterHandle string     `json:"twitterHandle"`
}

// LeaderboardService validates submissions, drives the insert cascade,
// and serves ranked reads through the Redis cache.
type LeaderboardService struct {
	repo  *repository.LeaderboardRepository
	cache *cache.LeaderboardCache
}

// NewLeaderboardService creates a new leaderboard service.
func NewLeaderboardService(repo *repository.LeaderboardRepository, c *cache.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{repo: repo, cache: c}
}

// NormalizeSubmission turns a raw submission into a typed entry or a
// ValidationError. Numeric fields are coerced, the level is clamped to
// the known enumeration, and a social handle gets its canonical @ form.
func NormalizeSubmission(sub *Submission, userID *string) (*models.LeaderboardEntry, error) {
	name := strings.TrimSpace(sub.Name)
	if name == "" || sub.Score == nil || sub.Accuracy == nil || sub.TimeTaken == nil {
		return nil, validationErrorf("name, score, accuracy, and timeTaken are required")
	}

	level := models.Level(sub.Level)
	if !models.ValidEntryLevel(level) {
		level = models.LevelAll
	}

	var handle *string
	if h := strings.TrimSpace(sub.TwitterHandle); h != "" {
		if !strings.HasPrefix(h, "@") {
			h = "@" + h
		}
		handle = &h
	}

	now := time.Now().UnixMilli()
	return &models.LeaderboardEntry{
		ID:            strconv.FormatInt(now, 10) + "-" + randomSuffix(9),
		Name:          name,
		Score:         int(*sub.Score),
		Accuracy:      float64(*sub.Accuracy),
		TimeTaken:     int(*sub.TimeTaken),
		Level:         level,
		Timestamp:     now,
		TwitterHandle: handle,
		UserID:        userID,
	}, nil
}

// Submit validates and persists a scoring result, returning the row as
// stored (optional fields that did not make it surface as null).
func (s *LeaderboardService) Submit(sub *Submission, userID *string) (*models.LeaderboardEntry, error) {
	entry, err := NormalizeSubmission(sub, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(entry); err != nil {
		return nil, err
	}
	s.cache.Invalidate()
	return entry, nil
}

// List returns the ranked entries for a level filter, serving from the
// cache when possible and filling it on a database hit.
func (s *LeaderboardService) List(level models.Level) ([]models.LeaderboardEntry, error) {
	if entries, ok := s.cache.Get(level); ok {
		return entries, nil
	}
	entries, err := s.repo.List(level)
	if err != nil {
		return nil, err
	}
	s.cache.Set(level, entries)
	return entries, nil
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomSuffix mirrors the original id format: a short base36 tail after
// the epoch-millis prefix.
func randomSuffix(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}
