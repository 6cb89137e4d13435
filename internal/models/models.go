package models

// Level is a question difficulty tier.
type Level string

const (
	LevelBeginner Level = "beginner"
	LevelMid      Level = "mid"
	LevelExpert   Level = "expert"
	LevelAll      Level = "all"
)

// LevelOrder is the fixed priority order of level blocks within a session.
var LevelOrder = []Level{LevelBeginner, LevelMid, LevelExpert}

// ValidEntryLevel reports whether l is accepted on a persisted leaderboard entry.
func ValidEntryLevel(l Level) bool {
	switch l {
	case LevelBeginner, LevelMid, LevelExpert, LevelAll:
		return true
	}
	return false
}

// Side identifies one of the two options of a question.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Category distinguishes the two question types.
type Category string

const (
	CategoryInterfaceComparison Category = "interface-comparison"
	CategoryFontIdentification  Category = "font-identification"
)

// Question represents one visual-judgment question. Exactly one of the
// image pair or the font pair is populated, depending on Category.
type Question struct {
	ID               int      `json:"id"`
	Level            Level    `json:"level"`
	Category         Category `json:"category"`
	Question         string   `json:"question"`
	PromptContext    string   `json:"promptContext,omitempty"`
	LeftImage        string   `json:"leftImage,omitempty"`
	RightImage       string   `json:"rightImage,omitempty"`
	LeftFont         string   `json:"leftFont,omitempty"`
	RightFont        string   `json:"rightFont,omitempty"`
	CorrectAnswer    Side     `json:"correctAnswer"`
	PrinciplesTested []string `json:"principlesTested"`
	Explanation      string   `json:"explanation"`
}

// LeaderboardEntry represents one persisted scoring result.
type LeaderboardEntry struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Score         int     `json:"score"`
	Accuracy      float64 `json:"accuracy"`
	TimeTaken     int     `json:"timeTaken"` // seconds
	Level         Level   `json:"level"`
	Timestamp     int64   `json:"timestamp"` // epoch millis
	TwitterHandle *string `json:"twitterHandle"`
	UserID        *string `json:"-"`
}

// StreakRecord represents a user's consecutive-day practice streak.
type StreakRecord struct {
	UserID           string `json:"userId"`
	CurrentStreak    int    `json:"currentStreak"`
	LastPracticeDate string `json:"lastPracticeDate"` // YYYY-MM-DD, UTC
}

// ProfileSession is one leaderboard row as shown on a user's profile.
type ProfileSession struct {
	ID        string  `json:"id"`
	Score     int     `json:"score"`
	Accuracy  float64 `json:"accuracy"`
	TimeTaken int     `json:"timeTaken"`
	Timestamp int64   `json:"timestamp"`
	Date      string  `json:"date"`
}

// ProfileUser is the identity slice of a profile, owned by the external
// auth collaborator and echoed back from token claims.
type ProfileUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Profile is the aggregated per-user view returned by GET /v1/profile.
type Profile struct {
	User              ProfileUser      `json:"user"`
	Streak            int              `json:"streak"`
	TotalSessions     int              `json:"totalSessions"`
	PersonalBestScore int              `json:"personalBestScore"`
	AverageAccuracy   float64          `json:"averageAccuracy"`
	AverageTime       int              `json:"averageTime"`
	RecentSessions    []ProfileSession `json:"recentSessions"`
}
