package quiz

import (
	"errors"
	"math"
	"time"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

// CoinsPerCorrect is awarded once per correctly answered question.
const CoinsPerCorrect = 100

// Phase is the state of a session's scoring state machine.
type Phase string

const (
	PhaseAwaitingAnswer     Phase = "awaiting_answer"
	PhaseShowingExplanation Phase = "showing_explanation"
	PhaseLevelComplete      Phase = "level_complete"
	PhaseSessionComplete    Phase = "session_complete"
)

var (
	ErrNoSelection   = errors.New("no answer selected yet")
	ErrNotAdvancable = errors.New("session is not showing an explanation")
	ErrNoLevelBreak  = errors.New("session is not at a level boundary")
	ErrEmptySession  = errors.New("session has no questions")
)

// AnswerRecord captures the outcome of one answered question.
type AnswerRecord struct {
	Selected models.Side `json:"selected"`
	Correct  bool        `json:"correct"`
}

// Session is one play-through of the quiz. It is single-owner state:
// one client drives it, so it carries no internal locking.
type Session struct {
	ID        string
	StartedAt time.Time

	bank      *Bank
	quotas    map[models.Level]int
	questions []models.Question
	index     int
	phase     Phase

	completedLevel models.Level
	coins          int
	scored         map[int]bool
	answers        map[int]AnswerRecord
}

// NewSession selects questions once and starts at the first one. The
// selection is memoized for the session's lifetime; re-reads never
// reshuffle.
func NewSession(id string, bank *Bank, quotas map[models.Level]int) (*Session, error) {
	questions := SelectQuestions(bank, quotas)
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	return &Session{
		ID:        id,
		StartedAt: time.Now(),
		bank:      bank,
		quotas:    quotas,
		questions: questions,
		phase:     PhaseAwaitingAnswer,
		scored:    make(map[int]bool),
		answers:   make(map[int]AnswerRecord),
	}, nil
}

// Phase returns the machine's current phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// QuestionCount returns the number of questions in the session.
func (s *Session) QuestionCount() int { return len(s.questions) }

// Coins returns the running coin total.
func (s *Session) Coins() int { return s.coins }

// MaxCoins returns the highest total this session could award.
func (s *Session) MaxCoins() int { return len(s.questions) * CoinsPerCorrect }

// CompletedLevel returns the level just finished while in PhaseLevelComplete.
func (s *Session) CompletedLevel() models.Level { return s.completedLevel }

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() models.Question { return s.questions[s.index] }

// AlreadyScored reports whether the question at index i has had its
// scoring decided. Once true, no later action can change the coins that
// question contributed.
func (s *Session) AlreadyScored(i int) bool { return s.scored[i] }

// Answer returns the recorded answer for index i, if any.
func (s *Session) Answer(i int) (AnswerRecord, bool) {
	rec, ok := s.answers[i]
	return rec, ok
}

// Select records the chosen side for the current question and moves to
// ShowingExplanation. Coins are awarded at most once per index no matter
// how often the result is redisplayed; while the explanation is showing,
// further selects are no-ops that return the already-recorded answer.
func (s *Session) Select(side models.Side) (AnswerRecord, error) {
	switch s.phase {
	case PhaseShowingExplanation:
		return s.answers[s.index], nil
	case PhaseAwaitingAnswer:
	default:
		return AnswerRecord{}, ErrNoSelection
	}

	correct := side == s.questions[s.index].CorrectAnswer
	rec := AnswerRecord{Selected: side, Correct: correct}
	s.answers[s.index] = rec
	if !s.scored[s.index] {
		if correct {
			s.coins += CoinsPerCorrect
		}
		// Mark scored even when wrong so a re-render can't re-open scoring.
		s.scored[s.index] = true
	}
	s.phase = PhaseShowingExplanation
	return rec, nil
}

// Advance leaves the explanation: to LevelComplete at the end of a level
// block, otherwise to the next question.
func (s *Session) Advance() error {
	if s.phase != PhaseShowingExplanation {
		return ErrNotAdvancable
	}
	if s.atLevelBlockEnd() {
		s.completedLevel = s.questions[s.index].Level
		s.phase = PhaseLevelComplete
		return nil
	}
	s.index++
	s.phase = PhaseAwaitingAnswer
	return nil
}

// Proceed leaves a level-complete break: to SessionComplete after the
// final block, otherwise to the first question of the next block.
func (s *Session) Proceed() error {
	if s.phase != PhaseLevelComplete {
		return ErrNoLevelBreak
	}
	s.completedLevel = ""
	if s.index == len(s.questions)-1 {
		s.phase = PhaseSessionComplete
		return nil
	}
	s.index++
	s.phase = PhaseAwaitingAnswer
	return nil
}

// Restart resets the session to a fresh play-through: index 0, zero
// coins, empty scored set, and a newly reselected question set.
func (s *Session) Restart() {
	s.questions = SelectQuestions(s.bank, s.quotas)
	s.index = 0
	s.phase = PhaseAwaitingAnswer
	s.completedLevel = ""
	s.coins = 0
	s.scored = make(map[int]bool)
	s.answers = make(map[int]AnswerRecord)
	s.StartedAt = time.Now()
}

// Accuracy returns the session accuracy as a rounded 0–100 percentage.
func (s *Session) Accuracy() int {
	max := s.MaxCoins()
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(s.coins) / float64(max) * 100))
}

// Feedback buckets the accuracy into a qualitative verdict.
func (s *Session) Feedback() string {
	switch acc := s.Accuracy(); {
	case acc >= 80:
		return "Strong"
	case acc >= 50:
		return "Solid"
	default:
		return "Needs practice"
	}
}

// TimeTaken returns whole seconds since the session started.
func (s *Session) TimeTaken() int {
	return int(time.Since(s.StartedAt).Seconds())
}

// atLevelBlockEnd reports whether the current index is the last of its
// contiguous level block.
func (s *Session) atLevelBlockEnd() bool {
	if s.index == len(s.questions)-1 {
		return true
	}
	return s.questions[s.index+1].Level != s.questions[s.index].Level
}
