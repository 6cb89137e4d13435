package quiz

import (
	"testing"

	"github.com/Quadmor009/Design-Gym/internal/models"
)

func newTestSession(t *testing.T, beginner, mid int) *Session {
	t.Helper()
	bank := testBank(map[models.Level]int{models.LevelBeginner: beginner, models.LevelMid: mid})
	quotas := map[models.Level]int{models.LevelBeginner: beginner, models.LevelMid: mid}
	s, err := NewSession("test-session", bank, quotas)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	return s
}

func TestSession_FullWalkAllCorrect(t *testing.T) {
	s := newTestSession(t, 5, 7)

	for i := 0; i < 12; i++ {
		if s.Phase() != PhaseAwaitingAnswer {
			t.Fatalf("question %d: phase %s, expected awaiting_answer", i, s.Phase())
		}
		rec, err := s.Select(models.SideLeft) // test bank answers are all left
		if err != nil {
			t.Fatalf("question %d: select failed: %v", i, err)
		}
		if !rec.Correct {
			t.Fatalf("question %d: expected correct answer", i)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("question %d: advance failed: %v", i, err)
		}

		switch i {
		case 4:
			if s.Phase() != PhaseLevelComplete || s.CompletedLevel() != models.LevelBeginner {
				t.Fatalf("after question %d: phase %s level %s, expected beginner complete", i, s.Phase(), s.CompletedLevel())
			}
			if err := s.Proceed(); err != nil {
				t.Fatalf("proceed failed: %v", err)
			}
			if s.Index() != 5 {
				t.Fatalf("expected index 5 after beginner block, got %d", s.Index())
			}
		case 11:
			if s.Phase() != PhaseLevelComplete || s.CompletedLevel() != models.LevelMid {
				t.Fatalf("after question %d: phase %s level %s, expected mid complete", i, s.Phase(), s.CompletedLevel())
			}
			if err := s.Proceed(); err != nil {
				t.Fatalf("final proceed failed: %v", err)
			}
			if s.Phase() != PhaseSessionComplete {
				t.Fatalf("expected session_complete, got %s", s.Phase())
			}
		}
	}

	if s.Coins() != 1200 {
		t.Errorf("expected 1200 coins, got %d", s.Coins())
	}
	if s.Accuracy() != 100 {
		t.Errorf("expected 100%% accuracy, got %d", s.Accuracy())
	}
	if s.Feedback() != "Strong" {
		t.Errorf("expected Strong feedback, got %q", s.Feedback())
	}
}

func TestSession_CoinsAwardedAtMostOnce(t *testing.T) {
	s := newTestSession(t, 2, 0)

	if s.AlreadyScored(0) {
		t.Fatal("index 0 scored before any answer")
	}
	if _, err := s.Select(models.SideLeft); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if s.Coins() != CoinsPerCorrect {
		t.Fatalf("expected %d coins, got %d", CoinsPerCorrect, s.Coins())
	}
	if !s.AlreadyScored(0) {
		t.Fatal("index 0 not marked scored")
	}

	// Picking the other option while the explanation shows must not
	// change the total or the recorded answer.
	rec, err := s.Select(models.SideRight)
	if err != nil {
		t.Fatalf("repeat select failed: %v", err)
	}
	if rec.Selected != models.SideLeft || !rec.Correct {
		t.Errorf("repeat select rewrote the answer record: %+v", rec)
	}
	if s.Coins() != CoinsPerCorrect {
		t.Errorf("repeat select changed coins: %d", s.Coins())
	}

	if s.Coins() > s.MaxCoins() {
		t.Errorf("coins %d exceed max %d", s.Coins(), s.MaxCoins())
	}
}

func TestSession_WrongAnswerScoresZeroButMarksIndex(t *testing.T) {
	s := newTestSession(t, 2, 0)

	rec, err := s.Select(models.SideRight)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if rec.Correct {
		t.Fatal("expected wrong answer")
	}
	if s.Coins() != 0 {
		t.Errorf("wrong answer awarded coins: %d", s.Coins())
	}
	if !s.AlreadyScored(0) {
		t.Error("wrong answer must still close scoring for the index")
	}
}

func TestSession_InvalidTransitions(t *testing.T) {
	s := newTestSession(t, 2, 0)

	if err := s.Advance(); err != ErrNotAdvancable {
		t.Errorf("advance before answering: got %v, expected ErrNotAdvancable", err)
	}
	if err := s.Proceed(); err != ErrNoLevelBreak {
		t.Errorf("proceed outside a level break: got %v, expected ErrNoLevelBreak", err)
	}

	// Walk to session complete, then check terminal-phase selects.
	for i := 0; i < 2; i++ {
		s.Select(models.SideLeft)
		s.Advance()
		if s.Phase() == PhaseLevelComplete {
			s.Proceed()
		}
	}
	if s.Phase() != PhaseSessionComplete {
		t.Fatalf("expected session_complete, got %s", s.Phase())
	}
	if _, err := s.Select(models.SideLeft); err != ErrNoSelection {
		t.Errorf("select after completion: got %v, expected ErrNoSelection", err)
	}
}

func TestSession_RestartResetsEverything(t *testing.T) {
	s := newTestSession(t, 3, 0)
	s.Select(models.SideLeft)
	s.Advance()

	s.Restart()

	if s.Index() != 0 {
		t.Errorf("index not reset: %d", s.Index())
	}
	if s.Coins() != 0 {
		t.Errorf("coins not reset: %d", s.Coins())
	}
	if s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("phase not reset: %s", s.Phase())
	}
	if s.AlreadyScored(0) {
		t.Error("scored set not reset")
	}
	if s.QuestionCount() != 3 {
		t.Errorf("restart lost questions: %d", s.QuestionCount())
	}
}

func TestSession_AccuracyAndFeedbackBuckets(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		total    int
		accuracy int
		feedback string
	}{
		{"all correct", 10, 10, 100, "Strong"},
		{"eighty percent", 8, 10, 80, "Strong"},
		{"half", 5, 10, 50, "Solid"},
		{"below half", 4, 10, 40, "Needs practice"},
		{"none", 0, 10, 0, "Needs practice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, tt.total, 0)
			for i := 0; i < tt.total; i++ {
				side := models.SideRight // wrong
				if i < tt.correct {
					side = models.SideLeft
				}
				if _, err := s.Select(side); err != nil {
					t.Fatalf("select %d: %v", i, err)
				}
				if err := s.Advance(); err != nil {
					t.Fatalf("advance %d: %v", i, err)
				}
				if s.Phase() == PhaseLevelComplete {
					s.Proceed()
				}
			}
			if got := s.Accuracy(); got != tt.accuracy {
				t.Errorf("accuracy: got %d, expected %d", got, tt.accuracy)
			}
			if got := s.Feedback(); got != tt.feedback {
				t.Errorf("feedback: got %q, expected %q", got, tt.feedback)
			}
		})
	}
}

func TestStore_CreateGetDelete(t *testing.T) {
	bank := testBank(map[models.Level]int{models.LevelBeginner: 3})
	store := NewStore()

	s, err := store.Create(bank, map[models.Level]int{models.LevelBeginner: 3})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	got, err := store.Get(s.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != s {
		t.Error("store returned a different session")
	}

	store.Delete(s.ID)
	if _, err := store.Get(s.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
}
