package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/tier"
)

func testStats() session.FinalStats {
	return session.FinalStats{
		Score:             212,
		QuestionsAnswered: 20,
		CorrectAnswers:    18,
		TotalTime:         14 * time.Minute,
		AverageTime:       42 * time.Second,
		HintsUsed:         3,
		LivesLost:         2,
		LivesLeft:         3,
		Reward:            session.TokenReward(212),
		PersonalBest:      212,
		AverageScore:      212,
		LifetimeQuestions: tier.TotalQuestions,
		GamesCompleted:    1,
	}
}

func completeRecord() *progress.PlayerProgress {
	p := progress.New("0xabc", progress.Defaults{Lives: 3, Network: "mainnet"}, time.Now())
	p.LifetimeQuestionsAnswered = tier.TotalQuestions
	return p
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testStats(), session.PhaseSessionComplete, completeRecord())
	if s.Title() != "Final Statistics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Final Statistics")
	}
	s = New(testStats(), session.PhaseLivesExhausted, nil)
	if s.Title() != "Cast Out" {
		t.Errorf("Title = %q, want %q", s.Title(), "Cast Out")
	}
}

func TestSummaryScreen_CompleteShowsCipher(t *testing.T) {
	s := New(testStats(), session.PhaseSessionComplete, completeRecord())
	view := s.View(100, 60)
	if !strings.Contains(view, "FINAL CIPHER") {
		t.Error("expected the closing cipher on a complete run")
	}
	if !strings.Contains(view, "2.1200 APT") {
		t.Error("expected reward with four decimals")
	}
	if !strings.Contains(view, "CODE BREAKER") {
		t.Error("expected rank for score 212")
	}
}

func TestSummaryScreen_ExhaustedHidesCipher(t *testing.T) {
	st := testStats()
	st.LivesLeft = 0
	s := New(st, session.PhaseLivesExhausted, nil)
	view := s.View(100, 60)
	if strings.Contains(view, "FINAL CIPHER") {
		t.Error("closing cipher should not be shown when lives ran out")
	}
	if !strings.Contains(view, "life force is spent") {
		t.Error("expected lives exhausted message")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		s := New(testStats(), session.PhaseSessionComplete, nil)
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatal("expected a navigation command")
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Error("expected PopToRootMsg")
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testStats(), session.PhaseSessionComplete, nil)
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
