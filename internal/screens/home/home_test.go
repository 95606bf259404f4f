package home

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/router"
	sessionscreen "github.com/abhisek/phantomledger/internal/screens/session"
	"github.com/abhisek/phantomledger/internal/session"
)

const player = "0xhome"

func newHome(t *testing.T, rec *progress.PlayerProgress) (*HomeScreen, *int) {
	t.Helper()
	st := progress.NewMemoryStore()
	if rec != nil {
		st.Put(rec)
	}
	built := 0
	h := New(Options{
		PlayerID: player,
		Store:    st,
		NewEngine: func() *session.Engine {
			built++
			return session.New(session.Config{PlayerID: player, Store: st, Catalog: bank.Ciphers()})
		},
	})
	h.Update(h.Init()())
	return h, &built
}

func record(mut func(p *progress.PlayerProgress)) *progress.PlayerProgress {
	p := progress.New(player, progress.Defaults{}, time.Now())
	mut(p)
	return p
}

func TestNewPlayerCanEnter(t *testing.T) {
	h, built := newHome(t, nil)

	if got := h.menu.Items[itemPlay].Label; got != "ENTER THE LEDGER" {
		t.Errorf("play label = %q", got)
	}
	if h.Status() != nil {
		t.Error("new player should have no header status")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start a session")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := msg.Screen.(*sessionscreen.SessionScreen); !ok {
		t.Errorf("expected session screen, got %T", msg.Screen)
	}
	if *built != 1 {
		t.Errorf("expected one engine, got %d", *built)
	}
}

func TestResumeLabel(t *testing.T) {
	h, _ := newHome(t, record(func(p *progress.PlayerProgress) {
		p.SessionScore = 40
		p.SessionQuestionsAnswered = 3
		p.LifetimeQuestionsAnswered = 3
	}))

	if got := h.menu.Items[itemPlay].Label; got != "CONTINUE" {
		t.Errorf("play label = %q, want CONTINUE", got)
	}
	if st := h.Status(); st == nil || st.Score != 40 {
		t.Errorf("expected header score 40, got %+v", st)
	}
}

func TestNoLivesDisablesPlay(t *testing.T) {
	h, built := newHome(t, record(func(p *progress.PlayerProgress) { p.Lives = 0 }))

	if !h.menu.Items[itemPlay].Disabled {
		t.Fatal("play should be disabled without lives")
	}
	if h.menu.Selected == itemPlay {
		t.Error("selection should move off the disabled item")
	}
	if !strings.Contains(h.notice(), "phantom grant "+player) {
		t.Errorf("expected grant hint, got %q", h.notice())
	}

	h.Update(tea.KeyPressMsg{Code: '1', Text: "1"})
	if *built != 0 {
		t.Error("a disabled item must not start a session")
	}
}

func TestHistoryDisabledWithoutEventLog(t *testing.T) {
	h, _ := newHome(t, nil)
	if !h.menu.Items[itemHistory].Disabled {
		t.Error("history should be disabled without an event log")
	}
}

func TestExitQuits(t *testing.T) {
	h, _ := newHome(t, nil)
	_, cmd := h.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestViewRendersWelcome(t *testing.T) {
	h, _ := newHome(t, record(func(p *progress.PlayerProgress) { p.HighestScore = 120 }))
	view := h.View(120, 40)
	if !strings.Contains(view, "Personal best: 120 points") {
		t.Error("full layout should include the welcome card")
	}
}
