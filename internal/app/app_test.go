package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screens/home"
	sessionscreen "github.com/abhisek/phantomledger/internal/screens/session"
	"github.com/abhisek/phantomledger/internal/session"
)

func testOptions(intro bool) Options {
	st := progress.NewMemoryStore()
	return Options{
		Intro: intro,
		Home: home.Options{
			PlayerID: "0xapp",
			Store:    st,
			NewEngine: func() *session.Engine {
				return session.New(session.Config{PlayerID: "0xapp", Store: st, Catalog: bank.Ciphers()})
			},
		},
	}
}

func TestIntroStartsWithWelcome(t *testing.T) {
	m := newAppModel(testOptions(true))
	if m.router.Active().Title() != "" {
		t.Errorf("expected the intro screen first, got %q", m.router.Active().Title())
	}

	m = newAppModel(testOptions(false))
	if m.router.Active().Title() != "Home" {
		t.Errorf("expected home first, got %q", m.router.Active().Title())
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testOptions(false))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestEscDelegatedToBackHandler(t *testing.T) {
	opts := testOptions(false)
	m := newAppModel(opts)
	m.router.Push(sessionscreen.New(opts.Home.NewEngine()))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("esc on the play screen must not pop it directly")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("expected play screen to stay, depth %d", m.router.Depth())
	}
	m.router.CloseAll()
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(false))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
