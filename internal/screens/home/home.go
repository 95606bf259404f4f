package home

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screen"
	"github.com/abhisek/phantomledger/internal/screens/history"
	sessionscreen "github.com/abhisek/phantomledger/internal/screens/session"
	"github.com/abhisek/phantomledger/internal/screens/welcome"
	"github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/store"
	"github.com/abhisek/phantomledger/internal/ui/components"
	"github.com/abhisek/phantomledger/internal/ui/layout"
)

const (
	itemPlay = iota
	itemHistory
	itemExit
)

// Options wires the home screen to the player's data.
type Options struct {
	PlayerID string
	Store    progress.Store

	// Events is nil when the progress store keeps no event log.
	Events store.EventRepo

	// NewEngine builds a fresh engine for each run.
	NewEngine func() *session.Engine
}

type progressLoadedMsg struct {
	Progress *progress.PlayerProgress
	Err      error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	opts     Options
	menu     components.Menu
	progress *progress.PlayerProgress
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}
	h.menu = components.NewMenu([]components.MenuItem{
		itemPlay: {Label: "ENTER THE LEDGER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(opts.NewEngine())}
			}
		}},
		itemHistory: {Label: "LEDGER HISTORY", Disabled: opts.Events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(opts.Events, opts.PlayerID)}
			}
		}},
		itemExit: {Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

// Init reloads the player's record. It runs again whenever the player
// returns to the home screen.
func (h *HomeScreen) Init() tea.Cmd {
	st, playerID := h.opts.Store, h.opts.PlayerID
	return func() tea.Msg {
		p, err := st.Get(context.Background(), playerID)
		if errors.Is(err, progress.ErrNotFound) {
			return progressLoadedMsg{}
		}
		return progressLoadedMsg{Progress: p, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(progressLoadedMsg); ok {
		h.loaded = true
		h.errMsg = ""
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		}
		h.progress = msg.Progress
		h.refreshMenu()
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// refreshMenu relabels the play item for the player's standing.
func (h *HomeScreen) refreshMenu() {
	play := &h.menu.Items[itemPlay]
	p := h.progress
	play.Disabled = false
	switch {
	case p == nil:
		play.Label = "ENTER THE LEDGER"
	case p.Lives <= 0:
		play.Label = "NO LIVES LEFT"
		play.Disabled = true
	case p.Complete():
		play.Label = "REVISIT THE CIPHER"
	case p.SessionQuestionsAnswered > 0:
		play.Label = "CONTINUE"
	default:
		play.Label = "ENTER THE LEDGER"
	}
	if play.Disabled && h.menu.Selected == itemPlay {
		h.menu.Selected = itemExit
	}
}

// notice returns the warning shown under the menu, if any.
func (h *HomeScreen) notice() string {
	switch {
	case h.errMsg != "":
		return "Ledger unavailable: " + h.errMsg
	case h.progress != nil && h.progress.Lives <= 0:
		return "Out of lives. Run `phantom grant " + h.opts.PlayerID + "` to continue."
	}
	return ""
}

func (h *HomeScreen) Status() *layout.HeaderStats {
	if h.progress == nil {
		return nil
	}
	return &layout.HeaderStats{Lives: h.progress.Lives, Score: h.progress.SessionScore}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100

	cw := components.ContentWidth(width)

	sections := []string{welcome.RenderBanner(cw)}

	if !compact && h.loaded {
		sections = append(sections, components.Card(progress.Welcome(h.progress), cw))
	}

	sections = append(sections, renderStatsBar(h.progress, cw, compact))

	labels := make([]string, len(h.menu.Items))
	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		labels[i] = item.Label
		disabled[i] = item.Disabled
	}
	if compact {
		sections = append(sections, renderMenuCompact(labels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(labels, h.menu.Selected, cw, disabled))
	}

	if n := h.notice(); n != "" {
		sections = append(sections, renderNotice(n, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
