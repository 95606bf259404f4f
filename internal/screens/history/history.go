package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screen"
	"github.com/abhisek/phantomledger/internal/store"
	"github.com/abhisek/phantomledger/internal/ui/layout"
	"github.com/abhisek/phantomledger/internal/ui/theme"
)

// pageSize is how many events the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Events []store.Event
	Err    error
}

// HistoryScreen lists the most recent entries of a player's progress log.
type HistoryScreen struct {
	eventRepo store.EventRepo
	playerID  string
	events    []store.Event
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, playerID string) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		playerID:  playerID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo, playerID := s.eventRepo, s.playerID
	return func() tea.Msg {
		events, err := repo.Recent(context.Background(), playerID, store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "Ledger History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

// describe renders the one-line summary of an event.
func describe(e store.Event) string {
	switch e.Kind {
	case store.EventCreated:
		return fmt.Sprintf("Entered the Ledger with %d lives", e.Amount)
	case store.EventProgress:
		if e.QuestionID == "" {
			return fmt.Sprintf("Scored %d", e.Amount)
		}
		return fmt.Sprintf("Broke cipher %s for %d", e.QuestionID, e.Amount)
	case store.EventLifeLost:
		return "Lost a life"
	case store.EventFinalize:
		return "Sealed the session into the lifetime score"
	case store.EventSync:
		return fmt.Sprintf("Resynced session at %d", e.Amount)
	case store.EventGrant:
		return fmt.Sprintf("Granted %d lives", e.Amount)
	}
	return string(e.Kind)
}

func kindColor(k store.EventKind) color.Color {
	switch k {
	case store.EventProgress, store.EventFinalize:
		return theme.Success
	case store.EventLifeLost:
		return theme.Error
	case store.EventGrant, store.EventCreated:
		return theme.Accent
	default:
		return theme.TextDim
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Reading the Ledger...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The Ledger holds no entries for you yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.events {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %s", prefix, e.CreatedAt.Format("Jan 02 15:04"), describe(e))

		style := lipgloss.NewStyle().Foreground(kindColor(e.Kind))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    #%d  %s  %s", e.Sequence, e.Kind, e.CreatedAt.Format("2006-01-02 15:04:05"))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
