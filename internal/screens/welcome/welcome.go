package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screen"
	"github.com/abhisek/phantomledger/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// lineEvery is how long each intro line takes to appear.
	lineEvery = 300 * time.Millisecond
)

var cursorFrames = []string{"█", " "}

type tickMsg time.Time

// WelcomeScreen types out the intro story for a first-time player, then
// hands over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	lines        []string
	elapsed      time.Duration
	tickCount    int
	skipped      bool
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		lines:       strings.Split(bank.Intro, "\n"),
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// totalDur is the time needed to reveal every line.
func (w *WelcomeScreen) totalDur() time.Duration {
	return time.Duration(len(w.lines)) * lineEvery
}

// done reports whether the whole intro is on screen.
func (w *WelcomeScreen) done() bool {
	return w.skipped || w.elapsed >= w.totalDur()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < w.totalDur() {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// The first key during the reveal shows everything; the next one
		// moves on.
		if !w.done() {
			w.skipped = true
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// visibleLines returns how many intro lines are revealed.
func (w *WelcomeScreen) visibleLines() int {
	if w.done() {
		return len(w.lines)
	}
	return min(int(w.elapsed/lineEvery), len(w.lines))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width), ""}

	n := w.visibleLines()
	story := strings.Join(w.lines[:n], "\n")
	if !w.done() {
		story += cursorFrames[w.tickCount%len(cursorFrames)]
	}
	sections = append(sections, theme.Story.Render(story))

	if w.done() {
		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to enter the Ledger"))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
