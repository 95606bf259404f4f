package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/judge"
	"github.com/abhisek/phantomledger/internal/router"
	"github.com/abhisek/phantomledger/internal/screen"
	"github.com/abhisek/phantomledger/internal/screens/summary"
	sess "github.com/abhisek/phantomledger/internal/session"
	"github.com/abhisek/phantomledger/internal/ui/components"
	"github.com/abhisek/phantomledger/internal/ui/layout"
)

// closeTimeout bounds how long leaving the screen waits for queued writes.
const closeTimeout = 5 * time.Second

// SessionScreen implements screen.Screen for a run of questions.
type SessionScreen struct {
	engine  *sess.Engine
	started bool

	turn    sess.Turn
	hasTurn bool
	input   components.AnswerInput
	choice  components.MultiChoice
	hint    string
	notice  string

	// outcome is set while the feedback overlay is shown.
	outcome *sess.Outcome

	showingQuitConfirm bool
	errMsg             string
	closed             bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// New creates a SessionScreen driving engine. The engine is started by Init.
func New(engine *sess.Engine) *SessionScreen {
	return &SessionScreen{engine: engine}
}

func (s *SessionScreen) Init() tea.Cmd {
	engine := s.engine
	return func() tea.Msg {
		return engineStartedMsg{Err: engine.Start(context.Background())}
	}
}

func (s *SessionScreen) Title() string {
	if s.hasTurn {
		return s.turn.Tier.Name()
	}
	return "Session"
}

func (s *SessionScreen) HandlesBack() bool {
	return true
}

func (s *SessionScreen) Status() *layout.HeaderStats {
	p := s.engine.Progress()
	if p == nil {
		return nil
	}
	return &layout.HeaderStats{Lives: p.Lives, Score: p.SessionScore}
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case !s.started:
		return nil
	case s.showingQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	case s.outcome != nil:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{{Key: "Enter", Description: "Submit"}}
	if s.hasTurn && s.turn.Question.Kind() == bank.KindChoice {
		hints = []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	if s.hasTurn && s.turn.Question.HasHint() && s.hint == "" {
		hints = append(hints, layout.KeyHint{Key: "Tab", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if !s.started {
		return renderLoading(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	if s.outcome != nil {
		return s.renderFeedback(width, height)
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case engineStartedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward cursor blinks and the like to the answer input.
	if s.answering() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// answering reports whether a text question is waiting for input.
func (s *SessionScreen) answering() bool {
	return s.hasTurn && s.outcome == nil && !s.showingQuitConfirm &&
		s.turn.Question.Kind() == bank.KindText
}

func (s *SessionScreen) handleStarted(msg engineStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.started = true
	if s.engine.Phase().Terminal() {
		return s, endSession
	}
	return s, s.serveTurn()
}

// serveTurn picks up the engine's current question and arms its timer.
func (s *SessionScreen) serveTurn() tea.Cmd {
	turn, ok := s.engine.Current()
	s.turn, s.hasTurn = turn, ok
	s.hint = ""
	s.notice = ""
	if !ok {
		return nil
	}
	if turn.HintRevealed {
		s.hint = turn.Question.Hint
	}
	if turn.Question.Kind() == bank.KindChoice {
		s.choice = components.NewMultiChoice(turn.Question.Options)
		return tickCmd(turn.Seq)
	}
	s.input = components.NewAnswerInput("Decode the cipher...", 80)
	return tea.Batch(s.input.Init(), tickCmd(turn.Seq))
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if !s.hasTurn || msg.Seq != s.turn.Seq || s.outcome != nil {
		return s, nil
	}
	if out, resolved := s.engine.Tick(msg.Seq); resolved {
		return s.showOutcome(out)
	}
	return s, tickCmd(msg.Seq)
}

func (s *SessionScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	final, ok := s.engine.Final()
	if !ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	result := summary.New(final, s.engine.Phase(), s.engine.Progress())
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: result}
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Start failed: the engine is still initializing and can be retried.
	if s.errMsg != "" {
		switch key {
		case "r", "R":
			s.errMsg = ""
			return s, s.Init()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if !s.started {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key moves on.
	if s.outcome != nil {
		return s.dismissFeedback()
	}

	if !s.hasTurn {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "tab":
		return s.revealHint()
	}

	if s.turn.Question.Kind() == bank.KindChoice {
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Picked != components.NoPick {
			return s.submit(judge.ChoiceAnswer(s.choice.Picked))
		}
		return s, nil
	}

	if key == "enter" {
		return s.submit(judge.TextAnswer(s.input.Value()))
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.notice = ""
	return s, cmd
}

func (s *SessionScreen) revealHint() (screen.Screen, tea.Cmd) {
	hint, err := s.engine.RevealHint(s.turn.Seq)
	switch {
	case errors.Is(err, sess.ErrNoHint):
		s.notice = "No hint for this cipher."
	case err != nil:
		s.notice = err.Error()
	default:
		s.hint = hint
	}
	return s, nil
}

// submit hands the answer to the engine. Rejected submissions leave the
// question in play.
func (s *SessionScreen) submit(sub judge.Submission) (screen.Screen, tea.Cmd) {
	out, err := s.engine.Submit(s.turn.Seq, sub)
	switch {
	case errors.Is(err, judge.ErrEmptyAnswer):
		s.notice = "Type an answer first."
		return s, nil
	case errors.Is(err, judge.ErrNoSelection), errors.Is(err, judge.ErrOptionOutOfRange):
		s.choice.Picked = components.NoPick
		s.notice = "Pick one of the options."
		return s, nil
	case err != nil:
		s.notice = err.Error()
		return s, nil
	}
	return s.showOutcome(out)
}

func (s *SessionScreen) showOutcome(out sess.Outcome) (screen.Screen, tea.Cmd) {
	s.outcome = &out
	if s.turn.Question.Kind() == bank.KindChoice {
		s.choice.Reveal(s.turn.Question.CorrectIndex)
	} else {
		s.input.Mark(out.Correct)
	}
	return s, nil
}

func (s *SessionScreen) dismissFeedback() (screen.Screen, tea.Cmd) {
	out := s.outcome
	s.outcome = nil
	if out.Phase.Terminal() {
		return s, endSession
	}
	// The next question's clock starts only once it is on screen.
	s.engine.Continue()
	return s, s.serveTurn()
}

// Close flushes the engine's pending writes. Safe to call more than once.
func (s *SessionScreen) Close() {
	if s.closed {
		return
	}
	s.closed = true
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	_ = s.engine.Close(ctx)
}

func endSession() tea.Msg {
	return sessionEndMsg{}
}

// tickCmd returns a 1-second tick for the question served as seq.
func tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Seq: seq}
	})
}
