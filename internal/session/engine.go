package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/judge"
	"github.com/abhisek/phantomledger/internal/logger"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/sampler"
	"github.com/abhisek/phantomledger/internal/tier"
)

// Engine is the progression state machine for one player session. It is
// driven by a single event loop: Start, Submit, RevealHint, Tick and
// Continue must not be called concurrently.
//
// A resolved question never arms the next one. The engine waits in
// PhaseQuestionReady or PhaseTierAdvance until Continue shows the next
// question and starts its timer.
//
// Store writes are issued optimistically. The engine applies every change
// to a local mirror of the player's record and moves on without waiting for
// the store; a debounced resync re-sends absolute session totals.
type Engine struct {
	cfg       Config
	sampler   *sampler.Sampler
	log       *logger.Logger
	sessionID string

	phase Phase
	rec   *progress.PlayerProgress

	tier      tier.Tier
	questions []bank.Question
	index     int

	seq       int
	shownAt   time.Time
	deadline  time.Time
	hintShown bool

	// served holds ids resolved in earlier sessions or served in this one.
	served map[string]bool

	startedAt time.Time
	resolved  int
	correct   int
	hintsUsed int
	elapsed   time.Duration

	finalized  bool
	final      *FinalStats
	stopResync func() bool
	dirty      bool
}

// New creates an Engine. Start must be called before play.
func New(cfg Config) *Engine {
	cfg.setDefaults()
	sessionID := uuid.NewString()
	return &Engine{
		cfg:       cfg,
		sampler:   sampler.New(cfg.Catalog, cfg.Rand),
		log:       cfg.Logger.With("player_id", cfg.PlayerID, "session_id", sessionID, "mode", cfg.Judge.Mode()),
		sessionID: sessionID,
		phase:     PhaseInitializing,
		served:    make(map[string]bool),
	}
}

// Start loads the player's record, creating it on first contact, and
// serves the first question. A store failure leaves the engine in
// PhaseInitializing so Start can be retried.
func (e *Engine) Start(ctx context.Context) error {
	if e.phase != PhaseInitializing {
		return ErrAlreadyStarted
	}

	rec, err := e.cfg.Store.Get(ctx, e.cfg.PlayerID)
	if errors.Is(err, progress.ErrNotFound) {
		rec, err = e.cfg.Store.Create(ctx, e.cfg.PlayerID, progress.Defaults{
			Lives:   e.cfg.StartingLives,
			Network: e.cfg.Network,
		})
		if err == nil {
			e.log.Info("player created", "lives", rec.Lives)
		}
	}
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	e.rec = rec
	e.startedAt = e.cfg.Clock()
	for id := range rec.ResolvedSet() {
		e.served[id] = true
	}
	e.log.Info("session started",
		"lives", rec.Lives,
		"lifetime_questions", rec.LifetimeQuestionsAnswered,
		"session_score", rec.SessionScore)

	switch {
	case rec.Lives <= 0:
		e.exhaust()
		return nil
	case rec.Complete():
		e.complete()
		return nil
	}

	if !e.loadTier(tier.Select(rec.LifetimeQuestionsAnswered).Tier) {
		e.complete()
		return nil
	}
	e.serve()
	return nil
}

// Submit judges an answer to the question served as seq. Invalid
// submissions are rejected without any score or life effect. A submission
// that arrives after the deadline resolves as a timeout.
func (e *Engine) Submit(seq int, sub judge.Submission) (Outcome, error) {
	if e.phase != PhasePlaying {
		if e.waiting() && seq > 0 && seq <= e.seq {
			return Outcome{}, ErrStaleQuestion
		}
		return Outcome{}, ErrNotPlaying
	}
	if seq != e.seq {
		return Outcome{}, ErrStaleQuestion
	}

	q := e.questions[e.index]
	if err := e.cfg.Judge.Validate(q, sub); err != nil {
		return Outcome{}, err
	}

	now := e.cfg.Clock()
	remaining := e.deadline.Sub(now)
	if remaining <= 0 {
		return e.resolve(q, judge.Verdict{}, true, now), nil
	}

	sub.Remaining = remaining
	sub.Budget = e.cfg.QuestionTime
	sub.HintRevealed = e.hintShown
	return e.resolve(q, e.cfg.Judge.Evaluate(q, sub), false, now), nil
}

// Tick delivers a timer event for the question served as seq. It reports
// false when the tick is stale or the deadline has not passed; otherwise
// the question resolves as a wrong answer.
func (e *Engine) Tick(seq int) (Outcome, bool) {
	if e.phase != PhasePlaying || seq != e.seq {
		return Outcome{}, false
	}
	now := e.cfg.Clock()
	if now.Before(e.deadline) {
		return Outcome{}, false
	}
	return e.resolve(e.questions[e.index], judge.Verdict{}, true, now), true
}

// RevealHint shows the hint for the question served as seq. Revealing is
// one-way and only allowed before the question is resolved.
func (e *Engine) RevealHint(seq int) (string, error) {
	if e.phase != PhasePlaying || seq != e.seq {
		if seq > 0 && seq <= e.seq {
			return "", ErrHintAfterSubmit
		}
		return "", ErrNotPlaying
	}
	q := e.questions[e.index]
	if !q.HasHint() {
		return "", ErrNoHint
	}
	if !e.hintShown {
		e.hintShown = true
		e.hintsUsed++
		e.log.Debug("hint revealed", "question_id", q.ID)
	}
	return q.Hint, nil
}

// Continue shows the next question and starts its timer. It reports false
// unless the engine is waiting in PhaseQuestionReady or PhaseTierAdvance.
func (e *Engine) Continue() bool {
	if !e.waiting() {
		return false
	}
	e.serve()
	return true
}

// waiting reports whether a next question is picked but not yet shown.
func (e *Engine) waiting() bool {
	return e.phase == PhaseQuestionReady || e.phase == PhaseTierAdvance
}

// Close flushes pending totals and waits for queued store writes.
func (e *Engine) Close(ctx context.Context) error {
	if e.stopResync != nil {
		e.stopResync()
		e.stopResync = nil
	}
	if e.dirty && !e.finalized {
		e.issueSync()
	}
	if q, ok := e.cfg.Executor.(*Queue); ok {
		st := q.Stats()
		e.log.Info("session closed",
			"phase", e.phase.String(),
			"writes_issued", st.Issued,
			"writes_failed", st.Failed)
	}
	return e.cfg.Executor.Close(ctx)
}

// resolve applies a verdict and advances the machine.
func (e *Engine) resolve(q bank.Question, v judge.Verdict, timedOut bool, now time.Time) Outcome {
	e.phase = PhaseResolving

	spent := min(max(0, now.Sub(e.shownAt)), e.cfg.QuestionTime)
	e.elapsed += spent
	e.resolved++

	out := Outcome{
		Seq:        e.seq,
		QuestionID: q.ID,
		Correct:    v.Correct,
		TimedOut:   timedOut,
		Score:      v.Score,
		Answer:     canonicalAnswer(q),
		Elapsed:    spent,
		FromTier:   e.tier,
		ToTier:     e.tier,
	}

	if v.Correct {
		e.correct++
		d := progress.Delta{QuestionID: q.ID, Score: v.Score, Questions: 1}
		progress.ApplySessionProgress(e.rec, d, now)
		e.write("add_session_progress", func(ctx context.Context) error {
			return e.cfg.Store.AddSessionProgress(ctx, e.cfg.PlayerID, d)
		})
		e.log.Info("answer correct", "question_id", q.ID, "score", v.Score,
			"lifetime_questions", e.rec.LifetimeQuestionsAnswered)
		if e.rec.Complete() {
			e.complete()
			return e.finish(out)
		}
	} else {
		progress.ApplyLoseLife(e.rec, q.ID, now)
		e.write("lose_life", func(ctx context.Context) error {
			return e.cfg.Store.LoseLife(ctx, e.cfg.PlayerID, q.ID)
		})
		e.log.Info("answer wrong", "question_id", q.ID, "timed_out", timedOut, "lives", e.rec.Lives)
		if e.rec.Lives <= 0 {
			e.exhaust()
			return e.finish(out)
		}
	}

	e.scheduleResync()
	e.advance(&out)
	return e.finish(out)
}

func (e *Engine) finish(out Outcome) Outcome {
	out.Phase = e.phase
	out.LivesLeft = e.rec.Lives
	out.SessionScore = e.rec.SessionScore
	return out
}

// advance picks the next question, the next tier, or completion. The next
// question is not served until Continue.
func (e *Engine) advance(out *Outcome) {
	e.index++
	if e.index < len(e.questions) {
		e.phase = PhaseQuestionReady
		return
	}

	if next := e.tier.Next(); next.Valid() && e.loadTier(next) {
		e.phase = PhaseTierAdvance
		out.TierAdvanced = true
		out.ToTier = e.tier
		e.log.Info("tier advanced", "from", out.FromTier.String(), "to", e.tier.String())
		return
	}
	e.complete()
}

// loadTier samples a question list starting at t. Tiers whose pool is
// exhausted are skipped. It reports false when no tier has questions left.
func (e *Engine) loadTier(t tier.Tier) bool {
	n := tier.SampleSize(e.rec.LifetimeQuestionsAnswered)
	for ; t.Valid(); t = t.Next() {
		qs := e.sampler.Sample(t, n, e.served)
		if len(qs) > 0 {
			e.tier = t
			e.questions = qs
			e.index = 0
			return true
		}
		e.log.Warn("tier pool exhausted", "tier", t.String())
	}
	return false
}

func (e *Engine) serve() {
	q := e.questions[e.index]
	e.served[q.ID] = true
	e.seq++
	e.hintShown = false
	e.shownAt = e.cfg.Clock()
	e.deadline = e.shownAt.Add(e.cfg.QuestionTime)
	e.phase = PhasePlaying
}

// complete enters PhaseSessionComplete and finalizes at most once. Pending
// totals are re-sent ahead of the finalize so it folds the full score.
func (e *Engine) complete() {
	e.phase = PhaseSessionComplete
	if !e.finalized {
		e.finalized = true
		e.cancelResync()
		e.issueSync()
		progress.ApplyFinalize(e.rec, e.cfg.Clock())
		e.write("finalize_session", func(ctx context.Context) error {
			return e.cfg.Store.FinalizeSession(ctx, e.cfg.PlayerID)
		})
	}
	e.final = e.buildFinalStats()
	e.log.Info("session complete",
		"score", e.final.Score,
		"lifetime_questions", e.rec.LifetimeQuestionsAnswered,
		"games_completed", e.rec.GamesCompleted)
}

func (e *Engine) exhaust() {
	e.phase = PhaseLivesExhausted
	e.cancelResync()
	if e.dirty {
		e.issueSync()
	}
	e.final = e.buildFinalStats()
	e.log.Info("lives exhausted", "score", e.final.Score)
}

func (e *Engine) write(op string, fn func(ctx context.Context) error) {
	e.dirty = true
	e.cfg.Executor.Submit(op, fn)
}

func (e *Engine) totals() progress.Totals {
	return progress.Totals{
		SessionScore:      e.rec.SessionScore,
		SessionQuestions:  e.rec.SessionQuestionsAnswered,
		LifetimeQuestions: e.rec.LifetimeQuestionsAnswered,
	}
}

func (e *Engine) issueSync() {
	t := e.totals()
	e.dirty = false
	e.cfg.Executor.Submit("sync_session", func(ctx context.Context) error {
		return e.cfg.Store.SyncSession(ctx, e.cfg.PlayerID, t)
	})
}

// scheduleResync restarts the debounce timer. The totals are captured now
// so the timer goroutine never reads engine state.
func (e *Engine) scheduleResync() {
	e.cancelResync()
	t := e.totals()
	store, playerID, exec := e.cfg.Store, e.cfg.PlayerID, e.cfg.Executor
	e.stopResync = e.cfg.AfterFunc(e.cfg.ResyncDelay, func() {
		exec.Submit("sync_session", func(ctx context.Context) error {
			return store.SyncSession(ctx, playerID, t)
		})
	})
}

func (e *Engine) cancelResync() {
	if e.stopResync != nil {
		e.stopResync()
		e.stopResync = nil
	}
}

func canonicalAnswer(q bank.Question) string {
	if q.Kind() == bank.KindChoice && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options) {
		return q.Options[q.CorrectIndex]
	}
	return q.Answer
}
