package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/phantomledger/internal/bank"
	"github.com/abhisek/phantomledger/internal/judge"
	"github.com/abhisek/phantomledger/internal/progress"
	"github.com/abhisek/phantomledger/internal/tier"
)

const player = "0x1f2e3d"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// inlineExec runs writes synchronously in submission order.
type inlineExec struct {
	ops  []string
	errs []error
}

func (x *inlineExec) Submit(op string, fn func(ctx context.Context) error) {
	x.ops = append(x.ops, op)
	if err := fn(context.Background()); err != nil {
		x.errs = append(x.errs, err)
	}
}

func (x *inlineExec) Close(context.Context) error { return nil }

func (x *inlineExec) count(op string) int {
	n := 0
	for _, o := range x.ops {
		if o == op {
			n++
		}
	}
	return n
}

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

type fakeTimers struct {
	timers []*fakeTimer
}

func (ft *fakeTimers) AfterFunc(_ time.Duration, f func()) func() bool {
	t := &fakeTimer{f: f}
	ft.timers = append(ft.timers, t)
	return func() bool {
		active := !t.stopped && !t.fired
		t.stopped = true
		return active
	}
}

func (ft *fakeTimers) active() int {
	n := 0
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (ft *fakeTimers) fire() {
	for _, t := range ft.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

var errUnavailable = errors.New("store unavailable")

// faultyStore wraps a MemoryStore with failure injection and call counts.
type faultyStore struct {
	*progress.MemoryStore

	mu       sync.Mutex
	failGet  int
	failAdd  int
	failLose int
	calls    map[string]int
}

func newFaultyStore() *faultyStore {
	return &faultyStore{MemoryStore: progress.NewMemoryStore(), calls: make(map[string]int)}
}

func (s *faultyStore) hit(op string, fail *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++
	if *fail > 0 {
		*fail--
		return fmt.Errorf("%s: %w", op, errUnavailable)
	}
	return nil
}

func (s *faultyStore) count(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

func (s *faultyStore) Get(ctx context.Context, id string) (*progress.PlayerProgress, error) {
	if err := s.hit("get", &s.failGet); err != nil {
		return nil, err
	}
	return s.MemoryStore.Get(ctx, id)
}

func (s *faultyStore) AddSessionProgress(ctx context.Context, id string, d progress.Delta) error {
	if err := s.hit("add", &s.failAdd); err != nil {
		return err
	}
	return s.MemoryStore.AddSessionProgress(ctx, id, d)
}

func (s *faultyStore) LoseLife(ctx context.Context, id, questionID string) error {
	if err := s.hit("lose", &s.failLose); err != nil {
		return err
	}
	return s.MemoryStore.LoseLife(ctx, id, questionID)
}

func (s *faultyStore) FinalizeSession(ctx context.Context, id string) error {
	none := 0
	s.hit("finalize", &none)
	return s.MemoryStore.FinalizeSession(ctx, id)
}

// testCatalog holds five text questions per tier. Every answer is the
// question id; odd-numbered questions carry a hint.
func testCatalog(t *testing.T) *bank.Catalog {
	t.Helper()
	var qs []bank.Question
	for _, tr := range tier.All {
		for i := 1; i <= tier.QuestionsPerTier; i++ {
			id := fmt.Sprintf("%s-%d", tr, i)
			q := bank.Question{ID: id, Tier: tr, Prompt: "prompt " + id, Answer: id, MaxTime: 30}
			if i%2 == 1 {
				q.Hint = "hint " + id
			}
			qs = append(qs, q)
		}
	}
	c, err := bank.NewCatalog(qs)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

type harness struct {
	engine *Engine
	store  *faultyStore
	exec   *inlineExec
	clock  *fakeClock
	timers *fakeTimers
}

func newHarness(t *testing.T, seed *progress.PlayerProgress, opts ...func(*Config)) *harness {
	t.Helper()
	h := &harness{
		store:  newFaultyStore(),
		exec:   &inlineExec{},
		clock:  &fakeClock{now: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)},
		timers: &fakeTimers{},
	}
	if seed != nil {
		h.store.Put(seed)
	}
	cfg := Config{
		PlayerID:  player,
		Store:     h.store,
		Catalog:   testCatalog(t),
		Judge:     judge.FreeText{},
		Rand:      rand.New(rand.NewPCG(1, 2)),
		Executor:  h.exec,
		Clock:     h.clock.Now,
		AfterFunc: h.timers.AfterFunc,
	}
	for _, o := range opts {
		o(&cfg)
	}
	h.engine = New(cfg)
	return h
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	if err := h.engine.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
}

// turn shows the next question if one is waiting and returns it.
func (h *harness) turn(t *testing.T) Turn {
	t.Helper()
	if h.engine.Phase() == PhaseQuestionReady {
		h.engine.Continue()
	}
	turn, ok := h.engine.Current()
	if !ok {
		t.Fatalf("no question in play (phase %s)", h.engine.Phase())
	}
	return turn
}

// answer submits the correct answer when correct is set, a wrong one
// otherwise. The next question within the tier is shown right away.
func (h *harness) answer(t *testing.T, correct bool) Outcome {
	t.Helper()
	turn := h.turn(t)
	text := "definitely wrong"
	if correct {
		text = turn.Question.Answer
	}
	out, err := h.engine.Submit(turn.Seq, judge.TextAnswer(text))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Phase == PhaseQuestionReady {
		h.engine.Continue()
	}
	return out
}

func (h *harness) stored(t *testing.T) *progress.PlayerProgress {
	t.Helper()
	p, err := h.store.MemoryStore.Get(context.Background(), player)
	if err != nil {
		t.Fatalf("get stored progress: %v", err)
	}
	return p
}

func seeded(lifetime, lives int, answered ...string) *progress.PlayerProgress {
	p := progress.New(player, progress.Defaults{Lives: lives}, time.Now())
	p.Lives = lives
	p.LifetimeQuestionsAnswered = lifetime
	p.SessionQuestionsAnswered = lifetime
	p.SessionScore = lifetime * 10
	p.HighestScore = p.SessionScore
	p.Answered = answered
	return p
}
