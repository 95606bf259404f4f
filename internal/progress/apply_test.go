package progress

import (
	"testing"
	"time"

	"github.com/abhisek/phantomledger/internal/tier"
)

var now = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func fresh() *PlayerProgress {
	return New("0xabc", Defaults{}, now)
}

func TestNewDefaults(t *testing.T) {
	p := fresh()
	if p.Lives != DefaultLives {
		t.Errorf("Lives = %d, want %d", p.Lives, DefaultLives)
	}
	if p.LifetimeQuestionsAnswered != 0 || p.SessionScore != 0 || p.GamesCompleted != 0 {
		t.Errorf("counters not zeroed: %+v", p)
	}
	if p.Remaining() != tier.TotalQuestions {
		t.Errorf("Remaining = %d", p.Remaining())
	}

	p = New("0xabc", Defaults{Lives: 3, Network: "testnet"}, now)
	if p.Lives != 3 || p.Network != "testnet" {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestApplySessionProgress(t *testing.T) {
	p := fresh()
	if !ApplySessionProgress(p, Delta{QuestionID: "e1", Score: 18, Questions: 1}, now) {
		t.Fatal("expected change")
	}
	if p.SessionScore != 18 || p.SessionQuestionsAnswered != 1 || p.LifetimeQuestionsAnswered != 1 {
		t.Errorf("unexpected counters: %+v", p)
	}
	if p.HighestScore != 18 {
		t.Errorf("HighestScore = %d, want 18", p.HighestScore)
	}

	// Replaying the same question is ignored.
	if ApplySessionProgress(p, Delta{QuestionID: "e1", Score: 18, Questions: 1}, now) {
		t.Error("duplicate delta applied")
	}
	if p.SessionScore != 18 || p.LifetimeQuestionsAnswered != 1 {
		t.Errorf("duplicate changed counters: %+v", p)
	}

	// Anonymous deltas always apply.
	ApplySessionProgress(p, Delta{Score: 2, Questions: 1}, now)
	if p.SessionScore != 20 || p.LifetimeQuestionsAnswered != 2 {
		t.Errorf("anonymous delta not applied: %+v", p)
	}
}

func TestApplySessionProgressCapsLifetime(t *testing.T) {
	p := fresh()
	p.LifetimeQuestionsAnswered = tier.TotalQuestions - 1
	ApplySessionProgress(p, Delta{Score: 10, Questions: 3}, now)
	if p.LifetimeQuestionsAnswered != tier.TotalQuestions {
		t.Errorf("LifetimeQuestionsAnswered = %d, want %d", p.LifetimeQuestionsAnswered, tier.TotalQuestions)
	}
	ApplySessionProgress(p, Delta{Score: 10, Questions: 1}, now)
	if p.LifetimeQuestionsAnswered != tier.TotalQuestions {
		t.Errorf("LifetimeQuestionsAnswered exceeded cap: %d", p.LifetimeQuestionsAnswered)
	}
}

func TestApplySessionProgressIgnoresNegative(t *testing.T) {
	p := fresh()
	ApplySessionProgress(p, Delta{Score: -5, Questions: -1}, now)
	if p.SessionScore != 0 || p.LifetimeQuestionsAnswered != 0 {
		t.Errorf("negative delta moved counters: %+v", p)
	}
}

func TestApplyLoseLifeFloorsAtZero(t *testing.T) {
	p := fresh()
	p.Lives = 1
	if !ApplyLoseLife(p, "", now) || p.Lives != 0 {
		t.Fatalf("Lives = %d, want 0", p.Lives)
	}
	if ApplyLoseLife(p, "", now) {
		t.Error("losing a life at zero reported a change")
	}
	if p.Lives != 0 {
		t.Errorf("Lives = %d, want 0", p.Lives)
	}
}

func TestApplyLoseLifeRecordsMiss(t *testing.T) {
	p := fresh()
	ApplySessionProgress(p, Delta{QuestionID: "credited", Score: 20, Questions: 1}, now)

	tests := []struct {
		name       string
		questionID string
		wantMissed []string
	}{
		{"new miss", "m1", []string{"m1"}},
		{"repeat miss", "m1", []string{"m1"}},
		{"credited question", "credited", []string{"m1"}},
		{"second miss", "m2", []string{"m1", "m2"}},
	}
	for _, tt := range tests {
		ApplyLoseLife(p, tt.questionID, now)
		if len(p.Missed) != len(tt.wantMissed) {
			t.Fatalf("%s: Missed = %v, want %v", tt.name, p.Missed, tt.wantMissed)
		}
		for i, id := range tt.wantMissed {
			if p.Missed[i] != id {
				t.Errorf("%s: Missed = %v, want %v", tt.name, p.Missed, tt.wantMissed)
			}
		}
	}
	if p.Lives != DefaultLives-len(tests) {
		t.Errorf("Lives = %d, want %d", p.Lives, DefaultLives-len(tests))
	}

	// Out of lives, a miss is still recorded.
	p.Lives = 0
	if !ApplyLoseLife(p, "m3", now) || !p.HasMissed("m3") {
		t.Error("miss at zero lives not recorded")
	}
	set := p.ResolvedSet()
	for _, id := range []string{"credited", "m1", "m2", "m3"} {
		if !set[id] {
			t.Errorf("ResolvedSet missing %q", id)
		}
	}
}

func TestApplyFinalize(t *testing.T) {
	p := fresh()
	ApplySessionProgress(p, Delta{QuestionID: "a", Score: 40, Questions: 1}, now)
	ApplySessionProgress(p, Delta{QuestionID: "b", Score: 15, Questions: 1}, now)

	if !ApplyFinalize(p, now) {
		t.Fatal("expected finalize to apply")
	}
	if p.LifetimeScore != 55 || p.GamesCompleted != 1 || p.AverageScore != 55 {
		t.Errorf("unexpected totals: %+v", p)
	}
	if p.SessionScore != 55 || p.SessionQuestionsAnswered != 2 {
		t.Errorf("session counters must be kept: %+v", p)
	}

	// A retried finalize does not double count.
	if ApplyFinalize(p, now) {
		t.Error("second finalize applied")
	}
	if p.LifetimeScore != 55 || p.GamesCompleted != 1 {
		t.Errorf("retry changed totals: %+v", p)
	}
}

func TestApplyFinalizeAverageRounds(t *testing.T) {
	p := fresh()
	p.LifetimeScore = 10
	p.GamesCompleted = 1
	p.SessionScore = 15
	ApplyFinalize(p, now)
	// (10 + 15) / 2 = 12.5
	if p.AverageScore != 13 {
		t.Errorf("AverageScore = %d, want 13", p.AverageScore)
	}
}

func TestApplySyncMonotonic(t *testing.T) {
	p := fresh()
	ApplySessionProgress(p, Delta{QuestionID: "a", Score: 18, Questions: 1}, now)

	// Stale totals never move counters backwards.
	if ApplySync(p, Totals{SessionScore: 5, SessionQuestions: 0, LifetimeQuestions: 0}, now) {
		t.Error("stale totals reported a change")
	}
	if p.SessionScore != 18 || p.LifetimeQuestionsAnswered != 1 {
		t.Errorf("stale sync regressed counters: %+v", p)
	}

	// Newer totals repair a lost write.
	if !ApplySync(p, Totals{SessionScore: 35, SessionQuestions: 2, LifetimeQuestions: 2}, now) {
		t.Error("expected change")
	}
	if p.SessionScore != 35 || p.SessionQuestionsAnswered != 2 || p.LifetimeQuestionsAnswered != 2 || p.HighestScore != 35 {
		t.Errorf("sync not applied: %+v", p)
	}

	ApplySync(p, Totals{LifetimeQuestions: 99}, now)
	if p.LifetimeQuestionsAnswered != tier.TotalQuestions {
		t.Errorf("sync exceeded cap: %d", p.LifetimeQuestionsAnswered)
	}
}

func TestApplyGrant(t *testing.T) {
	p := fresh()
	p.Lives = 0
	if !ApplyGrant(p, 2, now) || p.Lives != 2 {
		t.Errorf("Lives = %d, want 2", p.Lives)
	}
	if ApplyGrant(p, 0, now) || ApplyGrant(p, -3, now) {
		t.Error("non-positive grant applied")
	}
	if p.Lives != 2 {
		t.Errorf("Lives = %d, want 2", p.Lives)
	}
}

func TestApplyFinalizeAfterResume(t *testing.T) {
	p := fresh()
	ApplySessionProgress(p, Delta{QuestionID: "a", Score: 20, Questions: 1}, now)
	ApplyFinalize(p, now)

	// A resumed arc adds more score and finalizes again.
	ApplySessionProgress(p, Delta{QuestionID: "b", Score: 10, Questions: 1}, now)
	if p.Finalized {
		t.Fatal("progress should clear the finalized flag")
	}
	ApplyFinalize(p, now)

	if p.LifetimeScore != 30 {
		t.Errorf("LifetimeScore = %d, want 30", p.LifetimeScore)
	}
	if p.GamesCompleted != 2 {
		t.Errorf("GamesCompleted = %d, want 2", p.GamesCompleted)
	}
	if p.AverageScore != 15 {
		t.Errorf("AverageScore = %d, want 15", p.AverageScore)
	}
}
