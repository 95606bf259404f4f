package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/phantomledger/internal/progress"
)

// ProgressRepo implements progress.Store on SQLite. Every mutation runs in
// its own transaction and records a progress event.
type ProgressRepo struct {
	s *Store
}

var _ progress.Store = (*ProgressRepo)(nil)

var progressColumns = []string{
	"player_id", "network", "lives",
	"lifetime_score", "lifetime_questions", "highest_score",
	"games_completed", "average_score",
	"session_score", "session_questions", "finalized", "finalized_score",
	"created_at", "updated_at",
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *ProgressRepo) Get(ctx context.Context, playerID string) (*progress.PlayerProgress, error) {
	return loadProgress(ctx, r.s.db, playerID)
}

// Create inserts a record with defaults. An existing record is returned
// unchanged.
func (r *ProgressRepo) Create(ctx context.Context, playerID string, d progress.Defaults) (*progress.PlayerProgress, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback()

	p := progress.New(playerID, d, r.s.now().UTC())
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("player_progress").
		Columns(progressColumns...).
		Values(progressValues(p)...).
		OnConflict(entsql.ConflictColumns("player_id"), entsql.DoNothing()).
		Query()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("insert progress: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		if err := r.s.appendEvent(ctx, tx, Event{PlayerID: playerID, Kind: EventCreated, Amount: p.Lives, CreatedAt: p.CreatedAt}); err != nil {
			return nil, err
		}
	}

	stored, err := loadProgress(ctx, tx, playerID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create: %w", err)
	}
	return stored, nil
}

func (r *ProgressRepo) AddSessionProgress(ctx context.Context, playerID string, d progress.Delta) error {
	return r.mutate(ctx, playerID, Event{Kind: EventProgress, QuestionID: d.QuestionID, Amount: d.Score},
		func(p *progress.PlayerProgress, now time.Time) bool {
			return progress.ApplySessionProgress(p, d, now)
		})
}

func (r *ProgressRepo) LoseLife(ctx context.Context, playerID, questionID string) error {
	return r.mutate(ctx, playerID, Event{Kind: EventLifeLost, QuestionID: questionID, Amount: 1},
		func(p *progress.PlayerProgress, now time.Time) bool {
			return progress.ApplyLoseLife(p, questionID, now)
		})
}

func (r *ProgressRepo) FinalizeSession(ctx context.Context, playerID string) error {
	return r.mutate(ctx, playerID, Event{Kind: EventFinalize},
		func(p *progress.PlayerProgress, now time.Time) bool {
			return progress.ApplyFinalize(p, now)
		})
}

func (r *ProgressRepo) SyncSession(ctx context.Context, playerID string, t progress.Totals) error {
	return r.mutate(ctx, playerID, Event{Kind: EventSync, Amount: t.SessionScore},
		func(p *progress.PlayerProgress, now time.Time) bool {
			return progress.ApplySync(p, t, now)
		})
}

func (r *ProgressRepo) GrantLives(ctx context.Context, playerID string, n int) error {
	return r.mutate(ctx, playerID, Event{Kind: EventGrant, Amount: n},
		func(p *progress.PlayerProgress, now time.Time) bool {
			return progress.ApplyGrant(p, n, now)
		})
}

// mutate loads the row, applies fn and writes the result back inside one
// transaction. Unchanged rows are not written and record no event.
func (r *ProgressRepo) mutate(ctx context.Context, playerID string, ev Event, fn func(*progress.PlayerProgress, time.Time) bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s: %w", ev.Kind, err)
	}
	defer tx.Rollback()

	p, err := loadProgress(ctx, tx, playerID)
	if err != nil {
		return fmt.Errorf("%s: %w", ev.Kind, err)
	}

	answeredBefore, missedBefore := len(p.Answered), len(p.Missed)
	now := r.s.now().UTC()
	if !fn(p, now) {
		return nil
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Update("player_progress").
		Set("lives", p.Lives).
		Set("lifetime_score", p.LifetimeScore).
		Set("lifetime_questions", p.LifetimeQuestionsAnswered).
		Set("highest_score", p.HighestScore).
		Set("games_completed", p.GamesCompleted).
		Set("average_score", p.AverageScore).
		Set("session_score", p.SessionScore).
		Set("session_questions", p.SessionQuestionsAnswered).
		Set("finalized", p.Finalized).
		Set("finalized_score", p.FinalizedScore).
		Set("updated_at", p.UpdatedAt.UnixNano()).
		Where(entsql.EQ("player_id", playerID)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update progress: %w", err)
	}

	if err := appendLedger(ctx, tx, "answered_questions", playerID, p.Answered, answeredBefore); err != nil {
		return err
	}
	if err := appendLedger(ctx, tx, "missed_questions", playerID, p.Missed, missedBefore); err != nil {
		return err
	}

	ev.PlayerID = playerID
	ev.CreatedAt = now
	if err := r.s.appendEvent(ctx, tx, ev); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", ev.Kind, err)
	}
	return nil
}

func loadProgress(ctx context.Context, q queryer, playerID string) (*progress.PlayerProgress, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(progressColumns...).
		From(entsql.Table("player_progress")).
		Where(entsql.EQ("player_id", playerID)).
		Query()

	var (
		p                progress.PlayerProgress
		created, updated int64
	)
	err := q.QueryRowContext(ctx, query, args...).Scan(
		&p.PlayerID, &p.Network, &p.Lives,
		&p.LifetimeScore, &p.LifetimeQuestionsAnswered, &p.HighestScore,
		&p.GamesCompleted, &p.AverageScore,
		&p.SessionScore, &p.SessionQuestionsAnswered, &p.Finalized, &p.FinalizedScore,
		&created, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, progress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	p.CreatedAt = time.Unix(0, created).UTC()
	p.UpdatedAt = time.Unix(0, updated).UTC()

	if p.Answered, err = loadLedger(ctx, q, "answered_questions", playerID); err != nil {
		return nil, err
	}
	if p.Missed, err = loadLedger(ctx, q, "missed_questions", playerID); err != nil {
		return nil, err
	}
	return &p, nil
}

// appendLedger inserts ids[from:] into a question ledger table.
func appendLedger(ctx context.Context, tx *sql.Tx, table, playerID string, ids []string, from int) error {
	for i := from; i < len(ids); i++ {
		query, args := entsql.Dialect(dialect.SQLite).
			Insert(table).
			Columns("player_id", "question_id", "position").
			Values(playerID, ids[i], i).
			OnConflict(entsql.ConflictColumns("player_id", "question_id"), entsql.DoNothing()).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("record %s: %w", table, err)
		}
	}
	return nil
}

// loadLedger reads a question ledger table in insertion order.
func loadLedger(ctx context.Context, q queryer, table, playerID string) ([]string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("question_id").
		From(entsql.Table(table)).
		Where(entsql.EQ("player_id", playerID)).
		OrderBy("position").
		Query()
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return ids, nil
}

func progressValues(p *progress.PlayerProgress) []any {
	return []any{
		p.PlayerID, p.Network, p.Lives,
		p.LifetimeScore, p.LifetimeQuestionsAnswered, p.HighestScore,
		p.GamesCompleted, p.AverageScore,
		p.SessionScore, p.SessionQuestionsAnswered, p.Finalized, p.FinalizedScore,
		p.CreatedAt.UnixNano(), p.UpdatedAt.UnixNano(),
	}
}
