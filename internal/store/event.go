package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter manages the global monotonic sequence number assigned to
// progress events. Sequences are allocated inside the writing transaction so
// an event and the mutation it records commit together.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context, tx *sql.Tx) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := tx.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

func (s *Store) appendEvent(ctx context.Context, tx *sql.Tx, e Event) error {
	seqNum, err := s.seq.Next(ctx, tx)
	if err != nil {
		return err
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("progress_events").
		Columns("sequence", "player_id", "kind", "question_id", "amount", "created_at").
		Values(seqNum, e.PlayerID, string(e.Kind), e.QuestionID, e.Amount, e.CreatedAt.UnixNano()).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save %s event: %w", e.Kind, err)
	}
	return nil
}

type eventRepo struct {
	s *Store
}

func (r *eventRepo) Recent(ctx context.Context, playerID string, opts QueryOpts) ([]Event, error) {
	t := entsql.Table("progress_events")
	sel := entsql.Dialect(dialect.SQLite).
		Select(t.C("sequence"), t.C("player_id"), t.C("kind"), t.C("question_id"), t.C("amount"), t.C("created_at")).
		From(t).
		Where(entsql.And(
			entsql.EQ(t.C("player_id"), playerID),
			entsql.GT(t.C("sequence"), opts.After),
		)).
		OrderBy(entsql.Desc(t.C("sequence")))
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			e       Event
			kind    string
			created int64
		)
		if err := rows.Scan(&e.Sequence, &e.PlayerID, &kind, &e.QuestionID, &e.Amount, &created); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Kind = EventKind(kind)
		e.CreatedAt = time.Unix(0, created).UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
