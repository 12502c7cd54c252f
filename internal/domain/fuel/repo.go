package fuel

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkuzn/depot-stock/internal/domain/audit"
	"github.com/vkuzn/depot-stock/internal/domain/errs"
)

// tankID is the singleton fuel_tank row, seeded by migration.
const tankID = 1

// Repo is the Postgres Store. The balance check and decrement are a single
// conditional UPDATE, so two concurrent draws serialize on the row and can
// never jointly drive it negative.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

var _ Store = (*Repo)(nil)

func (r *Repo) Balance(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT total_liters FROM fuel_tank WHERE id = $1
	`, tankID).Scan(&total)
	if err != nil {
		return 0, errs.Storage(err)
	}
	return total, nil
}

func (r *Repo) Consume(ctx context.Context, machine string, shift Shift, amount float64, actor string) (float64, bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, false, errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var newBalance float64
	err = tx.QueryRow(ctx, `
		UPDATE fuel_tank
		SET total_liters = total_liters - $2, updated_at = now()
		WHERE id = $1 AND total_liters >= $2
		RETURNING total_liters
	`, tankID, amount).Scan(&newBalance)
	if err != nil {
		// no row updated means the balance does not cover the draw
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, errs.Storage(err)
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO fuel_events (kind, amount, machine, shift, actor)
		VALUES ($1,$2,$3,$4,$5)
	`, string(KindConsumption), amount, machine, string(shift), actor); err != nil {
		return 0, false, errs.Storage(err)
	}

	desc := fmt.Sprintf("%s - %vL (new balance: %vL)", machine, amount, newBalance)
	if err := audit.InsertTx(ctx, tx, audit.ActionConsumption, desc, actor); err != nil {
		return 0, false, errs.Storage(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, errs.Storage(err)
	}
	return newBalance, true, nil
}

func (r *Repo) Override(ctx context.Context, newTotal float64, actor string) (float64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// lock the row so the delta is computed against the balance we replace
	var prev float64
	if err := tx.QueryRow(ctx, `
		SELECT total_liters FROM fuel_tank WHERE id = $1 FOR UPDATE
	`, tankID).Scan(&prev); err != nil {
		return 0, errs.Storage(err)
	}

	if _, err := tx.Exec(ctx, `
		UPDATE fuel_tank SET total_liters = $2, updated_at = now() WHERE id = $1
	`, tankID, newTotal); err != nil {
		return 0, errs.Storage(err)
	}

	delta := newTotal - prev
	if _, err := tx.Exec(ctx, `
		INSERT INTO fuel_events (kind, amount, machine, shift, actor)
		VALUES ($1,$2,'','',$3)
	`, string(KindManualAdjustment), delta, actor); err != nil {
		return 0, errs.Storage(err)
	}

	desc := fmt.Sprintf("balance set to %vL (delta %+vL)", newTotal, delta)
	if err := audit.InsertTx(ctx, tx, audit.ActionStockAdjustment, desc, actor); err != nil {
		return 0, errs.Storage(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Storage(err)
	}
	return delta, nil
}

func (r *Repo) History(ctx context.Context) ([]Event, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, created_at, kind, amount, machine, shift, actor
		FROM fuel_events
	`)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var (
			e           Event
			kind, shift string
		)
		if err := rows.Scan(&e.ID, &e.CreatedAt, &kind, &e.Amount, &e.Machine, &shift, &e.Actor); err != nil {
			return nil, errs.Storage(err)
		}
		e.Kind = EventKind(kind)
		e.Shift = Shift(shift)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(err)
	}
	return out, nil
}
