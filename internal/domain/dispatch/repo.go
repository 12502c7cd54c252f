package dispatch

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkuzn/depot-stock/internal/domain/audit"
	"github.com/vkuzn/depot-stock/internal/domain/errs"
	"github.com/vkuzn/depot-stock/internal/infra/metrics"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func validateInput(in Input) error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.Validationf("name must not be empty")
	}
	if strings.TrimSpace(in.Destination) == "" {
		return errs.Validationf("destination must not be empty")
	}
	if strings.TrimSpace(in.Recipient) == "" {
		return errs.Validationf("recipient must not be empty")
	}
	if math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
		return errs.Validationf("quantity must be a number")
	}
	if in.Quantity <= 0 {
		return errs.Validationf("quantity must be > 0, got %v", in.Quantity)
	}
	return nil
}

func (r *Repo) Record(ctx context.Context, in Input, actor string) (*Dispatch, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var d Dispatch
	err = tx.QueryRow(ctx, `
		INSERT INTO dispatches (name, quantity, destination, recipient, actor)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, name, quantity, destination, recipient, actor
	`, in.Name, in.Quantity, in.Destination, in.Recipient, actor).
		Scan(&d.ID, &d.CreatedAt, &d.Name, &d.Quantity, &d.Destination, &d.Recipient, &d.Actor)
	if err != nil {
		return nil, errs.Storage(err)
	}

	desc := fmt.Sprintf("%s - %v units to %s", d.Name, d.Quantity, d.Destination)
	if err := audit.InsertTx(ctx, tx, audit.ActionDispatch, desc, actor); err != nil {
		return nil, errs.Storage(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Storage(err)
	}

	metrics.MutationsTotal.WithLabelValues("dispatch", "dispatch").Inc()
	return &d, nil
}

func (r *Repo) List(ctx context.Context) ([]Dispatch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, created_at, name, quantity, destination, recipient, actor
		FROM dispatches
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer rows.Close()

	var out []Dispatch
	for rows.Next() {
		var d Dispatch
		if err := rows.Scan(&d.ID, &d.CreatedAt, &d.Name, &d.Quantity, &d.Destination, &d.Recipient, &d.Actor); err != nil {
			return nil, errs.Storage(err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(err)
	}
	return out, nil
}
