package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkuzn/depot-stock/internal/domain/audit"
	"github.com/vkuzn/depot-stock/internal/domain/errs"
	"github.com/vkuzn/depot-stock/internal/infra/metrics"
)

// Repo is the record store for one category. Every successful mutation
// inserts exactly one audit entry in the same transaction, so a failed
// append rolls the mutation back with it.
type Repo struct {
	pool     *pgxpool.Pool
	category Category
}

func NewRepo(pool *pgxpool.Pool, category Category) *Repo {
	return &Repo{pool: pool, category: category}
}

func (r *Repo) Category() Category { return r.category }

func (r *Repo) Create(ctx context.Context, in Input, actor string) (*Item, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO inventory_items (category, name, quantity, unit, location, alert_threshold, updated_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, category, name, quantity, unit, location, alert_threshold, updated_at, updated_by
	`, string(r.category), in.Name, in.Quantity, in.Unit, in.Location, in.AlertThreshold, actor)

	it, err := scanItem(row)
	if err != nil {
		return nil, errs.Storage(err)
	}

	desc := fmt.Sprintf("%s added: %s - %v%s", r.category.Label(), it.Name, it.Quantity, it.Unit)
	if err := audit.InsertTx(ctx, tx, audit.ActionAdd, desc, actor); err != nil {
		return nil, errs.Storage(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Storage(err)
	}

	metrics.MutationsTotal.WithLabelValues(string(r.category), "add").Inc()
	return it, nil
}

// Update replaces the caller-supplied fields and re-stamps the
// modification metadata. Last writer wins on concurrent edits.
func (r *Repo) Update(ctx context.Context, id int64, in Input, actor string) (*Item, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		UPDATE inventory_items
		SET name=$3, quantity=$4, unit=$5, location=$6, alert_threshold=$7, updated_at=now(), updated_by=$8
		WHERE id=$1 AND category=$2
		RETURNING id, category, name, quantity, unit, location, alert_threshold, updated_at, updated_by
	`, id, string(r.category), in.Name, in.Quantity, in.Unit, in.Location, in.AlertThreshold, actor)

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s id %d", errs.ErrNotFound, r.category, id)
		}
		return nil, errs.Storage(err)
	}

	desc := fmt.Sprintf("%s modified: %s", r.category.Label(), it.Name)
	if err := audit.InsertTx(ctx, tx, audit.ActionModify, desc, actor); err != nil {
		return nil, errs.Storage(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Storage(err)
	}

	metrics.MutationsTotal.WithLabelValues(string(r.category), "modify").Inc()
	return it, nil
}

func (r *Repo) Delete(ctx context.Context, id int64, actor string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errs.Storage(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var name string
	err = tx.QueryRow(ctx, `
		DELETE FROM inventory_items
		WHERE id=$1 AND category=$2
		RETURNING name
	`, id, string(r.category)).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: %s id %d", errs.ErrNotFound, r.category, id)
		}
		return errs.Storage(err)
	}

	desc := fmt.Sprintf("%s deleted: %s", r.category.Label(), name)
	if err := audit.InsertTx(ctx, tx, audit.ActionDelete, desc, actor); err != nil {
		return errs.Storage(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Storage(err)
	}

	metrics.MutationsTotal.WithLabelValues(string(r.category), "delete").Inc()
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, category, name, quantity, unit, location, alert_threshold, updated_at, updated_by
		FROM inventory_items
		WHERE id=$1 AND category=$2
	`, id, string(r.category))

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s id %d", errs.ErrNotFound, r.category, id)
		}
		return nil, errs.Storage(err)
	}
	return it, nil
}

// List returns a snapshot of the category in insertion order.
func (r *Repo) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, category, name, quantity, unit, location, alert_threshold, updated_at, updated_by
		FROM inventory_items
		WHERE category=$1
		ORDER BY id
	`, string(r.category))
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, errs.Storage(err)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(err)
	}
	return out, nil
}

func scanItem(row pgx.Row) (*Item, error) {
	var (
		it  Item
		cat string
	)
	if err := row.Scan(&it.ID, &cat, &it.Name, &it.Quantity, &it.Unit, &it.Location,
		&it.AlertThreshold, &it.UpdatedAt, &it.UpdatedBy); err != nil {
		return nil, err
	}
	it.Category = Category(cat)
	return &it, nil
}
