package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkuzn/depot-stock/internal/domain/errs"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// InsertTx appends an entry within the caller's transaction, so the entry
// commits or rolls back together with the mutation it describes.
func InsertTx(ctx context.Context, tx pgx.Tx, action Action, description, actor string) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO audit_log (action, description, actor)
		VALUES ($1,$2,$3)
	`, string(action), description, actor)
	return err
}

func (r *Repo) List(ctx context.Context, f Filter) ([]Entry, error) {
	q := `
		SELECT id, created_at, action, description, actor
		FROM audit_log
	`
	var (
		args  []any
		conds []string
	)
	if f.Action != "" {
		args = append(args, string(f.Action))
		conds = append(conds, fmt.Sprintf("action = $%d", len(args)))
	}
	if f.Actor != "" {
		args = append(args, f.Actor)
		conds = append(conds, fmt.Sprintf("actor = $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var action string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &action, &e.Description, &e.Actor); err != nil {
			return nil, errs.Storage(err)
		}
		e.Action = Action(action)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(err)
	}
	return out, nil
}

func (r *Repo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n); err != nil {
		return 0, errs.Storage(err)
	}
	return n, nil
}
