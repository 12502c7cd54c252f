package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vkuzn/depot-stock/internal/domain/errs"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// List returns the active values of a list in alphabetical order.
func (r *Repo) List(ctx context.Context, listName string) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT value FROM ref_items
		WHERE list_name = $1 AND active
		ORDER BY value
	`, listName)
	if err != nil {
		return nil, errs.Storage(err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, errs.Storage(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(err)
	}
	return out, nil
}

func (r *Repo) Add(ctx context.Context, listName, value string) (*RefItem, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errs.Validationf("value must not be empty")
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO ref_items (list_name, value, active)
		VALUES ($1,$2,TRUE)
		ON CONFLICT (list_name, value) DO UPDATE SET active = TRUE
		RETURNING id, list_name, value, active, created_at
	`, listName, value)

	var it RefItem
	if err := row.Scan(&it.ID, &it.ListName, &it.Value, &it.Active, &it.CreatedAt); err != nil {
		return nil, errs.Storage(err)
	}
	return &it, nil
}

func (r *Repo) Deactivate(ctx context.Context, listName, value string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE ref_items SET active = FALSE
		WHERE list_name = $1 AND value = $2
	`, listName, value)
	if err != nil {
		return errs.Storage(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s in list %s", errs.ErrNotFound, value, listName)
	}
	return nil
}
