package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/erazemk/katalog/internal/model"
)

const itemColumns = `id, owner, editor, title, description, price, quantity`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(&item.ID, &item.Owner, &item.Editor, &item.Title, &item.Description, &item.Price, &item.Quantity)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateItem inserts a new item. The editor starts out equal to the owner.
func (s *Store) CreateItem(ctx context.Context, in model.NewItem) (*model.Item, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO items (owner, editor, title, description, price, quantity)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		*in.Owner, *in.Owner, *in.Title, *in.Description, *in.Price, *in.Quantity,
	)
	if err != nil {
		return nil, storeErr("creating item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, storeErr("getting item id", err)
	}

	return &model.Item{
		ID:          id,
		Owner:       *in.Owner,
		Editor:      *in.Owner,
		Title:       *in.Title,
		Description: *in.Description,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
	}, nil
}

// GetItem returns an item by ID.
func (s *Store) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	return getItem(ctx, s.db, id)
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getItem(ctx context.Context, q queryer, id int64) (*model.Item, error) {
	item, err := scanItem(q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeErr("getting item", err)
	}
	return item, nil
}

// ListItems returns every item ordered by id. An empty store yields an
// empty slice.
func (s *Store) ListItems(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY id`)
	if err != nil {
		return nil, storeErr("listing items", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storeErr("scanning item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("listing items", err)
	}
	return items, nil
}

// UpdateItem applies the fields present in patch and returns the refreshed
// item. The write and the read-back share one transaction, so an item
// deleted concurrently is reported as ErrNotFound rather than half-updated.
func (s *Store) UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	var item *model.Item
	err := s.withTx(ctx, "updating item", func(tx *sql.Tx) error {
		if !patch.IsEmpty() {
			cols, vals := patch.Columns()
			sets := make([]string, len(cols))
			for i, c := range cols {
				sets[i] = c + " = ?"
			}

			result, err := tx.ExecContext(ctx,
				`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE id = ?`,
				append(vals, id)...,
			)
			if err != nil {
				return storeErr("updating item", err)
			}
			n, err := result.RowsAffected()
			if err != nil {
				return storeErr("updating item", err)
			}
			if n == 0 {
				return ErrNotFound
			}
		}

		var err error
		item, err = getItem(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem permanently removes an item.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return storeErr("deleting item", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return storeErr("deleting item", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
