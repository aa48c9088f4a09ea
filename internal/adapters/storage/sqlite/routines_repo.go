package sqlite

import (
	"context"
	"database/sql"

	"pet-care-tracker/internal/domain/routines"
)

type RoutinesRepo struct {
	db *sql.DB
}

func NewRoutinesRepo(db *sql.DB) *RoutinesRepo {
	return &RoutinesRepo{db: db}
}

func (r *RoutinesRepo) CreateTemplate(ctx context.Context, t routines.Template) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO routine_templates (id, pet_id, period, task, is_active, created_at)
		VALUES (?,?,?,?,?,?)
	`,
		t.ID,
		t.PetID,
		string(t.Period),
		t.Task,
		t.IsActive,
		t.CreatedAt,
	)
	return err
}

func (r *RoutinesRepo) GetTemplate(ctx context.Context, id string) (routines.Template, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, period, task, is_active, created_at
		FROM routine_templates
		WHERE id = ?
	`, id)

	t, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return routines.Template{}, routines.ErrTemplateNotFound
	}
	return t, err
}

func (r *RoutinesRepo) ListTemplates(ctx context.Context, petID string, activeOnly bool) ([]routines.Template, error) {
	q := `
		SELECT id, pet_id, period, task, is_active, created_at
		FROM routine_templates
		WHERE pet_id = ?
	`
	if activeOnly {
		q += ` AND is_active = 1`
	}
	q += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]routines.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *RoutinesRepo) UpdateTemplate(ctx context.Context, t routines.Template) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE routine_templates
		SET period = ?, task = ?, is_active = ?
		WHERE id = ?
	`,
		string(t.Period),
		t.Task,
		t.IsActive,
		t.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return routines.ErrTemplateNotFound
	}
	return nil
}

func (r *RoutinesRepo) DeleteTemplate(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routine_templates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return routines.ErrTemplateNotFound
	}
	return nil
}

func (r *RoutinesRepo) CreateItem(ctx context.Context, it routines.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO routine_items (
			id, pet_id, template_id, period, task,
			completed, completed_at, date, created_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		it.ID,
		it.PetID,
		it.TemplateID,
		string(it.Period),
		it.Task,
		it.Completed,
		toNullTime(it.CompletedAt),
		it.Date,
		it.CreatedAt,
	)
	return err
}

func (r *RoutinesRepo) GetItem(ctx context.Context, id string) (routines.Item, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, template_id, period, task, completed, completed_at, date, created_at
		FROM routine_items
		WHERE id = ?
	`, id)

	it, err := scanItem(row)
	if err == sql.ErrNoRows {
		return routines.Item{}, routines.ErrItemNotFound
	}
	return it, err
}

func (r *RoutinesRepo) ListItems(ctx context.Context, petID string, filter routines.ItemFilter) ([]routines.Item, error) {
	q := `
		SELECT id, pet_id, template_id, period, task, completed, completed_at, date, created_at
		FROM routine_items
		WHERE pet_id = ?
	`
	args := []any{petID}
	if filter.Date != "" {
		q += ` AND date = ?`
		args = append(args, filter.Date)
	}
	if filter.SortByPeriod {
		q += `
		ORDER BY CASE period
			WHEN 'morning' THEN 1
			WHEN 'afternoon' THEN 2
			WHEN 'evening' THEN 3
			ELSE 4
		END, created_at ASC`
	} else {
		q += ` ORDER BY created_at ASC`
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]routines.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *RoutinesRepo) UpdateItem(ctx context.Context, it routines.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE routine_items
		SET period = ?, task = ?, completed = ?, completed_at = ?, date = ?
		WHERE id = ?
	`,
		string(it.Period),
		it.Task,
		it.Completed,
		toNullTime(it.CompletedAt),
		it.Date,
		it.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return routines.ErrItemNotFound
	}
	return nil
}

func (r *RoutinesRepo) DeleteItem(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routine_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return routines.ErrItemNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (routines.Template, error) {
	var t routines.Template
	var period string
	if err := row.Scan(&t.ID, &t.PetID, &period, &t.Task, &t.IsActive, &t.CreatedAt); err != nil {
		return routines.Template{}, err
	}
	t.Period = routines.Period(period)
	return t, nil
}

func scanItem(row rowScanner) (routines.Item, error) {
	var it routines.Item
	var period string
	var completedAt sql.NullTime
	if err := row.Scan(
		&it.ID,
		&it.PetID,
		&it.TemplateID,
		&period,
		&it.Task,
		&it.Completed,
		&completedAt,
		&it.Date,
		&it.CreatedAt,
	); err != nil {
		return routines.Item{}, err
	}
	it.Period = routines.Period(period)
	it.CompletedAt = fromNullTime(completedAt)
	return it, nil
}
