package sqlite

import (
	"context"
	"database/sql"

	"pet-care-tracker/internal/domain/glucose"
	"pet-care-tracker/internal/platform/timezone"
)

type GlucoseRepo struct {
	db *sql.DB
}

func NewGlucoseRepo(db *sql.DB) *GlucoseRepo {
	return &GlucoseRepo{db: db}
}

func (r *GlucoseRepo) Create(ctx context.Context, g glucose.Reading) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO glucose_readings (
			id, pet_id, value, time_of_day,
			protocol, notes, insulin_dose, date, created_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		g.ID,
		g.PetID,
		g.Value,
		string(g.TimeOfDay),
		g.Protocol,
		g.Notes,
		g.InsulinDose,
		g.Date,
		g.CreatedAt,
	)
	return err
}

func (r *GlucoseRepo) GetByID(ctx context.Context, id string) (glucose.Reading, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, value, time_of_day, protocol, notes, insulin_dose, date, created_at
		FROM glucose_readings
		WHERE id = ?
	`, id)

	g, err := scanReading(row)
	if err == sql.ErrNoRows {
		return glucose.Reading{}, glucose.ErrNotFound
	}
	return g, err
}

func (r *GlucoseRepo) ListByPet(ctx context.Context, petID string, filter glucose.ListFilter) ([]glucose.Reading, error) {
	q := `
		SELECT id, pet_id, value, time_of_day, protocol, notes, insulin_dose, date, created_at
		FROM glucose_readings
		WHERE pet_id = ?
	`
	if filter.SortByCreated {
		q += ` ORDER BY created_at DESC`
	} else {
		q += ` ORDER BY created_at ASC`
	}
	q += ` LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, petID, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]glucose.Reading, 0)
	for rows.Next() {
		g, err := scanReading(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *GlucoseRepo) Update(ctx context.Context, g glucose.Reading) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE glucose_readings
		SET value = ?, protocol = ?, notes = ?, insulin_dose = ?, date = ?
		WHERE id = ?
	`,
		g.Value,
		g.Protocol,
		g.Notes,
		g.InsulinDose,
		g.Date,
		g.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return glucose.ErrNotFound
	}
	return nil
}

func (r *GlucoseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM glucose_readings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return glucose.ErrNotFound
	}
	return nil
}

func scanReading(row rowScanner) (glucose.Reading, error) {
	var g glucose.Reading
	var timeOfDay string
	if err := row.Scan(
		&g.ID,
		&g.PetID,
		&g.Value,
		&timeOfDay,
		&g.Protocol,
		&g.Notes,
		&g.InsulinDose,
		&g.Date,
		&g.CreatedAt,
	); err != nil {
		return glucose.Reading{}, err
	}
	g.TimeOfDay = timezone.Period(timeOfDay)
	return g, nil
}
