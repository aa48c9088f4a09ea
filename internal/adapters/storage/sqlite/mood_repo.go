package sqlite

import (
	"context"
	"database/sql"

	"pet-care-tracker/internal/domain/mood"
)

type MoodRepo struct {
	db *sql.DB
}

func NewMoodRepo(db *sql.DB) *MoodRepo {
	return &MoodRepo{db: db}
}

func (r *MoodRepo) Create(ctx context.Context, e mood.Entry) error {
	generalMood, err := jsonArray(e.GeneralMood)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO mood_entries (
			id, pet_id, energy_level, general_mood, appetite, walk,
			notes, date, created_at
		) VALUES (?,?,?,?,?,?,?,?,?)
	`,
		e.ID,
		e.PetID,
		e.EnergyLevel,
		generalMood,
		e.Appetite,
		e.Walk,
		e.Notes,
		e.Date,
		e.CreatedAt,
	)
	return err
}

func (r *MoodRepo) GetByID(ctx context.Context, id string) (mood.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, energy_level, general_mood, appetite, walk, notes, date, created_at
		FROM mood_entries
		WHERE id = ?
	`, id)

	e, err := scanMoodEntry(row)
	if err == sql.ErrNoRows {
		return mood.Entry{}, mood.ErrNotFound
	}
	return e, err
}

func (r *MoodRepo) ListByPet(ctx context.Context, petID string, filter mood.ListFilter) ([]mood.Entry, error) {
	q := `
		SELECT id, pet_id, energy_level, general_mood, appetite, walk, notes, date, created_at
		FROM mood_entries
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

	out := make([]mood.Entry, 0)
	for rows.Next() {
		e, err := scanMoodEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *MoodRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return mood.ErrNotFound
	}
	return nil
}

func scanMoodEntry(row rowScanner) (mood.Entry, error) {
	var e mood.Entry
	var generalMood sql.NullString
	if err := row.Scan(
		&e.ID,
		&e.PetID,
		&e.EnergyLevel,
		&generalMood,
		&e.Appetite,
		&e.Walk,
		&e.Notes,
		&e.Date,
		&e.CreatedAt,
	); err != nil {
		return mood.Entry{}, err
	}

	moods, err := scanJSONArray[string](generalMood)
	if err != nil {
		return mood.Entry{}, err
	}
	e.GeneralMood = moods
	return e, nil
}
