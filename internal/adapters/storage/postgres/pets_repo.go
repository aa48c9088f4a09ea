package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-tracker/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, name, breed, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		p.ID,
		p.Name,
		p.Breed,
		p.Age,
		p.CreatedAt,
		toNullTime(p.UpdatedAt),
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, breed, age, created_at, updated_at
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	var updated sql.NullTime
	if err := row.Scan(&p.ID, &p.Name, &p.Breed, &p.Age, &p.CreatedAt, &updated); err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	p.UpdatedAt = fromNullTime(updated)

	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, skip, limit int) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, breed, age, created_at, updated_at
		FROM pets
		ORDER BY created_at ASC
		OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		var updated sql.NullTime
		if err := rows.Scan(&p.ID, &p.Name, &p.Breed, &p.Age, &p.CreatedAt, &updated); err != nil {
			return nil, err
		}
		p.UpdatedAt = fromNullTime(updated)
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}
