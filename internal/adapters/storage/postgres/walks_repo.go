package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-care-tracker/internal/domain/walks"
)

type WalksRepo struct {
	db *sql.DB
}

func NewWalksRepo(db *sql.DB) *WalksRepo {
	return &WalksRepo{db: db}
}

const walkColumns = `
	id, pet_id, date,
	start_time, end_time, duration_seconds, pause_events,
	energy_level, behavior, completed_route,
	pee_count, pee_volume, pee_color,
	poop_made, poop_consistency, poop_blood, poop_mucus, poop_color,
	photos, weather, temperature_celsius,
	route_distance_km, route_description, mobility_notes,
	disorientation, excessive_panting, cough,
	notes, alerts, created_at`

func (r *WalksRepo) Create(ctx context.Context, e walks.Entry) error {
	pauses, err := jsonArray(pausesToJSON(e.PauseEvents))
	if err != nil {
		return err
	}
	behavior, err := jsonArray(e.Behavior)
	if err != nil {
		return err
	}
	photos, err := jsonArray(e.Photos)
	if err != nil {
		return err
	}
	alerts, err := jsonArray(e.Alerts)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO walk_entries (`+walkColumns+`
		) VALUES (
			$1,$2,$3,
			$4,$5,$6,$7,
			$8,$9,$10,
			$11,$12,$13,
			$14,$15,$16,$17,$18,
			$19,$20,$21,
			$22,$23,$24,
			$25,$26,$27,
			$28,$29,$30
		)
	`,
		e.ID, e.PetID, e.Date,
		e.StartTime, toNullTime(e.EndTime), e.DurationSeconds, pauses,
		e.EnergyLevel, behavior, e.CompletedRoute,
		e.PeeCount, e.PeeVolume, e.PeeColor,
		e.PoopMade, e.PoopConsistency, e.PoopBlood, e.PoopMucus, e.PoopColor,
		photos, e.Weather, e.TemperatureCelsius,
		e.RouteDistanceKm, e.RouteDescription, e.MobilityNotes,
		e.Disorientation, e.ExcessivePanting, e.Cough,
		e.Notes, alerts, e.CreatedAt,
	)
	return err
}

func (r *WalksRepo) GetByID(ctx context.Context, id string) (walks.Entry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+walkColumns+`
		FROM walk_entries
		WHERE id = $1
	`, id)

	e, err := scanWalkEntry(row)
	if err == sql.ErrNoRows {
		return walks.Entry{}, walks.ErrNotFound
	}
	return e, err
}

func (r *WalksRepo) ListByPet(ctx context.Context, petID string, filter walks.ListFilter) ([]walks.Entry, error) {
	var q strings.Builder
	q.WriteString(`SELECT ` + walkColumns + ` FROM walk_entries WHERE pet_id = $1`)
	args := []any{petID}
	argN := 2

	if filter.StartDate != "" {
		fmt.Fprintf(&q, ` AND date >= $%d`, argN)
		args = append(args, filter.StartDate)
		argN++
	}
	if filter.EndDate != "" {
		fmt.Fprintf(&q, ` AND date <= $%d`, argN)
		args = append(args, filter.EndDate)
		argN++
	}

	if filter.Ascending {
		q.WriteString(` ORDER BY start_time ASC`)
	} else {
		q.WriteString(` ORDER BY start_time DESC`)
	}
	fmt.Fprintf(&q, ` LIMIT $%d`, argN)
	args = append(args, filter.Limit)

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]walks.Entry, 0)
	for rows.Next() {
		e, err := scanWalkEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *WalksRepo) Update(ctx context.Context, e walks.Entry) error {
	pauses, err := jsonArray(pausesToJSON(e.PauseEvents))
	if err != nil {
		return err
	}
	behavior, err := jsonArray(e.Behavior)
	if err != nil {
		return err
	}
	photos, err := jsonArray(e.Photos)
	if err != nil {
		return err
	}
	alerts, err := jsonArray(e.Alerts)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE walk_entries
		SET
			date = $2,
			end_time = $3,
			duration_seconds = $4,
			pause_events = $5,
			energy_level = $6,
			behavior = $7,
			completed_route = $8,
			pee_count = $9,
			pee_volume = $10,
			pee_color = $11,
			poop_made = $12,
			poop_consistency = $13,
			poop_blood = $14,
			poop_mucus = $15,
			poop_color = $16,
			photos = $17,
			weather = $18,
			temperature_celsius = $19,
			route_distance_km = $20,
			route_description = $21,
			mobility_notes = $22,
			disorientation = $23,
			excessive_panting = $24,
			cough = $25,
			notes = $26,
			alerts = $27
		WHERE id = $1
	`,
		e.ID,
		e.Date,
		toNullTime(e.EndTime),
		e.DurationSeconds,
		pauses,
		e.EnergyLevel,
		behavior,
		e.CompletedRoute,
		e.PeeCount,
		e.PeeVolume,
		e.PeeColor,
		e.PoopMade,
		e.PoopConsistency,
		e.PoopBlood,
		e.PoopMucus,
		e.PoopColor,
		photos,
		e.Weather,
		e.TemperatureCelsius,
		e.RouteDistanceKm,
		e.RouteDescription,
		e.MobilityNotes,
		e.Disorientation,
		e.ExcessivePanting,
		e.Cough,
		e.Notes,
		alerts,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return walks.ErrNotFound
	}
	return nil
}

func (r *WalksRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM walk_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return walks.ErrNotFound
	}
	return nil
}

func scanWalkEntry(row rowScanner) (walks.Entry, error) {
	var e walks.Entry
	var endTime sql.NullTime
	var pauses, behavior, photos, alerts sql.NullString

	if err := row.Scan(
		&e.ID, &e.PetID, &e.Date,
		&e.StartTime, &endTime, &e.DurationSeconds, &pauses,
		&e.EnergyLevel, &behavior, &e.CompletedRoute,
		&e.PeeCount, &e.PeeVolume, &e.PeeColor,
		&e.PoopMade, &e.PoopConsistency, &e.PoopBlood, &e.PoopMucus, &e.PoopColor,
		&photos, &e.Weather, &e.TemperatureCelsius,
		&e.RouteDistanceKm, &e.RouteDescription, &e.MobilityNotes,
		&e.Disorientation, &e.ExcessivePanting, &e.Cough,
		&e.Notes, &alerts, &e.CreatedAt,
	); err != nil {
		return walks.Entry{}, err
	}

	e.EndTime = fromNullTime(endTime)

	pj, err := scanJSONArray[pauseJSON](pauses)
	if err != nil {
		return walks.Entry{}, err
	}
	e.PauseEvents = pausesFromJSON(pj)

	if e.Behavior, err = scanJSONArray[string](behavior); err != nil {
		return walks.Entry{}, err
	}
	if e.Photos, err = scanJSONArray[string](photos); err != nil {
		return walks.Entry{}, err
	}
	if e.Alerts, err = scanJSONArray[string](alerts); err != nil {
		return walks.Entry{}, err
	}

	return e, nil
}
