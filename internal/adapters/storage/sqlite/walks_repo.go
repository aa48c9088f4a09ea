package sqlite

import (
	"context"
	"database/sql"
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
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
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
		WHERE id = ?
	`, id)

	e, err := scanWalkEntry(row)
	if err == sql.ErrNoRows {
		return walks.Entry{}, walks.ErrNotFound
	}
	return e, err
}

func (r *WalksRepo) ListByPet(ctx context.Context, petID string, filter walks.ListFilter) ([]walks.Entry, error) {
	var q strings.Builder
	q.WriteString(`SELECT ` + walkColumns + ` FROM walk_entries WHERE pet_id = ?`)
	args := []any{petID}

	if filter.StartDate != "" {
		q.WriteString(` AND date >= ?`)
		args = append(args, filter.StartDate)
	}
	if filter.EndDate != "" {
		q.WriteString(` AND date <= ?`)
		args = append(args, filter.EndDate)
	}

	if filter.Ascending {
		q.WriteString(` ORDER BY start_time ASC`)
	} else {
		q.WriteString(` ORDER BY start_time DESC`)
	}
	q.WriteString(` LIMIT ?`)
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
			date = ?,
			end_time = ?,
			duration_seconds = ?,
			pause_events = ?,
			energy_level = ?,
			behavior = ?,
			completed_route = ?,
			pee_count = ?,
			pee_volume = ?,
			pee_color = ?,
			poop_made = ?,
			poop_consistency = ?,
			poop_blood = ?,
			poop_mucus = ?,
			poop_color = ?,
			photos = ?,
			weather = ?,
			temperature_celsius = ?,
			route_distance_km = ?,
			route_description = ?,
			mobility_notes = ?,
			disorientation = ?,
			excessive_panting = ?,
			cough = ?,
			notes = ?,
			alerts = ?
		WHERE id = ?
	`,
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
		e.ID,
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM walk_entries WHERE id = ?`, id)
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
