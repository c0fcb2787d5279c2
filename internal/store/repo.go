package store

import (
	"context"
	"fmt"
	"time"

	"github.com/starford/rooster/internal/models"
)

// UpsertShift inserts a shift or, when a row with the same natural key
// (date, planning, boff_id) already exists, overwrites its mutable fields.
// The conflict resolution lives in one statement, so no transaction is
// needed.
func (db *DB) UpsertShift(ctx context.Context, s models.Shift) error {
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO shifts (boff_id, name, date, planning, start, "end", info)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date, planning, boff_id) DO UPDATE SET
			name  = excluded.name,
			start = excluded.start,
			"end" = excluded."end",
			info  = excluded.info
	`, s.BoffID, s.Name, s.Date.Format(models.DateLayout), string(s.Planning),
		s.Start.String(), s.End.String(), s.Info)
	if err != nil {
		return fmt.Errorf("store: upsert shift: %w", err)
	}
	return nil
}

// ListShifts returns every stored shift for one worker, oldest first.
func (db *DB) ListShifts(ctx context.Context, boffID string) ([]models.Shift, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT boff_id, name, date, planning, start, "end", info
		FROM shifts
		WHERE boff_id = ?
		ORDER BY date, planning
	`, boffID)
	if err != nil {
		return nil, fmt.Errorf("store: list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []models.Shift
	for rows.Next() {
		var s models.Shift
		var date, planning, start, end string
		if err := rows.Scan(&s.BoffID, &s.Name, &date, &planning, &start, &end, &s.Info); err != nil {
			return nil, fmt.Errorf("store: scan shift: %w", err)
		}
		if s.Date, err = time.Parse(models.DateLayout, date); err != nil {
			return nil, fmt.Errorf("store: bad date %q: %w", date, err)
		}
		if s.Planning, err = models.ParsePlanning(planning); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		if s.Start, err = models.ParseTimeOfDay(start); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		if s.End, err = models.ParseTimeOfDay(end); err != nil {
			return nil, fmt.Errorf("store: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
