package schedule

import (
	"log/slog"
	"strings"

	"github.com/starford/rooster/internal/analyze"
	"github.com/starford/rooster/internal/models"
)

// Column layout of the photographed schedule table.
const (
	colBoffID = iota
	colName
	colInfo
	colStart
	colEnd
)

// DefaultEnd is substituted when the end column is blank or unparsable; a
// blank end cell means the shift runs to the regular closing time.
var DefaultEnd = models.TimeOfDay{Hour: 21}

// DeriveShifts converts grid rows into shift records for every worker in
// the table. Rows whose start column does not parse are skipped entirely:
// no start time means the worker is not scheduled that day. Callers select
// the one record they are allowed to keep and discard the rest.
func DeriveShifts(meta Metadata, grid analyze.Grid) []models.Shift {
	var shifts []models.Shift
	for _, row := range grid {
		if len(row) <= colEnd {
			continue
		}

		start, err := models.ParseTimeOfDay(row[colStart])
		if err != nil {
			continue
		}

		end, defaulted := parseEnd(row[colEnd])
		if defaulted {
			slog.Debug("end time defaulted",
				slog.String("boff_id", row[colBoffID]),
				slog.String("raw", row[colEnd]))
		}

		info := row[colInfo]
		if strings.TrimSpace(info) == "" {
			info = ""
		}

		shifts = append(shifts, models.Shift{
			BoffID:   row[colBoffID],
			Name:     row[colName],
			Date:     meta.Date,
			Planning: meta.Planning,
			Start:    start,
			End:      end,
			Info:     info,
		})
	}
	return shifts
}

// parseEnd parses the end column, substituting DefaultEnd when the cell is
// blank or unparsable. The second return reports the substitution, keeping
// the defaulted outcome distinguishable from an explicit end time that
// happens to equal DefaultEnd.
func parseEnd(raw string) (end models.TimeOfDay, defaulted bool) {
	end, err := models.ParseTimeOfDay(raw)
	if err != nil {
		return DefaultEnd, true
	}
	return end, false
}
