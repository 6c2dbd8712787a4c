// Package export renders the movement log sheet for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"hostelgate/internal/gate/models"
)

// Header is the first row of every export.
var Header = []string{"Log ID", "Student ID", "Student Name", "Action", "Destination", "Timestamp"}

// WriteCSV writes entries in the order given. Absent destinations become
// empty cells; timestamps are RFC 3339 in loc.
func WriteCSV(w io.Writer, entries []models.MovementLogEntry, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		row := []string{
			e.ID,
			e.StudentID,
			e.StudentName,
			string(e.Action),
			e.DestinationOrEmpty(),
			e.Timestamp.In(loc).Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// FileName is the download name for the sheet of day.
func FileName(day time.Time) string {
	return "hostel_logs_" + day.Format(time.DateOnly) + ".csv"
}
