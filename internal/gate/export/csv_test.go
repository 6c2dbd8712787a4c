package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelgate/internal/gate/models"
)

func TestWriteCSV(t *testing.T) {
	ts := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	dest := "Library, Block B"
	entries := []models.MovementLogEntry{
		{ID: "L002", StudentID: "ST1003", StudentName: "Amit Singh", Action: models.ActionExit, Destination: &dest, Timestamp: ts},
		{ID: "L001", StudentID: "ST1001", StudentName: "Rohan \"Ro\" Sharma", Action: models.ActionEntry, Timestamp: ts.Add(-time.Hour)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, entries, time.FixedZone("IST", 5*3600+1800)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"L002", "ST1003", "Amit Singh", "EXIT", "Library, Block B", "2026-03-14T13:00:00+05:30"}, rows[1])
	assert.Equal(t, "Rohan \"Ro\" Sharma", rows[2][2])
	assert.Equal(t, "", rows[2][4])
}

func TestWriteCSV_EmptyHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))
	assert.Equal(t, "Log ID,Student ID,Student Name,Action,Destination,Timestamp\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, nil, time.UTC)
	require.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hostel_logs_2026-03-14.csv", FileName(time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)))
}
