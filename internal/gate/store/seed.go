package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hostelgate/internal/gate/models"
	"hostelgate/internal/gate/store/roster"
)

// Seed is the starting roster and log set loaded at process start. Logs are
// listed newest first.
type Seed struct {
	Residents []models.Resident         `yaml:"residents"`
	Logs      []models.MovementLogEntry `yaml:"logs"`
}

// DefaultSeed returns the facility's demo roster. Log timestamps are relative
// to now.
func DefaultSeed(now time.Time) Seed {
	library := "Library"
	outOfCampus := "Out of Campus"
	return Seed{
		Residents: []models.Resident{
			{ID: "ST1001", Name: "Rohan Sharma", RoomNumber: "A-101", PhotoURL: "https://picsum.photos/seed/ST1001/200", Status: models.StatusInside},
			{ID: "ST1002", Name: "Priya Patel", RoomNumber: "A-102", PhotoURL: "https://picsum.photos/seed/ST1002/200", Status: models.StatusInside},
			{ID: "ST1003", Name: "Amit Singh", RoomNumber: "B-205", PhotoURL: "https://picsum.photos/seed/ST1003/200", Status: models.StatusOutside},
			{ID: "ST1004", Name: "Sneha Verma", RoomNumber: "B-206", PhotoURL: "https://picsum.photos/seed/ST1004/200", Status: models.StatusInside},
			{ID: "ST1005", Name: "Vikram Rathod", RoomNumber: "C-301", PhotoURL: "https://picsum.photos/seed/ST1005/200", Status: models.StatusOutside},
		},
		Logs: []models.MovementLogEntry{
			{ID: "L001", StudentID: "ST1003", StudentName: "Amit Singh", Timestamp: now.Add(-2 * time.Hour), Action: models.ActionExit, Destination: &library},
			{ID: "L002", StudentID: "ST1005", StudentName: "Vikram Rathod", Timestamp: now.Add(-3 * time.Hour), Action: models.ActionExit, Destination: &outOfCampus},
		},
	}
}

// LoadSeedFile reads a YAML seed file.
func LoadSeedFile(path string) (Seed, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("error reading seed file: %w", err)
	}
	var seed Seed
	if err := yaml.Unmarshal(buf, &seed); err != nil {
		return Seed{}, fmt.Errorf("error parsing seed file: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Validate checks seed records for fields the roster relies on.
func (s Seed) Validate() error {
	for i, r := range s.Residents {
		if r.ID == "" || r.Name == "" || r.RoomNumber == "" {
			return fmt.Errorf("seed resident %d: id, name and roomNumber are required", i)
		}
		if !r.Status.IsValid() {
			return fmt.Errorf("seed resident %s: invalid status %q", r.ID, r.Status)
		}
	}
	for i, e := range s.Logs {
		if e.ID == "" || e.StudentID == "" {
			return fmt.Errorf("seed log %d: id and studentId are required", i)
		}
		if !e.Action.IsValid() {
			return fmt.Errorf("seed log %s: invalid action %q", e.ID, e.Action)
		}
	}
	return nil
}

// Marshal renders the seed as YAML.
func (s Seed) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// NewSeededRoster builds a roster store preloaded with seed.
func NewSeededRoster(ctx context.Context, seed Seed) (*roster.InMemoryRosterStore, error) {
	rs := roster.New()
	if err := rs.Seed(ctx, seed.Residents, seed.Logs); err != nil {
		return nil, err
	}
	return rs, nil
}
