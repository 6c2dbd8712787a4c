package models

import (
	"strings"

	dErrors "hostelgate/pkg/domain-errors"
)

// Status is a resident's location relative to the facility gate.
type Status string

const (
	StatusInside  Status = "INSIDE"
	StatusOutside Status = "OUTSIDE"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusInside || s == StatusOutside
}

// ParseStatus accepts a status name in any case.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid status: "+raw)
	}
	return s, nil
}

// Resident is a tracked individual. ID is assigned by the roster store and
// never changes; Status is the only field mutated after registration.
type Resident struct {
	ID         string `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	RoomNumber string `json:"room_number" yaml:"roomNumber"`
	PhotoURL   string `json:"photo_url"   yaml:"photoUrl"`
	Status     Status `json:"status"      yaml:"status"`
}

// NewResident builds a freshly registered resident. Registration always
// starts INSIDE.
func NewResident(id, name, roomNumber, photoURL string) (*Resident, error) {
	name = strings.TrimSpace(name)
	roomNumber = strings.TrimSpace(roomNumber)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeMissingField, "name is required")
	}
	if roomNumber == "" {
		return nil, dErrors.New(dErrors.CodeMissingField, "room number is required")
	}
	return &Resident{
		ID:         id,
		Name:       name,
		RoomNumber: roomNumber,
		PhotoURL:   photoURL,
		Status:     StatusInside,
	}, nil
}

// MatchesID compares resident ids case-insensitively.
func (r *Resident) MatchesID(id string) bool {
	return strings.EqualFold(r.ID, strings.TrimSpace(id))
}

// IsInside reports whether the resident is currently inside.
func (r *Resident) IsInside() bool {
	return r.Status == StatusInside
}
