package roster

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"hostelgate/internal/gate/models"
	"hostelgate/pkg/platform/sentinel"
)

const (
	residentIDPrefix = "ST"
	logIDPrefix      = "L"

	// residentSeqFloor keeps generated ids in the ST1001+ range used by the
	// facility even when the roster starts empty.
	residentSeqFloor = 1000

	// maxSequence bounds numeric id suffixes so the next id always fits.
	maxSequence = math.MaxInt32
)

// InMemoryRosterStore owns the resident roster and the movement log. Residents
// keep insertion order; log entries are kept chronologically and listed
// newest first.
type InMemoryRosterStore struct {
	mu        sync.RWMutex
	residents []models.Resident
	index     map[string]int // upper-cased id -> position in residents
	logs      []models.MovementLogEntry
	logIDs    map[string]struct{}

	residentSeq int
	logSeq      int
}

// New returns an empty roster store.
func New() *InMemoryRosterStore {
	return &InMemoryRosterStore{
		index:       make(map[string]int),
		logIDs:      make(map[string]struct{}),
		residentSeq: residentSeqFloor,
	}
}

// Seed loads the starting roster and log set. logs are given newest first,
// the same order ListLogs returns.
func (s *InMemoryRosterStore) Seed(_ context.Context, residents []models.Resident, logs []models.MovementLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range residents {
		if err := s.insertLocked(r); err != nil {
			return fmt.Errorf("seed resident %s: %w", r.ID, err)
		}
	}
	for i := len(logs) - 1; i >= 0; i-- {
		if err := s.appendLogLocked(logs[i]); err != nil {
			return fmt.Errorf("seed log %s: %w", logs[i].ID, err)
		}
	}
	return nil
}

// NextResidentID returns the id the next registration should use. It does
// not reserve the id; Insert advances the sequence.
func (s *InMemoryRosterStore) NextResidentID(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return residentIDPrefix + strconv.Itoa(s.residentSeq+1)
}

// NextLogID returns the id the next log entry should use.
func (s *InMemoryRosterStore) NextLogID(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("%s%03d", logIDPrefix, s.logSeq+1)
}

// Insert appends a resident to the roster. Returns sentinel.ErrConflict when
// the id (compared case-insensitively) is already taken.
func (s *InMemoryRosterStore) Insert(_ context.Context, resident models.Resident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(resident)
}

func (s *InMemoryRosterStore) insertLocked(resident models.Resident) error {
	key := strings.ToUpper(resident.ID)
	if key == "" {
		return fmt.Errorf("empty resident id: %w", sentinel.ErrInvalidState)
	}
	if _, exists := s.index[key]; exists {
		return fmt.Errorf("resident %s: %w", resident.ID, sentinel.ErrConflict)
	}
	n, ok, err := sequenceOf(resident.ID, residentIDPrefix)
	if err != nil {
		return err
	}
	s.index[key] = len(s.residents)
	s.residents = append(s.residents, resident)
	if ok && n > s.residentSeq {
		s.residentSeq = n
	}
	return nil
}

// FindByID looks a resident up case-insensitively and returns a copy.
func (s *InMemoryRosterStore) FindByID(_ context.Context, id string) (*models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.index[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	r := s.residents[pos]
	return &r, nil
}

// CommitMovement sets the resident's status and appends entry as one step.
// Every precondition is checked before anything is written, so a failure
// leaves both collections untouched.
func (s *InMemoryRosterStore) CommitMovement(_ context.Context, residentID string, status models.Status, entry models.MovementLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[strings.ToUpper(residentID)]
	if !ok {
		return sentinel.ErrNotFound
	}
	if !status.IsValid() {
		return fmt.Errorf("status %q: %w", status, sentinel.ErrInvalidState)
	}
	if _, dup := s.logIDs[entry.ID]; dup || entry.ID == "" {
		return fmt.Errorf("log entry %q: %w", entry.ID, sentinel.ErrConflict)
	}
	if _, _, err := sequenceOf(entry.ID, logIDPrefix); err != nil {
		return err
	}

	s.residents[pos].Status = status
	return s.appendLogLocked(entry)
}

func (s *InMemoryRosterStore) appendLogLocked(entry models.MovementLogEntry) error {
	if _, dup := s.logIDs[entry.ID]; dup {
		return fmt.Errorf("log entry %s: %w", entry.ID, sentinel.ErrConflict)
	}
	n, ok, err := sequenceOf(entry.ID, logIDPrefix)
	if err != nil {
		return err
	}
	s.logIDs[entry.ID] = struct{}{}
	s.logs = append(s.logs, entry)
	if ok && n > s.logSeq {
		s.logSeq = n
	}
	return nil
}

// ListResidents returns a snapshot of the roster in insertion order.
func (s *InMemoryRosterStore) ListResidents(_ context.Context) ([]models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.residents), nil
}

// ListLogs returns a snapshot of the movement log, newest first.
func (s *InMemoryRosterStore) ListLogs(_ context.Context) ([]models.MovementLogEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.MovementLogEntry, 0, len(s.logs))
	for i := len(s.logs) - 1; i >= 0; i-- {
		out = append(out, s.logs[i].Clone())
	}
	return out, nil
}

// CountLogs returns the number of recorded entries.
func (s *InMemoryRosterStore) CountLogs(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs), nil
}

// sequenceOf extracts the numeric suffix of ids like ST1004 or L002. Ids
// without a numeric suffix are not sequenced. A suffix that is not positive
// or would leave no room for a successor is rejected with ErrInvalidState.
func sequenceOf(id, prefix string) (int, bool, error) {
	rest, ok := strings.CutPrefix(strings.ToUpper(id), prefix)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, false, fmt.Errorf("id %s: sequence out of range: %w", id, sentinel.ErrInvalidState)
		}
		return 0, false, nil
	}
	if n <= 0 || n >= maxSequence {
		return 0, false, fmt.Errorf("id %s: sequence out of range: %w", id, sentinel.ErrInvalidState)
	}
	return n, true, nil
}
