package terminal

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/suite"

	"hostelgate/internal/gate/models"
	gateservice "hostelgate/internal/gate/service"
	"hostelgate/internal/gate/store"
	"hostelgate/internal/gate/store/roster"
	"hostelgate/internal/platform/logger"
	"hostelgate/internal/verification"
	dErrors "hostelgate/pkg/domain-errors"
)

type TerminalSuite struct {
	suite.Suite
	ctx      context.Context
	clock    *testclock.Clock
	roster   *roster.InMemoryRosterStore
	gate     *gateservice.Service
	terminal *Terminal
}

func TestTerminalSuite(t *testing.T) {
	suite.Run(t, new(TerminalSuite))
}

func (s *TerminalSuite) SetupTest() {
	s.ctx = context.Background()
	now := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	s.clock = testclock.NewClock(now)

	rs, err := store.NewSeededRoster(s.ctx, store.DefaultSeed(now))
	s.Require().NoError(err)
	s.roster = rs
	s.gate = gateservice.New(rs, gateservice.WithClock(s.clock), gateservice.WithLogger(logger.Discard()))
	s.terminal = New(s.gate, verification.Instant{},
		WithClock(s.clock),
		WithResultDisplay(5*time.Second),
		WithLogger(logger.Discard()),
	)
}

func (s *TerminalSuite) TestStartsIdle() {
	s.Equal(StateIdle, s.terminal.Snapshot().State)
}

func (s *TerminalSuite) TestVerify_OutsideResidentIsCheckedIn() {
	snap, err := s.terminal.Verify(s.ctx, verification.MethodQR, "st1003")
	s.Require().NoError(err)
	s.Equal(StateShowingResult, snap.State)
	s.Equal(models.ActionEntry, snap.Action)
	s.Require().NotNil(snap.Resident)
	s.Equal("ST1003", snap.Resident.ID)
	s.Equal(models.StatusInside, snap.Resident.Status)

	r, err := s.roster.FindByID(s.ctx, "ST1003")
	s.Require().NoError(err)
	s.Equal(models.StatusInside, r.Status)
}

func (s *TerminalSuite) TestVerify_InsideResidentNeedsDestination() {
	snap, err := s.terminal.Verify(s.ctx, verification.MethodFingerprint, "ST1001")
	s.Require().NoError(err)
	s.Equal(StateAwaitingDestination, snap.State)
	s.Equal("ST1001", snap.Resident.ID)

	s.Run("empty destination is rejected and keeps the state", func() {
		_, err := s.terminal.ConfirmDestination(s.ctx, "  ")
		s.True(dErrors.HasCode(err, dErrors.CodeMissingField))
		s.Equal(StateAwaitingDestination, s.terminal.Snapshot().State)
	})

	s.Run("confirming records the exit", func() {
		snap, err := s.terminal.ConfirmDestination(s.ctx, "Library")
		s.Require().NoError(err)
		s.Equal(StateShowingResult, snap.State)
		s.Equal(models.ActionExit, snap.Action)
		s.Equal(models.StatusOutside, snap.Resident.Status)

		logs, err := s.gate.Logs(s.ctx)
		s.Require().NoError(err)
		s.Equal("ST1001", logs[0].StudentID)
		s.Require().NotNil(logs[0].Destination)
		s.Equal("Library", *logs[0].Destination)
	})
}

func (s *TerminalSuite) TestVerify_UnknownResident() {
	snap, err := s.terminal.Verify(s.ctx, verification.MethodQR, "ST9999")
	s.Require().NoError(err)
	s.Equal(StateError, snap.State)
	s.Equal(msgInvalidID, snap.Message)

	_, err = s.terminal.Verify(s.ctx, verification.MethodQR, "ST1003")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState), "busy while the error is shown")
}

func (s *TerminalSuite) TestResultExpires() {
	_, err := s.terminal.Verify(s.ctx, verification.MethodQR, "ST1005")
	s.Require().NoError(err)

	s.clock.Advance(4 * time.Second)
	s.Equal(StateShowingResult, s.terminal.Snapshot().State)

	s.clock.Advance(time.Second)
	s.Equal(StateIdle, s.terminal.Snapshot().State)

	_, err = s.terminal.Verify(s.ctx, verification.MethodQR, "ST1002")
	s.Require().NoError(err)
}

func (s *TerminalSuite) TestIllegalTransitions() {
	_, err := s.terminal.ConfirmDestination(s.ctx, "Library")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	_, err = s.terminal.Verify(s.ctx, verification.MethodQR, "ST1001")
	s.Require().NoError(err)
	_, err = s.terminal.Verify(s.ctx, verification.MethodQR, "ST1002")
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
}

func (s *TerminalSuite) TestReset() {
	_, err := s.terminal.Verify(s.ctx, verification.MethodQR, "ST1001")
	s.Require().NoError(err)

	snap := s.terminal.Reset()
	s.Equal(StateIdle, snap.State)
	s.Nil(snap.Resident)

	r, err := s.roster.FindByID(s.ctx, "ST1001")
	s.Require().NoError(err)
	s.Equal(models.StatusInside, r.Status, "cancelling destination selection records nothing")
}

func (s *TerminalSuite) TestVerify_InvalidInputReturnsToIdle() {
	_, err := s.terminal.Verify(s.ctx, verification.MethodQR, "")
	s.True(dErrors.HasCode(err, dErrors.CodeMissingField))
	s.Equal(StateIdle, s.terminal.Snapshot().State)
}

func (s *TerminalSuite) TestReset_AbortsPendingVerification() {
	term := New(s.gate, verification.NewSimulated(s.clock, time.Second, 0),
		WithClock(s.clock),
		WithLogger(logger.Discard()),
	)

	errc := make(chan error, 1)
	go func() {
		_, err := term.Verify(s.ctx, verification.MethodFingerprint, "ST1003")
		errc <- err
	}()

	s.Require().Eventually(func() bool {
		return term.Snapshot().State == StateAwaitingVerification
	}, time.Second, time.Millisecond)
	term.Reset()
	s.Require().NoError(s.clock.WaitAdvance(time.Second, time.Second, 1))

	err := <-errc
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	s.Equal(StateIdle, term.Snapshot().State)

	r, err := s.roster.FindByID(s.ctx, "ST1003")
	s.Require().NoError(err)
	s.Equal(models.StatusOutside, r.Status)
}

func (s *TerminalSuite) TestReset_ThenNewScan_DiscardsStaleScan() {
	term := New(s.gate, verification.NewSimulated(s.clock, time.Second, time.Hour),
		WithClock(s.clock),
		WithLogger(logger.Discard()),
	)

	stale := make(chan error, 1)
	go func() {
		_, err := term.Verify(s.ctx, verification.MethodFingerprint, "ST1003")
		stale <- err
	}()
	s.Require().NoError(s.clock.WaitAdvance(0, time.Second, 1))
	term.Reset()

	current := make(chan error, 1)
	go func() {
		_, err := term.Verify(s.ctx, verification.MethodQR, "ST1005")
		current <- err
	}()
	s.Require().NoError(s.clock.WaitAdvance(time.Second, time.Second, 2))

	err := <-stale
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	s.Equal(StateAwaitingVerification, term.Snapshot().State)

	r, err := s.roster.FindByID(s.ctx, "ST1003")
	s.Require().NoError(err)
	s.Equal(models.StatusOutside, r.Status)

	term.Reset()
	s.Require().NoError(s.clock.WaitAdvance(time.Hour, time.Second, 1))
	s.True(dErrors.HasCode(<-current, dErrors.CodeInvalidState))

	logs, err := s.gate.Logs(s.ctx)
	s.Require().NoError(err)
	s.Len(logs, 2)
}
