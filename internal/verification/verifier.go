// Package verification models the biometric and QR scan step at the gate as
// an injectable capability. Simulated stands in for hardware with fixed
// delays; Instant is the zero-delay double.
package verification

import (
	"context"
	"strings"
	"time"

	"github.com/juju/clock"

	dErrors "hostelgate/pkg/domain-errors"
)

// Method is how the resident identified themselves.
type Method string

const (
	MethodFingerprint Method = "fingerprint"
	MethodQR          Method = "qr"
)

func (m Method) IsValid() bool {
	return m == MethodFingerprint || m == MethodQR
}

// ParseMethod accepts a method name in any case.
func ParseMethod(raw string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid verification method: "+raw)
	}
	return m, nil
}

// Verifier resolves a scan into a resident id. It does not consult the
// roster; an id that verifies may still be unknown.
type Verifier interface {
	Verify(ctx context.Context, method Method, residentID string) (string, error)
}

// Simulated waits a per-method delay before echoing the normalized id.
type Simulated struct {
	clock  clock.Clock
	delays map[Method]time.Duration
}

func NewSimulated(clk clock.Clock, fingerprintDelay, qrDelay time.Duration) *Simulated {
	return &Simulated{
		clock: clk,
		delays: map[Method]time.Duration{
			MethodFingerprint: fingerprintDelay,
			MethodQR:          qrDelay,
		},
	}
}

func (v *Simulated) Verify(ctx context.Context, method Method, residentID string) (string, error) {
	id, err := normalize(method, residentID)
	if err != nil {
		return "", err
	}
	if err := Wait(ctx, v.clock, v.delays[method]); err != nil {
		return "", err
	}
	return id, nil
}

// Instant verifies without waiting.
type Instant struct{}

func (Instant) Verify(ctx context.Context, method Method, residentID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeTimeout, "verification cancelled")
	}
	return normalize(method, residentID)
}

// Wait blocks for d on clk or until ctx is done.
func Wait(ctx context.Context, clk clock.Clock, d time.Duration) error {
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "verification cancelled")
		}
		return nil
	}
	select {
	case <-clk.After(d):
		return nil
	case <-ctx.Done():
		return dErrors.Wrap(ctx.Err(), dErrors.CodeTimeout, "verification cancelled")
	}
}

func normalize(method Method, residentID string) (string, error) {
	if !method.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "invalid verification method: "+string(method))
	}
	id := strings.ToUpper(strings.TrimSpace(residentID))
	if id == "" {
		return "", dErrors.New(dErrors.CodeMissingField, "student id is required")
	}
	return id, nil
}
