package verification

import (
	"context"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	dErrors "hostelgate/pkg/domain-errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type result struct {
	id  string
	err error
}

func TestSimulated_WaitsForDelay(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	v := NewSimulated(clk, 1500*time.Millisecond, 0)

	done := make(chan result, 1)
	go func() {
		id, err := v.Verify(context.Background(), MethodFingerprint, " st1003 ")
		done <- result{id, err}
	}()

	select {
	case <-done:
		t.Fatal("verify returned before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, clk.WaitAdvance(1500*time.Millisecond, time.Second, 1))
	r := <-done
	require.NoError(t, r.err)
	assert.Equal(t, "ST1003", r.id)
}

func TestSimulated_ZeroDelayReturnsImmediately(t *testing.T) {
	v := NewSimulated(testclock.NewClock(time.Now()), time.Second, 0)
	id, err := v.Verify(context.Background(), MethodQR, "st1001")
	require.NoError(t, err)
	assert.Equal(t, "ST1001", id)
}

func TestSimulated_Cancellation(t *testing.T) {
	clk := testclock.NewClock(time.Now())
	v := NewSimulated(clk, time.Hour, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan result, 1)
	go func() {
		id, err := v.Verify(ctx, MethodFingerprint, "ST1001")
		done <- result{id, err}
	}()
	cancel()

	r := <-done
	require.Error(t, r.err)
	assert.True(t, dErrors.HasCode(r.err, dErrors.CodeTimeout))
	assert.ErrorIs(t, r.err, context.Canceled)
}

func TestVerify_Validation(t *testing.T) {
	verifiers := map[string]Verifier{
		"simulated": NewSimulated(testclock.NewClock(time.Now()), 0, 0),
		"instant":   Instant{},
	}
	for name, v := range verifiers {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), MethodQR, "   ")
			assert.True(t, dErrors.HasCode(err, dErrors.CodeMissingField))

			_, err = v.Verify(context.Background(), Method("retina"), "ST1001")
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod(" QR ")
	require.NoError(t, err)
	assert.Equal(t, MethodQR, m)

	_, err = ParseMethod("face")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
