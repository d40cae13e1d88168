package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightGateSerializesPerKey(t *testing.T) {
	gate := NewInflightGate()

	release, err := gate.Acquire("quotation", "client-1")
	require.NoError(t, err)

	_, err = gate.Acquire("quotation", "client-1")
	assert.ErrorIs(t, err, ErrAttemptInFlight)

	release()
	release2, err := gate.Acquire("quotation", "client-1")
	require.NoError(t, err)
	release2()
}

func TestInflightGateIsIndependentPerWorkflow(t *testing.T) {
	gate := NewInflightGate()

	releaseQ, err := gate.Acquire("quotation", "client-1")
	require.NoError(t, err)
	defer releaseQ()

	releaseD, err := gate.Acquire("document", "client-1")
	require.NoError(t, err)
	defer releaseD()
}

func TestInflightGateIsIndependentPerClient(t *testing.T) {
	gate := NewInflightGate()

	releaseA, err := gate.Acquire("quotation", "client-1")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := gate.Acquire("quotation", "client-2")
	require.NoError(t, err)
	defer releaseB()
}
