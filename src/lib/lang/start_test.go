package lang

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartUnitIsSuccess(t *testing.T) {
	reset(t)
	code := Start(func() Unit { return Unit{} }, 0, nil)
	assert.Equal(t, int32(0), code)
	assert.Equal(t, Running, Current())
}

func TestStartCallsEntryOnce(t *testing.T) {
	reset(t)
	calls := 0
	Start(func() Unit {
		calls++
		return Unit{}
	}, 3, nil)
	assert.Equal(t, 1, calls)
}

func TestStartReportsResult(t *testing.T) {
	reset(t)
	assert.Equal(t, int32(3), Start(func() Result { return Failure(3) }, 0, nil))

	reset(t)
	assert.Equal(t, int32(0), Start(func() Result { return Success() }, 0, nil))

	reset(t)
	assert.Equal(t, int32(42), Start(func() ExitCode { return 42 }, 0, nil))
}

func TestResultVariants(t *testing.T) {
	assert.True(t, Result{}.Ok())
	assert.Equal(t, ExitFailure, Failure(0).Report(), "a zero failure code must not read as success")

	err := errors.New("card not found")
	r := FromError(err)
	assert.False(t, r.Ok())
	assert.Equal(t, ExitFailure, r.Report())
	assert.ErrorIs(t, r.Err(), err)
	assert.True(t, FromError(nil).Ok())
}

func TestStartPanicGoesToErrorHandler(t *testing.T) {
	reset(t)
	var got Payload
	require.NoError(t, InstallHandlers(func(p Payload) {
		got = p
		panic(stopLoop{})
	}, func() {}))

	returned := false
	stopped := untilStopped(t, func() {
		Start(func() Unit {
			panic("stack overflow")
		}, 0, nil)
		returned = true
	})
	assert.True(t, stopped)
	assert.False(t, returned, "start must not come back after a panic")
	assert.Equal(t, "stack overflow", got.Message)
	assert.Equal(t, ErrorHalt, Current())
}

func TestStartRuntimeErrorPayload(t *testing.T) {
	reset(t)
	var got Payload
	require.NoError(t, InstallHandlers(func(p Payload) {
		got = p
		panic(stopLoop{})
	}, func() {}))

	var table []int
	idx := 3
	untilStopped(t, func() {
		Start(func() Unit {
			_ = table[idx]
			return Unit{}
		}, 0, nil)
	})
	_, isRuntime := got.Value.(runtime.Error)
	assert.True(t, isRuntime)
	assert.Contains(t, got.Message, "index out of range")
}

type cardError struct{ slot int }

func (c cardError) Error() string { return "no card in slot " + string(rune('0'+c.slot)) }

func TestStartNilPanicValues(t *testing.T) {
	for name, entry := range map[string]func() Unit{
		"nil payload":   func() Unit { panic((*Payload)(nil)) },
		"nil error ptr": func() Unit { panic((*cardError)(nil)) },
	} {
		reset(t)
		reached := false
		require.NoError(t, InstallHandlers(func(p Payload) {
			reached = true
			panic(stopLoop{})
		}, func() {}))

		stopped := untilStopped(t, func() { Start(entry, 0, nil) })
		assert.True(t, stopped, name)
		assert.True(t, reached, "%s: error handler never got control", name)
		assert.Equal(t, ErrorHalt, Current(), name)
	}
}

func TestStartReentry(t *testing.T) {
	reset(t)
	var got Payload
	require.NoError(t, InstallHandlers(func(p Payload) {
		got = p
		panic(stopLoop{})
	}, func() {}))

	inner := 0
	stopped := untilStopped(t, func() {
		Start(func() Unit {
			Start(func() Unit {
				inner++
				return Unit{}
			}, 0, nil)
			return Unit{}
		}, 0, nil)
	})
	assert.True(t, stopped)
	assert.Equal(t, 0, inner)
	assert.Equal(t, "start re-entered", got.Message)
	require.NotNil(t, got.Location)
	assert.True(t, strings.HasSuffix(got.Location.File, "start.go"))
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "error-halt", ErrorHalt.String())
	assert.Equal(t, "oom-halt", OomHalt.String())
	assert.False(t, Running.Terminal())
	assert.True(t, OomHalt.Terminal())
}
