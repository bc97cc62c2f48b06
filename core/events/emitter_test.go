package events_test

import (
	"sync/atomic"
	"testing"

	"github.com/usnistgov/mcpi/core/events"
	"github.com/usnistgov/mcpi/core/testenv"
)

func TestOnCancel(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	var nA, nB, sumB int32
	fA := func(int) { atomic.AddInt32(&nA, 1) }
	fB := func(x int) {
		atomic.AddInt32(&nB, 1)
		atomic.AddInt32(&sumB, int32(x))
	}

	emitter := events.NewEmitter()
	cancelA := emitter.On(1, fA)
	cancelB := emitter.Once(1, fB)

	emitter.Emit(1, 5)
	assert.EqualValues(1, atomic.LoadInt32(&nA))
	assert.EqualValues(1, atomic.LoadInt32(&nB))
	assert.EqualValues(5, atomic.LoadInt32(&sumB))

	emitter.Emit(1, 7)
	assert.EqualValues(2, atomic.LoadInt32(&nA))
	assert.EqualValues(1, atomic.LoadInt32(&nB))

	assert.NoError(cancelA.Close())
	assert.NoError(cancelB.Close())
	emitter.Emit(1, 9)
	assert.EqualValues(2, atomic.LoadInt32(&nA))
}
