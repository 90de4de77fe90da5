package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "late") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "early") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "early-2") })

	m.Advance(50 * time.Millisecond)
	assert.Empty(t, got)
	assert.Equal(t, 3, m.Pending())

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-2", "late"}, got)
	assert.Zero(t, m.Pending())
	assert.Equal(t, 300*time.Millisecond, m.Now())
}

func TestManualStopIsIdempotent(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestManualTimerArmedDuringFire(t *testing.T) {
	m := NewManual()
	count := 0
	m.AfterFunc(10*time.Millisecond, func() {
		count++
		m.AfterFunc(10*time.Millisecond, func() { count++ })
	})

	m.Advance(15 * time.Millisecond)
	assert.Equal(t, 1, count)
	m.Advance(10 * time.Millisecond)
	assert.Equal(t, 2, count)
}

func TestSchedulerDispatchesThroughDispatcher(t *testing.T) {
	dispatched := make(chan struct{}, 1)
	fired := make(chan struct{}, 1)

	s := NewScheduler(func(f func()) {
		dispatched <- struct{}{}
		f()
	})
	s.AfterFunc(time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	require.Len(t, dispatched, 1)
}

func TestSchedulerStopPreventsFire(t *testing.T) {
	fired := make(chan struct{}, 1)
	s := NewScheduler(nil)
	timer := s.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(150 * time.Millisecond):
	}
}
