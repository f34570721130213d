package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

func TestManual_Now(t *testing.T) {
	c := NewManual(epoch)
	assert.Equal(t, epoch, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, epoch.Add(time.Minute), c.Now())
}

func TestManual_FiresInDeadlineOrder(t *testing.T) {
	c := NewManual(epoch)
	var fired []string

	c.AfterFunc(300*time.Millisecond, func() { fired = append(fired, "c") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "a") })
	c.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "b") })

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)

	c.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestManual_SameDeadlineKeepsScheduleOrder(t *testing.T) {
	c := NewManual(epoch)
	var fired []int

	for i := 0; i < 5; i++ {
		i := i
		c.AfterFunc(time.Second, func() { fired = append(fired, i) })
	}
	c.Advance(time.Second)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestManual_CallbackSeesDeadlineTime(t *testing.T) {
	c := NewManual(epoch)
	var at time.Time

	c.AfterFunc(time.Second, func() { at = c.Now() })
	c.Advance(time.Hour)

	assert.Equal(t, epoch.Add(time.Second), at)
	assert.Equal(t, epoch.Add(time.Hour), c.Now())
}

func TestManual_ChainedTimersFireWithinOneAdvance(t *testing.T) {
	c := NewManual(epoch)
	count := 0

	var step func()
	step = func() {
		count++
		if count < 3 {
			c.AfterFunc(time.Second, step)
		}
	}
	c.AfterFunc(time.Second, step)

	c.Advance(3 * time.Second)
	assert.Equal(t, 3, count)
}

func TestManual_ChainedTimerBeyondTargetWaits(t *testing.T) {
	c := NewManual(epoch)
	count := 0

	c.AfterFunc(time.Second, func() {
		count++
		c.AfterFunc(time.Second, func() { count++ })
	})

	c.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, c.Pending())

	c.Advance(500 * time.Millisecond)
	assert.Equal(t, 2, count)
}

func TestManual_Stop(t *testing.T) {
	c := NewManual(epoch)
	fired := false

	timer := c.AfterFunc(time.Second, func() { fired = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
}

func TestManual_StopAfterFire(t *testing.T) {
	c := NewManual(epoch)

	timer := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)

	assert.False(t, timer.Stop())
}

func TestManual_ZeroDelayFiresOnAdvance(t *testing.T) {
	c := NewManual(epoch)
	fired := false

	c.AfterFunc(0, func() { fired = true })
	assert.False(t, fired)

	c.Advance(0)
	assert.True(t, fired)
}

func TestReal_AfterFunc(t *testing.T) {
	done := make(chan struct{})
	Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestReal_Stop(t *testing.T) {
	timer := Real{}.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
}
