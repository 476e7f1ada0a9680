package screen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_FiresLastValueOnly(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	first := d.Schedule("L")
	second := d.Schedule("Lo")
	third := d.Schedule("Lon")

	msgs := []debounceMsg{
		first().(debounceMsg),
		second().(debounceMsg),
		third().(debounceMsg),
	}

	var fired []string
	for _, msg := range msgs {
		if value, ok := d.Fire(msg); ok {
			fired = append(fired, value)
		}
	}

	assert.Equal(t, []string{"Lon"}, fired)
	assert.False(t, d.Pending())
}

func TestDebouncer_FiresOnce(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	msg := d.Schedule("Paris")().(debounceMsg)

	value, ok := d.Fire(msg)
	require.True(t, ok)
	assert.Equal(t, "Paris", value)

	_, ok = d.Fire(msg)
	assert.False(t, ok, "a delivered timer must not fire twice")
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	msg := d.Schedule("Rome")().(debounceMsg)
	assert.True(t, d.Pending())

	d.Cancel()

	assert.False(t, d.Pending())
	_, ok := d.Fire(msg)
	assert.False(t, ok)
}

func TestDebouncer_WaitsForDelay(t *testing.T) {
	delay := 20 * time.Millisecond
	d := NewDebouncer(delay)

	start := time.Now()
	msg := d.Schedule("Oslo")()

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.IsType(t, debounceMsg{}, msg)
}
