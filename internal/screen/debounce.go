package screen

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer collapses a burst of Schedule calls into a single delivery of
// the last value, delay after the final call. Each Schedule starts a timer
// tagged with a fresh token and thereby cancels the previous one; Fire only
// accepts the newest token, once.
type Debouncer struct {
	delay   time.Duration
	token   uint64
	pending bool
}

type debounceMsg struct {
	token uint64
	value string
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Schedule(value string) tea.Cmd {
	d.token++
	d.pending = true
	token := d.token
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{token: token, value: value}
	})
}

func (d *Debouncer) Cancel() {
	d.token++
	d.pending = false
}

func (d *Debouncer) Pending() bool {
	return d.pending
}

func (d *Debouncer) Fire(msg debounceMsg) (string, bool) {
	if !d.pending || msg.token != d.token {
		return "", false
	}
	d.pending = false
	return msg.value, true
}
