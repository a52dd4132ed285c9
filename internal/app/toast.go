package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastDuration is how long a toast stays visible without replacement.
const toastDuration = 3000 * time.Millisecond

// toast is the single-slot transient notification. Showing a new toast
// replaces the current one and invalidates its pending dismissal.
type toast struct {
	text    string
	isErr   bool
	visible bool
}

// showToast replaces the toast and schedules its dismissal. The
// returned command carries the current sequence number; expiry messages
// with a stale number are ignored, which is what cancels the previous
// toast's timer on replacement.
func (a *App) showToast(text string, isErr bool) tea.Cmd {
	a.toastSeq++
	a.toast = toast{text: text, isErr: isErr, visible: true}
	return a.toastTick(toastDuration, a.toastSeq)
}

func defaultToastTick(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// fail records the error in the banner and raises an error toast. The
// banner stays until dismissed or overwritten; the toast auto-expires.
func (a *App) fail(text string) tea.Cmd {
	a.banner = text
	return a.showToast(text, true)
}
