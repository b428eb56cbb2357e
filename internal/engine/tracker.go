package engine

import "time"

// trackerState tracks whether a focus session is in progress.
type trackerState int

const (
	stateIdle trackerState = iota
	stateFocusing
)

// Tracker is the focus-session state machine. It owns no I/O: the host
// drives it with user actions and a one-second heartbeat, reads its
// state for display, and persists the document after every call.
type Tracker struct {
	doc *Document
	now func() time.Time

	state             trackerState
	configuredMinutes int
	remainingSeconds  int
	startedAt         time.Time
}

func NewTracker(doc *Document) *Tracker {
	return &Tracker{doc: doc, now: time.Now}
}

// Start begins a focus session of the given length. It reports false
// without touching any state when a session is already running or the
// length is not positive; range clamping is the caller's job.
func (t *Tracker) Start(minutes int) bool {
	if t.state != stateIdle || minutes <= 0 {
		return false
	}
	t.configuredMinutes = minutes
	t.doc.UI.Minutes = minutes
	t.remainingSeconds = minutes * 60
	t.startedAt = t.now()
	t.state = stateFocusing
	return true
}

// Tick advances the countdown by one second and reports whether the
// session just finished. On finish the full configured length is
// accumulated and the tracker returns to idle.
func (t *Tracker) Tick() bool {
	if t.state != stateFocusing {
		return false
	}
	t.remainingSeconds--
	if t.remainingSeconds > 0 {
		return false
	}
	t.remainingSeconds = 0
	t.state = stateIdle
	t.Accumulate(t.doc.UI.Mode, t.configuredMinutes*60)
	return true
}

// Stop ends the session early and accumulates the elapsed seconds,
// clamped at zero against heartbeat drift. It reports the elapsed
// seconds and false when no session was running.
func (t *Tracker) Stop() (int, bool) {
	if t.state != stateFocusing {
		return 0, false
	}
	elapsed := t.configuredMinutes*60 - t.remainingSeconds
	if elapsed < 0 {
		elapsed = 0
	}
	t.remainingSeconds = 0
	t.state = stateIdle
	t.Accumulate(t.doc.UI.Mode, elapsed)
	return elapsed, true
}

// SwitchMode changes the active mode. A running session is not touched:
// its seconds land on whichever mode is active when accumulation
// happens.
func (t *Tracker) SwitchMode(mode Mode) bool {
	if !mode.Valid() {
		return false
	}
	t.doc.UI.Mode = mode
	return true
}

// Accumulate adds seconds to the mode's bucket for today and to its
// lifetime total. Zero seconds still materializes today's bucket. The
// day is read from the clock now, so a session crossing midnight posts
// wholly to the day it ends on.
func (t *Tracker) Accumulate(mode Mode, seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	day := t.now().Format(DateLayout)
	node := t.doc.Log(mode)
	node.ByDay[day] += seconds
	node.Lifetime += seconds
}

func (t *Tracker) Focusing() bool { return t.state == stateFocusing }

func (t *Tracker) Mode() Mode { return t.doc.UI.Mode }

func (t *Tracker) RemainingSeconds() int { return t.remainingSeconds }

func (t *Tracker) ConfiguredMinutes() int { return t.configuredMinutes }

// StartedAt reports when the current session began; meaningful only
// while Focusing.
func (t *Tracker) StartedAt() time.Time { return t.startedAt }

// TodaySeconds reports the seconds accumulated today for mode.
func (t *Tracker) TodaySeconds(mode Mode) int {
	return t.doc.Log(mode).ByDay[t.now().Format(DateLayout)]
}

// LifetimeSeconds reports the all-time total for mode.
func (t *Tracker) LifetimeSeconds(mode Mode) int {
	return t.doc.Log(mode).Lifetime
}
