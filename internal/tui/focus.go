package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yamakei/pawdoro/internal/engine"
)

// minutesStep is how far +/- moves the session length.
const minutesStep = 5

type focusModel struct {
	state  *appState
	width  int
	height int

	pet petModel
}

func newFocusModel(st *appState) focusModel {
	return focusModel{
		state: st,
		pet:   newPetModel(st.doc.UI.Mode),
	}
}

func (f *focusModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

func (f focusModel) update(msg tea.Msg) (focusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Settings may have switched the mode behind our back.
		f.pet.setMode(f.state.doc.UI.Mode)
		f.pet.advance()

		if !f.state.tracker.Focusing() {
			return f, nil
		}
		finished := f.state.tracker.Tick()
		saveCmd := f.state.save()
		if !finished {
			return f, saveCmd
		}
		planned := f.state.tracker.ConfiguredMinutes() * 60
		return f, tea.Batch(
			saveCmd,
			f.recordSession(planned, true),
			func() tea.Msg { return sessionEndedMsg{elapsed: planned, completed: true} },
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return f.startSession()

		case key.Matches(msg, keys.Stop):
			return f.stopSession()

		case key.Matches(msg, keys.Left):
			return f.switchMode(f.state.doc.UI.Mode.Prev())

		case key.Matches(msg, keys.Right):
			return f.switchMode(f.state.doc.UI.Mode.Next())

		case key.Matches(msg, keys.Plus):
			return f.adjustMinutes(minutesStep)

		case key.Matches(msg, keys.Minus):
			return f.adjustMinutes(-minutesStep)
		}
	}
	return f, nil
}

func (f focusModel) startSession() (focusModel, tea.Cmd) {
	if f.state.tracker.Focusing() {
		return f, func() tea.Msg {
			return statusMsg{text: "Already focusing", isError: true}
		}
	}
	minutes := engine.ClampMinutes(f.state.doc.UI.Minutes)
	if !f.state.tracker.Start(minutes) {
		return f, nil
	}
	return f, tea.Batch(
		f.state.save(),
		func() tea.Msg { return sessionStartedMsg{} },
	)
}

func (f focusModel) stopSession() (focusModel, tea.Cmd) {
	elapsed, ok := f.state.tracker.Stop()
	if !ok {
		return f, nil
	}
	return f, tea.Batch(
		f.state.save(),
		f.recordSession(elapsed, false),
		func() tea.Msg { return sessionEndedMsg{elapsed: elapsed, completed: false} },
	)
}

func (f focusModel) switchMode(mode engine.Mode) (focusModel, tea.Cmd) {
	if !f.state.tracker.SwitchMode(mode) {
		return f, nil
	}
	f.pet.setMode(mode)
	return f, f.state.save()
}

func (f focusModel) adjustMinutes(delta int) (focusModel, tea.Cmd) {
	if f.state.tracker.Focusing() {
		return f, nil
	}
	f.state.doc.UI.Minutes = engine.ClampMinutes(f.state.doc.UI.Minutes + delta)
	return f, f.state.save()
}

// recordSession appends the just-finished session to the journal.
func (f focusModel) recordSession(actual int, completed bool) tea.Cmd {
	mode := f.state.tracker.Mode()
	planned := f.state.tracker.ConfiguredMinutes() * 60
	startedAt := f.state.tracker.StartedAt()

	return func() tea.Msg {
		if f.state.journal == nil {
			return nil
		}
		if _, err := f.state.journal.Record(mode, planned, actual, startedAt, time.Now(), completed); err != nil {
			return statusMsg{text: fmt.Sprintf("History error: %v", err), isError: true}
		}
		return nil
	}
}

func (f focusModel) view() string {
	w := f.width - 4

	pet := f.pet.view()

	// Mode row
	var tabs []string
	for _, m := range engine.Modes {
		label := string(m)
		if m == f.state.doc.UI.Mode {
			tabs = append(tabs, lipgloss.NewStyle().Bold(true).Foreground(modeColor(m)).Render("[ "+label+" ]"))
		} else {
			tabs = append(tabs, mutedStyle.Render("  "+label+"  "))
		}
	}
	modeRow := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	// Countdown
	var timeDisplay, indicator string
	if f.state.tracker.Focusing() {
		timeDisplay = timerRunningStyle.Width(w - 6).Render(formatCountdown(f.state.tracker.RemainingSeconds()))
		indicator = successStyle.Render("●  FOCUSING")
	} else {
		timeDisplay = timerStyle.Width(w - 6).Render(formatCountdown(f.state.doc.UI.Minutes * 60))
		indicator = mutedStyle.Render("■  IDLE")
	}

	// Per-mode totals, shown like the desktop companion's stats labels.
	mode := f.state.doc.UI.Mode
	today := f.state.tracker.TodaySeconds(mode)
	lifetime := f.state.tracker.LifetimeSeconds(mode)
	stats := mutedStyle.Render(fmt.Sprintf("%s today: %s   lifetime: %s",
		mode, formatMinutes(today), formatMinutes(lifetime)))

	var controls string
	if f.state.tracker.Focusing() {
		controls = mutedStyle.Render("x: stop  ←/→: switch mode")
	} else {
		controls = mutedStyle.Render("s: start  +/-: minutes  ←/→: switch mode")
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		pet,
		"",
		modeRow,
		"",
		timeDisplay,
		indicator,
		"",
		stats,
		"",
		controls,
	)

	if f.state.tracker.Focusing() {
		return activePanelStyle.Width(w).Render(content)
	}
	return panelStyle.Width(w).Render(content)
}
