package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yamakei/pawdoro/internal/engine"
	"github.com/yamakei/pawdoro/internal/history"
	"github.com/yamakei/pawdoro/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewFocus viewState = iota
	viewTodos
	viewReports
	viewSettings
)

var viewNames = []string{"Focus", "Todos", "Reports", "Settings"}

// appState is the one owned application-state object. Views share it by
// pointer; there are no package-level mutables.
type appState struct {
	doc     *engine.Document
	tracker *engine.Tracker
	store   *store.Store
	journal *history.Journal
}

func newAppState(doc *engine.Document, st *store.Store, j *history.Journal) *appState {
	return &appState{
		doc:     doc,
		tracker: engine.NewTracker(doc),
		store:   st,
		journal: j,
	}
}

// save persists the whole document. Every mutation path calls it before
// returning to the event loop; failures surface in the footer, never
// crash the app.
func (s *appState) save() tea.Cmd {
	if err := s.store.Save(s.doc); err != nil {
		return func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Save error: %v", err), isError: true}
		}
	}
	return nil
}

// --- Messages ---

type tickMsg time.Time

type statusMsg struct {
	text    string
	isError bool
}

type sessionStartedMsg struct{}

type sessionEndedMsg struct {
	elapsed   int
	completed bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// formatCountdown renders a session countdown as mm:ss.
func formatCountdown(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func formatSeconds(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatMinutes(secs int) string {
	return fmt.Sprintf("%d min", secs/60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
