package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yamakei/pawdoro/internal/engine"
	"github.com/yamakei/pawdoro/internal/history"
	"github.com/yamakei/pawdoro/internal/store"
)

// ============================================================
// Helpers
// ============================================================

func newTestState(t *testing.T) *appState {
	t.Helper()

	s := store.New(filepath.Join(t.TempDir(), "pawdoro.json"))
	doc := s.Load()

	j, err := history.NewMemory()
	if err != nil {
		t.Fatalf("open memory journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })

	return newAppState(doc, s, j)
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// runCmd executes a command tree, expanding batches, and returns every
// message it produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// ============================================================
// Focus view
// ============================================================

func TestFocusStartAndStop(t *testing.T) {
	st := newTestState(t)
	f := newFocusModel(st)

	f, cmd := f.update(keyMsg("s"))
	runCmd(cmd)

	if !st.tracker.Focusing() {
		t.Fatal("expected tracker to be focusing after start key")
	}
	if st.tracker.RemainingSeconds() != 25*60 {
		t.Errorf("remaining = %d, want %d", st.tracker.RemainingSeconds(), 25*60)
	}

	for i := 0; i < 10; i++ {
		f, cmd = f.update(tickMsg(time.Now()))
		runCmd(cmd)
	}
	if st.tracker.RemainingSeconds() != 25*60-10 {
		t.Errorf("remaining after 10 ticks = %d, want %d", st.tracker.RemainingSeconds(), 25*60-10)
	}

	f, cmd = f.update(keyMsg("x"))
	runCmd(cmd)

	if st.tracker.Focusing() {
		t.Fatal("expected tracker idle after stop key")
	}

	sessions, err := st.journal.List(history.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("journal sessions = %d, want 1", len(sessions))
	}
	if sessions[0].Completed {
		t.Error("stopped session should not be completed")
	}
	if sessions[0].ActualSeconds != 10 {
		t.Errorf("actual = %d, want 10", sessions[0].ActualSeconds)
	}
	if sessions[0].PlannedSeconds != 25*60 {
		t.Errorf("planned = %d, want %d", sessions[0].PlannedSeconds, 25*60)
	}
}

func TestFocusSessionCompletion(t *testing.T) {
	st := newTestState(t)
	st.doc.UI.Minutes = 5
	f := newFocusModel(st)

	f, cmd := f.update(keyMsg("s"))
	runCmd(cmd)

	for i := 0; i < 5*60; i++ {
		f, cmd = f.update(tickMsg(time.Now()))
		runCmd(cmd)
	}

	if st.tracker.Focusing() {
		t.Fatal("expected tracker idle after countdown ran out")
	}

	mode := st.doc.UI.Mode
	if got := st.tracker.LifetimeSeconds(mode); got != 5*60 {
		t.Errorf("lifetime = %d, want %d", got, 5*60)
	}

	sessions, err := st.journal.List(history.Filter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("journal sessions = %d, want 1", len(sessions))
	}
	if !sessions[0].Completed {
		t.Error("finished session should be completed")
	}
	if sessions[0].ActualSeconds != 5*60 {
		t.Errorf("actual = %d, want %d", sessions[0].ActualSeconds, 5*60)
	}
}

func TestFocusStartWhileFocusing(t *testing.T) {
	st := newTestState(t)
	f := newFocusModel(st)

	f, cmd := f.update(keyMsg("s"))
	runCmd(cmd)
	remaining := st.tracker.RemainingSeconds()

	f, cmd = f.update(keyMsg("s"))
	msgs := runCmd(cmd)

	if st.tracker.RemainingSeconds() != remaining {
		t.Error("second start should not reset the countdown")
	}
	found := false
	for _, m := range msgs {
		if sm, ok := m.(statusMsg); ok && sm.isError {
			found = true
		}
	}
	if !found {
		t.Error("expected an error status for start while focusing")
	}
}

func TestFocusModeCycleKeys(t *testing.T) {
	st := newTestState(t)
	f := newFocusModel(st)

	start := st.doc.UI.Mode
	f, cmd := f.update(tea.KeyMsg{Type: tea.KeyRight})
	runCmd(cmd)
	if st.doc.UI.Mode != start.Next() {
		t.Errorf("mode after right = %q, want %q", st.doc.UI.Mode, start.Next())
	}

	f, cmd = f.update(tea.KeyMsg{Type: tea.KeyLeft})
	runCmd(cmd)
	if st.doc.UI.Mode != start {
		t.Errorf("mode after left = %q, want %q", st.doc.UI.Mode, start)
	}
}

func TestFocusMinutesAdjust(t *testing.T) {
	st := newTestState(t)
	f := newFocusModel(st)

	f, cmd := f.update(keyMsg("+"))
	runCmd(cmd)
	if st.doc.UI.Minutes != 30 {
		t.Errorf("minutes after + = %d, want 30", st.doc.UI.Minutes)
	}

	st.doc.UI.Minutes = engine.MinMinutes
	f, cmd = f.update(keyMsg("-"))
	runCmd(cmd)
	if st.doc.UI.Minutes != engine.MinMinutes {
		t.Errorf("minutes clamped below = %d, want %d", st.doc.UI.Minutes, engine.MinMinutes)
	}

	st.doc.UI.Minutes = engine.MaxMinutes
	f, cmd = f.update(keyMsg("+"))
	runCmd(cmd)
	if st.doc.UI.Minutes != engine.MaxMinutes {
		t.Errorf("minutes clamped above = %d, want %d", st.doc.UI.Minutes, engine.MaxMinutes)
	}

	// Locked while focusing.
	f, cmd = f.update(keyMsg("s"))
	runCmd(cmd)
	before := st.doc.UI.Minutes
	f, _ = f.update(keyMsg("-"))
	if st.doc.UI.Minutes != before {
		t.Error("minutes should not change mid-session")
	}
}

// ============================================================
// Save-after-mutation
// ============================================================

func TestMutationsPersistDocument(t *testing.T) {
	st := newTestState(t)
	f := newFocusModel(st)

	f, cmd := f.update(tea.KeyMsg{Type: tea.KeyRight})
	runCmd(cmd)

	reloaded := st.store.Load()
	if reloaded.UI.Mode != st.doc.UI.Mode {
		t.Errorf("persisted mode = %q, want %q", reloaded.UI.Mode, st.doc.UI.Mode)
	}
}

func TestSaveErrorSurfacesAsStatus(t *testing.T) {
	// A file where the parent dir should go makes MkdirAll fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	s := store.New(filepath.Join(blocker, "sub", "pawdoro.json"))
	doc := s.Load()
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("create blocker: %v", err)
	}

	st := &appState{doc: doc, tracker: engine.NewTracker(doc), store: s}
	cmd := st.save()
	if cmd == nil {
		t.Fatal("expected a status command on save failure")
	}
	msg, ok := cmd().(statusMsg)
	if !ok {
		t.Fatalf("expected statusMsg, got %T", cmd())
	}
	if !msg.isError {
		t.Error("save failure status should be an error")
	}
}

// ============================================================
// Pet appearance
// ============================================================

func TestResolveAppearanceFallbackChain(t *testing.T) {
	if a := resolveAppearance(engine.ModeCoding); a.kind != appearanceAnimated {
		t.Errorf("Coding kind = %d, want animated", a.kind)
	}
	if a := resolveAppearance(engine.ModeJobApps); a.kind != appearanceStatic {
		t.Errorf("Job Apps kind = %d, want static", a.kind)
	}
	if a := resolveAppearance(engine.Mode("Nap")); a.kind != appearancePlaceholder {
		t.Errorf("unknown mode kind = %d, want placeholder", a.kind)
	}
}

func TestPingPongIndex(t *testing.T) {
	tests := []struct {
		step, n, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 1},
		{4, 3, 0},
		{5, 3, 1},
		{0, 1, 0},
		{7, 1, 0},
		{3, 2, 1},
		{4, 2, 0},
	}
	for _, tt := range tests {
		if got := pingPongIndex(tt.step, tt.n); got != tt.want {
			t.Errorf("pingPongIndex(%d, %d) = %d, want %d", tt.step, tt.n, got, tt.want)
		}
	}
}

func TestPetSetModeResetsAnimation(t *testing.T) {
	p := newPetModel(engine.ModeCoding)
	for i := 0; i < 5; i++ {
		p.advance()
	}
	if p.step == 0 {
		t.Fatal("expected animation to have advanced")
	}

	p.setMode(engine.ModeCoding)
	if p.step == 0 {
		t.Error("setMode with same mode should not reset")
	}

	p.setMode(engine.ModeWorkout)
	if p.step != 0 {
		t.Error("setMode with new mode should reset the animation")
	}
	if p.mode != engine.ModeWorkout {
		t.Errorf("mode = %q, want %q", p.mode, engine.ModeWorkout)
	}
}

func TestPetStrideSlowsAdvance(t *testing.T) {
	p := newPetModel(engine.ModePTE) // stride 3
	p.advance()
	p.advance()
	if p.step != 0 {
		t.Errorf("step after 2 ticks = %d, want 0", p.step)
	}
	p.advance()
	if p.step != 1 {
		t.Errorf("step after 3 ticks = %d, want 1", p.step)
	}
}

func TestPetPlaceholderFrame(t *testing.T) {
	p := newPetModel(engine.Mode("Nap"))
	if got := p.currentFrame(); got != "🐶" {
		t.Errorf("placeholder frame = %q", got)
	}
	p.advance() // no-op for non-animated looks
	if p.tick != 0 {
		t.Error("placeholder should not tick")
	}
}

// ============================================================
// Formatting
// ============================================================

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{-5, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{1500, "25:00"},
		{3599, "59:59"},
		{3600, "60:00"},
	}
	for _, tt := range tests {
		if got := formatCountdown(tt.secs); got != tt.want {
			t.Errorf("formatCountdown(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{0, "00:00:00"},
		{61, "00:01:01"},
		{3661, "01:01:01"},
		{86399, "23:59:59"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.secs); got != tt.want {
			t.Errorf("formatSeconds(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(1500); got != "25 min" {
		t.Errorf("formatMinutes(1500) = %q", got)
	}
	if got := formatMinutes(59); got != "0 min" {
		t.Errorf("formatMinutes(59) = %q", got)
	}
}

// ============================================================
// Todos view
// ============================================================

func TestTodoToggleAndDelete(t *testing.T) {
	st := newTestState(t)
	st.doc.AddTodo("write tests")
	st.doc.AddTodo("walk the dog")
	tm := newTodosModel(st)

	tm, cmd := tm.update(keyMsg(" "))
	runCmd(cmd)
	if !st.doc.Todos[0].Done {
		t.Error("first todo should be done after toggle")
	}

	tm, cmd = tm.update(keyMsg("d"))
	runCmd(cmd)
	if len(st.doc.Todos) != 1 {
		t.Fatalf("todos after delete = %d, want 1", len(st.doc.Todos))
	}
	if st.doc.Todos[0].Text != "walk the dog" {
		t.Errorf("remaining todo = %q", st.doc.Todos[0].Text)
	}

	reloaded := st.store.Load()
	if len(reloaded.Todos) != 1 {
		t.Errorf("persisted todos = %d, want 1", len(reloaded.Todos))
	}
}

func TestTodoClearDone(t *testing.T) {
	st := newTestState(t)
	st.doc.AddTodo("a")
	st.doc.AddTodo("b")
	st.doc.AddTodo("c")
	st.doc.ToggleTodo(0)
	st.doc.ToggleTodo(2)
	tm := newTodosModel(st)
	tm.cursor = 2

	tm, cmd := tm.update(keyMsg("c"))
	runCmd(cmd)
	if len(st.doc.Todos) != 1 {
		t.Fatalf("todos after clear = %d, want 1", len(st.doc.Todos))
	}
	if st.doc.Todos[0].Text != "b" {
		t.Errorf("survivor = %q, want \"b\"", st.doc.Todos[0].Text)
	}
	if tm.cursor != 0 {
		t.Errorf("cursor = %d, want 0", tm.cursor)
	}
}

func TestTodoCursorBounds(t *testing.T) {
	st := newTestState(t)
	tm := newTodosModel(st)

	// Empty list: nothing to toggle or delete, no panic.
	tm, _ = tm.update(keyMsg(" "))
	tm, _ = tm.update(keyMsg("d"))
	tm, _ = tm.update(tea.KeyMsg{Type: tea.KeyDown})
	if tm.cursor != 0 {
		t.Errorf("cursor on empty list = %d, want 0", tm.cursor)
	}
}
