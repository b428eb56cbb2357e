package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/yamakei/pawdoro/internal/engine"
)

type settingsModel struct {
	state  *appState
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	minutes *string
	mode    *string
	sizeKey *string
}

func newSettingsModel(st *appState) settingsModel {
	mins, mode, size := "", "", ""
	return settingsModel{
		state:   st,
		minutes: &mins,
		mode:    &mode,
		sizeKey: &size,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *settingsModel) isFormActive() bool {
	return s.formActive
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	ui := s.state.doc.UI
	*s.minutes = strconv.Itoa(ui.Minutes)
	*s.mode = string(ui.Mode)
	*s.sizeKey = ui.SizeKey

	var modeOpts []huh.Option[string]
	for _, m := range engine.Modes {
		modeOpts = append(modeOpts, huh.NewOption(string(m), string(m)))
	}
	var sizeOpts []huh.Option[string]
	for _, k := range engine.SizeKeys {
		sizeOpts = append(sizeOpts, huh.NewOption(fmt.Sprintf("%s (%dpx)", k, engine.PetSizes[k]), k))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Session length (min, %d-%d)", engine.MinMinutes, engine.MaxMinutes)).
				Value(s.minutes),
			huh.NewSelect[string]().Title("Focus mode").
				Options(modeOpts...).Value(s.mode),
			huh.NewSelect[string]().Title("Pet size").
				Options(sizeOpts...).Value(s.sizeKey),
		).Title("Preferences"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Back) {
		s.formActive = false
		s.form = nil
		return s, nil
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		return s, s.apply()
	}
	return s, cmd
}

// apply writes the edited values back onto the document, clamping and
// defaulting rather than rejecting.
func (s settingsModel) apply() tea.Cmd {
	doc := s.state.doc

	if mins, err := strconv.Atoi(*s.minutes); err == nil {
		doc.UI.Minutes = engine.ClampMinutes(mins)
	}

	if mode := engine.Mode(*s.mode); mode.Valid() {
		s.state.tracker.SwitchMode(mode)
	}

	if _, ok := engine.PetSizes[*s.sizeKey]; ok {
		doc.UI.SizeKey = *s.sizeKey
	}

	return tea.Batch(
		s.state.save(),
		func() tea.Msg { return statusMsg{text: "Settings saved"} },
	)
}

func (s settingsModel) view() string {
	w := s.width - 4

	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	ui := s.state.doc.UI
	row := func(label, value string) string {
		return fmt.Sprintf("  %s %s",
			lipgloss.NewStyle().Width(20).Render(label),
			highlightStyle.Render(value),
		)
	}

	rows := []string{
		title,
		"",
		row("Session length", fmt.Sprintf("%d min", ui.Minutes)),
		row("Focus mode", string(ui.Mode)),
		row("Pet size", fmt.Sprintf("%s (%dpx)", ui.SizeKey, engine.PetSizes[ui.SizeKey])),
		"",
		mutedStyle.Render("Press enter to edit"),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
