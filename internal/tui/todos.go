package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type todosModel struct {
	state  *appState
	width  int
	height int

	cursor     int
	form       *huh.Form
	formActive bool
	inputText  *string
}

func newTodosModel(st *appState) todosModel {
	return todosModel{state: st}
}

func (t *todosModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t *todosModel) isFormActive() bool {
	return t.formActive
}

func (t *todosModel) clampCursor() {
	n := len(t.state.doc.Todos)
	if n == 0 {
		t.cursor = 0
		return
	}
	if t.cursor >= n {
		t.cursor = n - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t todosModel) update(msg tea.Msg) (todosModel, tea.Cmd) {
	if t.formActive {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.New):
			t.inputText = new(string)
			t.form = huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("New todo").
						Placeholder("What needs doing?").
						Value(t.inputText),
				),
			).WithShowHelp(false)
			t.formActive = true
			return t, t.form.Init()

		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}

		case key.Matches(msg, keys.Down):
			if t.cursor < len(t.state.doc.Todos)-1 {
				t.cursor++
			}

		case key.Matches(msg, keys.Toggle):
			if t.state.doc.ToggleTodo(t.cursor) {
				return t, t.state.save()
			}

		case key.Matches(msg, keys.Delete):
			if t.state.doc.DeleteTodo(t.cursor) {
				t.clampCursor()
				return t, tea.Batch(
					t.state.save(),
					func() tea.Msg { return statusMsg{text: "Todo deleted"} },
				)
			}

		case key.Matches(msg, keys.ClearDone):
			if n := t.state.doc.ClearDone(); n > 0 {
				t.clampCursor()
				return t, tea.Batch(
					t.state.save(),
					func() tea.Msg {
						return statusMsg{text: fmt.Sprintf("Cleared %d done", n)}
					},
				)
			}
		}
	}
	return t, nil
}

func (t todosModel) updateForm(msg tea.Msg) (todosModel, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && key.Matches(kmsg, keys.Back) {
		t.formActive = false
		t.form = nil
		return t, nil
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		if t.state.doc.AddTodo(*t.inputText) {
			t.cursor = len(t.state.doc.Todos) - 1
			return t, tea.Batch(
				t.state.save(),
				func() tea.Msg { return statusMsg{text: "Todo added"} },
			)
		}
		return t, nil
	}
	return t, cmd
}

func (t todosModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		return panelStyle.Width(w).Render(t.form.View())
	}

	title := titleStyle.Render("Todos")

	var rows []string
	if len(t.state.doc.Todos) == 0 {
		rows = append(rows, mutedStyle.Render("No todos yet. Press 'n' to add one."))
	}
	for i, item := range t.state.doc.Todos {
		check := "[ ]"
		style := normalItemStyle
		if item.Done {
			check = "[x]"
			style = doneItemStyle
		}
		line := fmt.Sprintf("%s %s", check, item.Text)
		if i == t.cursor {
			rows = append(rows, selectedItemStyle.Render("> ")+style.Render(line))
		} else {
			rows = append(rows, "  "+style.Render(line))
		}
	}

	done := 0
	for _, item := range t.state.doc.Todos {
		if item.Done {
			done++
		}
	}
	summary := mutedStyle.Render(fmt.Sprintf("%d/%d done", done, len(t.state.doc.Todos)))

	controls := mutedStyle.Render("n: new  space: toggle  d: delete  c: clear done")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		summary,
		controls,
	)
	return panelStyle.Width(w).Render(content)
}
