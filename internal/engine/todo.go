package engine

import "strings"

// AddTodo appends a new unfinished item. Blank text is rejected.
func (d *Document) AddTodo(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	d.Todos = append(d.Todos, TodoItem{Text: text})
	return true
}

// ToggleTodo flips the done flag of the item at index i.
func (d *Document) ToggleTodo(i int) bool {
	if i < 0 || i >= len(d.Todos) {
		return false
	}
	d.Todos[i].Done = !d.Todos[i].Done
	return true
}

// DeleteTodo removes the item at index i, preserving the order of the
// rest.
func (d *Document) DeleteTodo(i int) bool {
	if i < 0 || i >= len(d.Todos) {
		return false
	}
	d.Todos = append(d.Todos[:i], d.Todos[i+1:]...)
	return true
}

// ClearDone removes every finished item and reports how many were
// dropped.
func (d *Document) ClearDone() int {
	kept := d.Todos[:0]
	removed := 0
	for _, item := range d.Todos {
		if item.Done {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	d.Todos = kept
	return removed
}
