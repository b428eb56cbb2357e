package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/yamakei/pawdoro/internal/history"
	"github.com/yamakei/pawdoro/internal/store"
	"github.com/yamakei/pawdoro/internal/tui"
)

func main() {
	docPath, err := store.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	s := store.New(docPath)
	doc := s.Load()

	dbPath, err := history.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	j, err := history.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening history: %v\n", err)
		os.Exit(1)
	}
	defer j.Close()

	app := tui.NewApp(doc, s, j)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
