package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yamakei/pawdoro/internal/engine"
	"github.com/yamakei/pawdoro/internal/history"
)

type reportsModel struct {
	state  *appState
	width  int
	height int

	totals []history.DayTotal
	// completed/stats for the visible window
	completedCount int
	completedSecs  int64
	offset         int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newReportsModel(st *appState) reportsModel {
	return reportsModel{
		state: st,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	totals         []history.DayTotal
	completedCount int
	completedSecs  int64
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		from, to := r.dateRange()
		totals, _ := r.state.journal.DailyTotals(from, to)
		count, secs, _ := r.state.journal.CompletedStats(from, to)
		return reportsDataMsg{totals: totals, completedCount: count, completedSecs: secs}
	}
}

// dateRange returns the half-open [from, to) window of the current
// 7-day page.
func (r reportsModel) dateRange() (time.Time, time.Time) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	end := today.AddDate(0, 0, 1-7*r.offset)
	start := end.AddDate(0, 0, -7)
	return start, end
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		r.totals = msg.totals
		r.completedCount = msg.completedCount
		r.completedSecs = msg.completedSecs
		r.buildChart()
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			r.offset++
			return r, r.refresh()
		case key.Matches(msg, keys.Right):
			if r.offset > 0 {
				r.offset--
			}
			return r, r.refresh()
		}
	}
	return r, nil
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if r.height > 30 {
		chartHeight = 14
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	from, to := r.dateRange()

	var bars []barchart.BarData
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(engine.DateLayout)
		label := d.Format("Mon 02")

		var values []barchart.BarValue
		for _, t := range r.totals {
			if t.Date == dateStr {
				hours := float64(t.TotalSeconds) / 3600.0
				values = append(values, barchart.BarValue{
					Name:  string(t.Mode),
					Value: hours,
					Style: lipgloss.NewStyle().Foreground(modeColor(t.Mode)),
				})
			}
		}

		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	from, to := r.dateRange()
	dateLabel := mutedStyle.Render(fmt.Sprintf("%s — %s", from.Format("Jan 02"), to.Add(-24*time.Hour).Format("Jan 02, 2006")))

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ", dateLabel,
	)

	chartView := r.chart.View()

	legend := r.renderLegend()

	completed := mutedStyle.Render(fmt.Sprintf("  %d completed sessions, %s focused this week",
		r.completedCount, formatSeconds(r.completedSecs)))

	tableView := r.renderTotalsTable(w)

	lifetime := r.renderLifetimeTable()

	nav := mutedStyle.Render("  ←/→: earlier/later")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", legend, completed, "", tableView, "", lifetime, "", nav,
		),
	)
}

func (r reportsModel) renderTotalsTable(w int) string {
	if len(r.totals) == 0 {
		return mutedStyle.Render("  No sessions in this period")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-12s %10s %9s", "Date", "Mode", "Duration", "Sessions")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 48))))

	for _, t := range r.totals {
		dot := lipgloss.NewStyle().Foreground(modeColor(t.Mode)).Render("●")
		rows = append(rows, fmt.Sprintf("  %-12s %s %-10s %10s %9d",
			t.Date, dot, t.Mode, formatSeconds(t.TotalSeconds), t.SessionCount,
		))
	}

	return strings.Join(rows, "\n")
}

// renderLifetimeTable shows the document's accumulated totals, which
// include partial sessions the journal never sees.
func (r reportsModel) renderLifetimeTable() string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %10s %12s", "Mode", "Today", "Lifetime")))
	for _, m := range engine.Modes {
		dot := lipgloss.NewStyle().Foreground(modeColor(m)).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-10s %10s %12s",
			dot, m,
			formatSeconds(int64(r.state.tracker.TodaySeconds(m))),
			formatSeconds(int64(r.state.tracker.LifetimeSeconds(m))),
		))
	}
	return strings.Join(rows, "\n")
}

func (r reportsModel) renderLegend() string {
	seen := make(map[engine.Mode]bool)
	var items []string
	for _, t := range r.totals {
		if seen[t.Mode] {
			continue
		}
		seen[t.Mode] = true
		dot := lipgloss.NewStyle().Foreground(modeColor(t.Mode)).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, t.Mode))
	}
	if len(items) == 0 {
		return ""
	}
	return "  " + strings.Join(items, "  ")
}
