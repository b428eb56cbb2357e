package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/yamakei/pawdoro/internal/history"
)

func ToCSV(sessions []history.Session, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Mode", "Started", "Ended", "Planned (s)", "Actual (s)", "Duration", "Completed"}); err != nil {
		return err
	}

	for _, s := range sessions {
		completed := "no"
		if s.Completed {
			completed = "yes"
		}
		row := []string{
			fmt.Sprintf("%d", s.ID),
			string(s.Mode),
			s.StartedAt.Local().Format(time.RFC3339),
			s.EndedAt.Local().Format(time.RFC3339),
			fmt.Sprintf("%d", s.PlannedSeconds),
			fmt.Sprintf("%d", s.ActualSeconds),
			formatDuration(int64(s.ActualSeconds)),
			completed,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
