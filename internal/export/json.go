package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/yamakei/pawdoro/internal/history"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID         int64  `json:"id"`
	Mode       string `json:"mode"`
	StartedAt  string `json:"started_at"`
	EndedAt    string `json:"ended_at"`
	PlannedSec int    `json:"planned_seconds"`
	ActualSec  int    `json:"actual_seconds"`
	Duration   string `json:"duration"`
	Completed  bool   `json:"completed"`
}

func ToJSON(sessions []history.Session, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		export.Sessions = append(export.Sessions, jsonSession{
			ID:         s.ID,
			Mode:       string(s.Mode),
			StartedAt:  s.StartedAt.Local().Format(time.RFC3339),
			EndedAt:    s.EndedAt.Local().Format(time.RFC3339),
			PlannedSec: s.PlannedSeconds,
			ActualSec:  s.ActualSeconds,
			Duration:   formatDuration(int64(s.ActualSeconds)),
			Completed:  s.Completed,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
