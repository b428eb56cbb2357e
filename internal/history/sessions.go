package history

import (
	"fmt"
	"time"

	"github.com/yamakei/pawdoro/internal/engine"
)

// Session is one recorded focus interval between start and
// stop/auto-finish.
type Session struct {
	ID             int64
	Mode           engine.Mode
	PlannedSeconds int
	ActualSeconds  int
	StartedAt      time.Time
	EndedAt        time.Time
	Completed      bool
}

// Filter selects sessions in queries.
type Filter struct {
	Mode  *engine.Mode
	From  *time.Time
	To    *time.Time
	Limit int
}

// DayTotal is the aggregated focus time for one mode on one day.
type DayTotal struct {
	Date         string
	Mode         engine.Mode
	TotalSeconds int64
	SessionCount int
}

// Record inserts a finished session.
func (j *Journal) Record(mode engine.Mode, planned, actual int, startedAt, endedAt time.Time, completed bool) (*Session, error) {
	completedInt := 0
	if completed {
		completedInt = 1
	}
	res, err := j.db.Exec(
		`INSERT INTO focus_sessions (mode, planned_seconds, actual_seconds, started_at, ended_at, completed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(mode), planned, actual,
		startedAt.UTC().Format(time.RFC3339), endedAt.UTC().Format(time.RFC3339),
		completedInt,
	)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	id, _ := res.LastInsertId()
	return j.Get(id)
}

func (j *Journal) Get(id int64) (*Session, error) {
	s := &Session{}
	var mode, startedAt, endedAt string
	var completed int

	err := j.db.QueryRow(
		`SELECT id, mode, planned_seconds, actual_seconds, started_at, ended_at, completed
		 FROM focus_sessions WHERE id = ?`, id,
	).Scan(&s.ID, &mode, &s.PlannedSeconds, &s.ActualSeconds, &startedAt, &endedAt, &completed)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	s.Mode = engine.Mode(mode)
	s.Completed = completed == 1
	s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	s.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
	return s, nil
}

func (j *Journal) List(f Filter) ([]Session, error) {
	query := `SELECT id, mode, planned_seconds, actual_seconds, started_at, ended_at, completed
	 FROM focus_sessions WHERE 1=1`
	var args []any

	if f.Mode != nil {
		query += ` AND mode = ?`
		args = append(args, string(*f.Mode))
	}
	if f.From != nil {
		query += ` AND started_at >= ?`
		args = append(args, f.From.UTC().Format(time.RFC3339))
	}
	if f.To != nil {
		query += ` AND started_at < ?`
		args = append(args, f.To.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY started_at DESC`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var mode, startedAt, endedAt string
		var completed int
		if err := rows.Scan(&s.ID, &mode, &s.PlannedSeconds, &s.ActualSeconds, &startedAt, &endedAt, &completed); err != nil {
			return nil, err
		}
		s.Mode = engine.Mode(mode)
		s.Completed = completed == 1
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		s.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DailyTotals aggregates recorded time per mode per day over [from, to).
func (j *Journal) DailyTotals(from, to time.Time) ([]DayTotal, error) {
	rows, err := j.db.Query(`
		SELECT date(started_at) AS day, mode,
		       COALESCE(SUM(actual_seconds), 0), COUNT(*)
		FROM focus_sessions
		WHERE started_at >= ? AND started_at < ?
		GROUP BY day, mode
		ORDER BY day, mode`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var totals []DayTotal
	for rows.Next() {
		var dt DayTotal
		var mode string
		if err := rows.Scan(&dt.Date, &mode, &dt.TotalSeconds, &dt.SessionCount); err != nil {
			return nil, err
		}
		dt.Mode = engine.Mode(mode)
		totals = append(totals, dt)
	}
	return totals, rows.Err()
}

// CompletedStats reports how many sessions ran to their full length in
// [from, to) and how much focus time they carried.
func (j *Journal) CompletedStats(from, to time.Time) (completed int, totalSeconds int64, err error) {
	err = j.db.QueryRow(`
		SELECT COUNT(*), COALESCE(SUM(actual_seconds), 0)
		FROM focus_sessions
		WHERE completed = 1
		  AND started_at >= ? AND started_at < ?`,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339),
	).Scan(&completed, &totalSeconds)
	return
}
