package engine

import "strings"

// DateLayout is the day-bucket key format used in FocusLog.ByDay.
const DateLayout = "2006-01-02"

// Session length bounds enforced at the UI boundary.
const (
	MinMinutes     = 5
	MaxMinutes     = 180
	DefaultMinutes = 25
)

// PetSizes maps a size preference to the pet's height in pixels. The
// height itself only matters to a graphical host; the key is persisted
// so preferences survive across front ends.
var PetSizes = map[string]int{
	"Small":  220,
	"Medium": 300,
	"Large":  380,
}

// SizeKeys lists the size preferences in display order.
var SizeKeys = []string{"Small", "Medium", "Large"}

const DefaultSizeKey = "Small"

// TodoItem is one entry of the ordered to-do list.
type TodoItem struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// FocusLog accumulates focus seconds for a single mode.
type FocusLog struct {
	ByDay    map[string]int `json:"by_day"`
	Lifetime int            `json:"lifetime"`
}

// UIPrefs are the user preferences shared by every front end.
type UIPrefs struct {
	Mode    Mode   `json:"mode"`
	Minutes int    `json:"minutes"`
	SizeKey string `json:"size_key"`
}

// Document is the whole application state. It is the single owned
// state object: the store persists it as one unit and every mutation
// goes through methods on it or on a Tracker bound to it.
type Document struct {
	Todos    []TodoItem         `json:"todos"`
	FocusLog map[Mode]*FocusLog `json:"focus_log"`
	UI       UIPrefs            `json:"ui"`
}

// DefaultDocument returns the state a fresh install starts from: no
// todos, a zeroed log for every mode, and default preferences.
func DefaultDocument() *Document {
	doc := &Document{
		Todos:    []TodoItem{},
		FocusLog: make(map[Mode]*FocusLog, len(Modes)),
		UI: UIPrefs{
			Mode:    ModeCoding,
			Minutes: DefaultMinutes,
			SizeKey: DefaultSizeKey,
		},
	}
	for _, m := range Modes {
		doc.FocusLog[m] = &FocusLog{ByDay: map[string]int{}}
	}
	return doc
}

// Log returns the focus log for mode, creating a zeroed one if absent.
func (d *Document) Log(mode Mode) *FocusLog {
	if d.FocusLog == nil {
		d.FocusLog = make(map[Mode]*FocusLog, len(Modes))
	}
	node, ok := d.FocusLog[mode]
	if !ok || node == nil {
		node = &FocusLog{ByDay: map[string]int{}}
		d.FocusLog[mode] = node
	}
	if node.ByDay == nil {
		node.ByDay = map[string]int{}
	}
	return node
}

// Normalize repairs a loaded document so the engine always starts from
// a well-defined state: missing mode logs are recreated, preferences
// outside their valid range fall back to defaults, and todo items with
// empty text are dropped.
func (d *Document) Normalize() {
	for _, m := range Modes {
		d.Log(m)
	}

	if !d.UI.Mode.Valid() {
		d.UI.Mode = ModeCoding
	}
	if d.UI.Minutes == 0 {
		d.UI.Minutes = DefaultMinutes
	}
	d.UI.Minutes = ClampMinutes(d.UI.Minutes)
	if _, ok := PetSizes[d.UI.SizeKey]; !ok {
		d.UI.SizeKey = DefaultSizeKey
	}

	todos := d.Todos[:0]
	for _, item := range d.Todos {
		if strings.TrimSpace(item.Text) != "" {
			todos = append(todos, item)
		}
	}
	if todos == nil {
		todos = []TodoItem{}
	}
	d.Todos = todos
}

// ClampMinutes forces a session length into the allowed range.
func ClampMinutes(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > MaxMinutes {
		return MaxMinutes
	}
	return minutes
}
