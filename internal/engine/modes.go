package engine

// Mode is a named activity context with its own independent time log.
type Mode string

const (
	ModeCoding  Mode = "Coding"
	ModePTE     Mode = "PTE"
	ModeJobApps Mode = "Job Apps"
	ModeWorkout Mode = "Work out"
)

// Modes lists every known mode in display order.
var Modes = []Mode{ModeCoding, ModePTE, ModeJobApps, ModeWorkout}

func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Next returns the mode after m in display order, wrapping around.
func (m Mode) Next() Mode {
	for i, known := range Modes {
		if m == known {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Prev returns the mode before m in display order, wrapping around.
func (m Mode) Prev() Mode {
	for i, known := range Modes {
		if m == known {
			return Modes[(i+len(Modes)-1)%len(Modes)]
		}
	}
	return Modes[0]
}
