package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone          Action = iota
	ActionUp                   // move cursor up
	ActionDown                 // move cursor down
	ActionLeft                 // move cursor left
	ActionRight                // move cursor right
	ActionToggle               // flip the cell under the cursor
	ActionPause                // pause/resume the tick loop
	ActionStep                 // advance exactly one generation
	ActionRestart              // reseed with current settings
	ActionClear                // kill every cell
	ActionCycleTopology        // square -> triangle -> hexagon
	ActionNextRule             // switch to the next preset rule
	ActionEditRule             // type a rule string
	ActionFaster               // raise tick rate
	ActionSlower               // lower tick rate
	ActionHelp                 // toggle full help
	ActionQuit                 // exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggle:
		return "Toggle"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionRestart:
		return "Restart"
	case ActionClear:
		return "Clear"
	case ActionCycleTopology:
		return "CycleTopology"
	case ActionNextRule:
		return "NextRule"
	case ActionEditRule:
		return "EditRule"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
