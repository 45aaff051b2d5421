// Package input turns raw key presses into high-level actions for walking a
// generated level.
package input

import (
	"sort"

	"roomforge/pkg/engine/world"
)

// Action represents a high-level intent.
type Action int

const (
	ActionNone Action = iota

	// Door traversal
	ActionMoveNorth
	ActionMoveEast
	ActionMoveSouth
	ActionMoveWest

	// Meta
	ActionRegenerate // Regenerate the current room's content
	ActionRestart    // Back to the start room
	ActionDump       // Write the full level dump to a file
	ActionHelp
	ActionQuit
)

// bindings maps key codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]Action{
	// Movement (arrows, NSEW, Vim)
	"arrow_up":    ActionMoveNorth,
	"n":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_right": ActionMoveEast,
	"e":           ActionMoveEast,
	"l":           ActionMoveEast,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"w":           ActionMoveWest,
	"h":           ActionMoveWest,

	"r": ActionRegenerate,
	"0": ActionRestart,
	"d": ActionDump,
	"?": ActionHelp,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
}

// MapToAction applies the bindings to a key code
func MapToAction(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// Direction returns the wall a movement action walks through
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveNorth:
		return world.North, true
	case ActionMoveEast:
		return world.East, true
	case ActionMoveSouth:
		return world.South, true
	case ActionMoveWest:
		return world.West, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Go North"
	case ActionMoveEast:
		return "Go East"
	case ActionMoveSouth:
		return "Go South"
	case ActionMoveWest:
		return "Go West"
	case ActionRegenerate:
		return "Regenerate Room"
	case ActionRestart:
		return "Back To Start"
	case ActionDump:
		return "Dump Level"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// BindingsByAction returns the bindings grouped by action with the codes
// of each action sorted.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for _, codes := range result {
		sort.Strings(codes)
	}
	return result
}
