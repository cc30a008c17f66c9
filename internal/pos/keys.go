package pos

import "github.com/csheth/weighbridge/internal/entity"

// Key names used by KeyEvent. Printable keys use their own text.
const (
	KeyEsc       = "esc"
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyBackspace = "backspace"
	KeyF2        = "f2"
	KeyF3        = "f3"
)

// KeyEvent is a key press after the terminal layer has decoded it. Mod is
// the platform command modifier. Typing is set when a text input has focus.
type KeyEvent struct {
	Key    string
	Mod    bool
	Typing bool
}

// Context is the focus state the dispatcher branches on.
type Context struct {
	Field       entity.Kind
	PaletteOpen bool
	HelpOpen    bool
}

// ActionType names what a key does.
type ActionType int

const (
	ActionNone ActionType = iota
	// ActionInput means the key belongs to the focused text input.
	ActionInput
	ActionOpenPalette
	ActionClosePalette
	ActionOpenField
	ActionCloseField
	ActionCloseHelp
	ActionToggleHelp
	ActionMoveHighlight
	ActionConfirm
	ActionCycleField
	ActionClearSelection
	ActionCaptureGross
	ActionCaptureTare
	ActionFinalize
	ActionRepeatLast
	ActionRepeatProduct
	ActionToggleOnline
	ActionNewTicket
	ActionQuickRepeat
)

var actionNames = map[ActionType]string{
	ActionNone:           "none",
	ActionInput:          "input",
	ActionOpenPalette:    "open-palette",
	ActionClosePalette:   "close-palette",
	ActionOpenField:      "open-field",
	ActionCloseField:     "close-field",
	ActionCloseHelp:      "close-help",
	ActionToggleHelp:     "toggle-help",
	ActionMoveHighlight:  "move-highlight",
	ActionConfirm:        "confirm",
	ActionCycleField:     "cycle-field",
	ActionClearSelection: "clear-selection",
	ActionCaptureGross:   "capture-gross",
	ActionCaptureTare:    "capture-tare",
	ActionFinalize:       "finalize",
	ActionRepeatLast:     "repeat-last",
	ActionRepeatProduct:  "repeat-product",
	ActionToggleOnline:   "toggle-online",
	ActionNewTicket:      "new-ticket",
	ActionQuickRepeat:    "quick-repeat",
}

func (a ActionType) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Action is the dispatcher's verdict for one key.
type Action struct {
	Type  ActionType
	Kind  entity.Kind // ActionOpenField
	Delta int         // ActionMoveHighlight
	Slot  int         // ActionQuickRepeat, zero based
}

// QuickRepeatSlots is how many earlier loads can be recalled by digit.
const QuickRepeatSlots = 5

var fieldHotkeys = map[string]entity.Kind{
	"t": entity.KindTruck,
	"c": entity.KindCustomer,
	"o": entity.KindOrder,
	"p": entity.KindProduct,
}

// Dispatch maps a key to an action. Earlier rules win:
//
//  1. Mod+K opens the palette from anywhere.
//  2. Esc closes the palette, else the field, else help.
//  3. An open palette takes arrows and Enter.
//  4. An open field takes arrows, Enter, Tab and Mod+Backspace.
//  5. While typing only the reserved capture and finalize keys act; the
//     rest is text for the input.
//  6. Otherwise the idle hotkeys apply.
func Dispatch(ev KeyEvent, ctx Context) Action {
	if ev.Mod && ev.Key == "k" {
		return Action{Type: ActionOpenPalette}
	}
	if ev.Key == KeyEsc {
		switch {
		case ctx.PaletteOpen:
			return Action{Type: ActionClosePalette}
		case ctx.Field != "":
			return Action{Type: ActionCloseField}
		case ctx.HelpOpen:
			return Action{Type: ActionCloseHelp}
		}
		return Action{}
	}
	if ctx.PaletteOpen {
		if a, ok := navigate(ev); ok {
			return a
		}
	} else if ctx.Field != "" {
		if a, ok := navigate(ev); ok {
			return a
		}
		switch {
		case ev.Key == KeyTab && !ev.Mod:
			return Action{Type: ActionCycleField}
		case ev.Key == KeyBackspace && ev.Mod:
			return Action{Type: ActionClearSelection}
		}
	}
	typing := ev.Typing || ctx.PaletteOpen || ctx.Field != ""
	if a, ok := reserved(ev); ok {
		return a
	}
	if typing {
		return Action{Type: ActionInput}
	}
	return idle(ev, ctx)
}

func navigate(ev KeyEvent) (Action, bool) {
	if ev.Mod {
		return Action{}, false
	}
	switch ev.Key {
	case KeyUp:
		return Action{Type: ActionMoveHighlight, Delta: -1}, true
	case KeyDown:
		return Action{Type: ActionMoveHighlight, Delta: 1}, true
	case KeyEnter:
		return Action{Type: ActionConfirm}, true
	}
	return Action{}, false
}

// reserved keys act even while a text input has focus.
func reserved(ev KeyEvent) (Action, bool) {
	switch {
	case ev.Key == KeyF2 && !ev.Mod:
		return Action{Type: ActionCaptureGross}, true
	case ev.Key == KeyF3 && !ev.Mod:
		return Action{Type: ActionCaptureTare}, true
	case ev.Mod && (ev.Key == KeyEnter || ev.Key == "f"):
		return Action{Type: ActionFinalize}, true
	}
	return Action{}, false
}

func idle(ev KeyEvent, ctx Context) Action {
	if ev.Mod {
		if kind, ok := fieldHotkeys[ev.Key]; ok {
			return Action{Type: ActionOpenField, Kind: kind}
		}
		switch ev.Key {
		case KeyBackspace:
			return Action{Type: ActionClearSelection}
		case "/":
			return Action{Type: ActionToggleHelp}
		}
		return Action{}
	}
	if ev.Key == "?" {
		return Action{Type: ActionToggleHelp}
	}
	if ctx.HelpOpen {
		return Action{}
	}
	switch ev.Key {
	case "g":
		return Action{Type: ActionCaptureGross}
	case "t":
		return Action{Type: ActionCaptureTare}
	case "f", KeyEnter:
		return Action{Type: ActionFinalize}
	case "r":
		return Action{Type: ActionRepeatLast}
	case "p":
		return Action{Type: ActionRepeatProduct}
	case "o":
		return Action{Type: ActionToggleOnline}
	case "n":
		return Action{Type: ActionNewTicket}
	}
	if len(ev.Key) == 1 && ev.Key[0] >= '1' && ev.Key[0] < '1'+QuickRepeatSlots {
		return Action{Type: ActionQuickRepeat, Slot: int(ev.Key[0] - '1')}
	}
	return Action{}
}
