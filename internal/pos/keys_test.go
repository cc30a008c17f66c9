package pos

import (
	"testing"

	"github.com/csheth/weighbridge/internal/entity"
)

func TestDispatch(t *testing.T) {
	idle := Context{}
	field := Context{Field: entity.KindTruck}
	palette := Context{PaletteOpen: true}
	help := Context{HelpOpen: true}

	cases := []struct {
		name string
		ev   KeyEvent
		ctx  Context
		want Action
	}{
		{"palette from idle", KeyEvent{Key: "k", Mod: true}, idle, Action{Type: ActionOpenPalette}},
		{"palette from field", KeyEvent{Key: "k", Mod: true, Typing: true}, field, Action{Type: ActionOpenPalette}},
		{"esc closes palette first", KeyEvent{Key: KeyEsc}, Context{PaletteOpen: true, Field: entity.KindOrder, HelpOpen: true}, Action{Type: ActionClosePalette}},
		{"esc closes field", KeyEvent{Key: KeyEsc}, Context{Field: entity.KindOrder, HelpOpen: true}, Action{Type: ActionCloseField}},
		{"esc closes help", KeyEvent{Key: KeyEsc}, help, Action{Type: ActionCloseHelp}},
		{"esc idle", KeyEvent{Key: KeyEsc}, idle, Action{}},
		{"palette down", KeyEvent{Key: KeyDown}, palette, Action{Type: ActionMoveHighlight, Delta: 1}},
		{"palette enter", KeyEvent{Key: KeyEnter}, palette, Action{Type: ActionConfirm}},
		{"palette text", KeyEvent{Key: "t"}, palette, Action{Type: ActionInput}},
		{"field up", KeyEvent{Key: KeyUp}, field, Action{Type: ActionMoveHighlight, Delta: -1}},
		{"field tab", KeyEvent{Key: KeyTab}, field, Action{Type: ActionCycleField}},
		{"field clear", KeyEvent{Key: KeyBackspace, Mod: true}, field, Action{Type: ActionClearSelection}},
		{"field backspace edits", KeyEvent{Key: KeyBackspace}, field, Action{Type: ActionInput}},
		{"field letter is text", KeyEvent{Key: "g"}, field, Action{Type: ActionInput}},
		{"field hotkey suppressed", KeyEvent{Key: "c", Mod: true}, field, Action{Type: ActionInput}},
		{"field gross reserved", KeyEvent{Key: KeyF2}, field, Action{Type: ActionCaptureGross}},
		{"palette tare reserved", KeyEvent{Key: KeyF3}, palette, Action{Type: ActionCaptureTare}},
		{"field finalize reserved", KeyEvent{Key: KeyEnter, Mod: true}, field, Action{Type: ActionFinalize}},
		{"typing flag alone", KeyEvent{Key: "t", Typing: true}, idle, Action{Type: ActionInput}},
		{"typing mod f", KeyEvent{Key: "f", Mod: true, Typing: true}, idle, Action{Type: ActionFinalize}},
		{"idle open truck", KeyEvent{Key: "t", Mod: true}, idle, Action{Type: ActionOpenField, Kind: entity.KindTruck}},
		{"idle open product", KeyEvent{Key: "p", Mod: true}, idle, Action{Type: ActionOpenField, Kind: entity.KindProduct}},
		{"idle tare", KeyEvent{Key: "t"}, idle, Action{Type: ActionCaptureTare}},
		{"idle gross", KeyEvent{Key: "g"}, idle, Action{Type: ActionCaptureGross}},
		{"idle finalize", KeyEvent{Key: "f"}, idle, Action{Type: ActionFinalize}},
		{"idle enter finalizes", KeyEvent{Key: KeyEnter}, idle, Action{Type: ActionFinalize}},
		{"help swallows enter", KeyEvent{Key: KeyEnter}, help, Action{}},
		{"idle repeat", KeyEvent{Key: "r"}, idle, Action{Type: ActionRepeatLast}},
		{"idle repeat product", KeyEvent{Key: "p"}, idle, Action{Type: ActionRepeatProduct}},
		{"idle online", KeyEvent{Key: "o"}, idle, Action{Type: ActionToggleOnline}},
		{"idle new ticket", KeyEvent{Key: "n"}, idle, Action{Type: ActionNewTicket}},
		{"idle clear", KeyEvent{Key: KeyBackspace, Mod: true}, idle, Action{Type: ActionClearSelection}},
		{"idle help", KeyEvent{Key: "?"}, idle, Action{Type: ActionToggleHelp}},
		{"idle mod slash", KeyEvent{Key: "/", Mod: true}, idle, Action{Type: ActionToggleHelp}},
		{"quick repeat", KeyEvent{Key: "3"}, idle, Action{Type: ActionQuickRepeat, Slot: 2}},
		{"digit out of range", KeyEvent{Key: "9"}, idle, Action{}},
		{"help swallows hotkeys", KeyEvent{Key: "g"}, help, Action{}},
		{"help toggles off", KeyEvent{Key: "?"}, help, Action{Type: ActionToggleHelp}},
		{"unbound", KeyEvent{Key: "x"}, idle, Action{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Dispatch(tc.ev, tc.ctx); got != tc.want {
				t.Fatalf("Dispatch(%+v, %+v) = %+v (%s) want %+v (%s)", tc.ev, tc.ctx, got, got.Type, tc.want, tc.want.Type)
			}
		})
	}
}
