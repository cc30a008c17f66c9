package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/weighbridge/internal/pos"
)

// keyMap lists the console bindings for the help modal. Dispatch itself
// happens in pos.Dispatch; these bindings only describe it, except Quit.
type keyMap struct {
	Palette  key.Binding
	Truck    key.Binding
	Customer key.Binding
	Order    key.Binding
	Product  key.Binding
	Navigate key.Binding
	Confirm  key.Binding
	Cycle    key.Binding
	Cancel   key.Binding
	Clear    key.Binding
	Gross    key.Binding
	Tare     key.Binding
	Finalize key.Binding
	Repeat   key.Binding
	Product1 key.Binding
	Quick    key.Binding
	Online   key.Binding
	New      key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var defaultKeyMap = keyMap{
	Palette:  key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("Ctrl+K", "command palette")),
	Truck:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("Ctrl+T", "truck")),
	Customer: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "customer")),
	Order:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("Ctrl+O", "order")),
	Product:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("Ctrl+P", "product")),
	Navigate: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
	Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
	Cycle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "next field")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "close")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("Ctrl+⌫", "clear field")),
	Gross:    key.NewBinding(key.WithKeys("f2", "g"), key.WithHelp("F2/g", "capture gross")),
	Tare:     key.NewBinding(key.WithKeys("f3", "t"), key.WithHelp("F3/t", "capture tare")),
	Finalize: key.NewBinding(key.WithKeys("ctrl+f", "f", "enter"), key.WithHelp("Ctrl+F/f/Enter", "finalize")),
	Repeat:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat last")),
	Product1: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "repeat product")),
	Quick:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "quick repeat")),
	Online:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "online/offline")),
	New:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new ticket")),
	Help:     key.NewBinding(key.WithKeys("?", "ctrl+_"), key.WithHelp("?", "hotkeys")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl+Q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Palette, k.Gross, k.Tare, k.Finalize, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Palette, k.Truck, k.Customer, k.Order, k.Product},
		{k.Navigate, k.Confirm, k.Cycle, k.Cancel, k.Clear},
		{k.Gross, k.Tare, k.Finalize, k.New},
		{k.Repeat, k.Product1, k.Quick, k.Online, k.Help, k.Quit},
	}
}

// keyEvent decodes a terminal key into the console's key vocabulary. Ctrl
// stands in for the command modifier. Terminals report Ctrl+Backspace as
// ctrl+h and Ctrl+/ as ctrl+_.
func keyEvent(msg tea.KeyMsg) (pos.KeyEvent, bool) {
	name := msg.String()
	switch name {
	case "":
		return pos.KeyEvent{}, false
	case "ctrl+h":
		return pos.KeyEvent{Key: pos.KeyBackspace, Mod: true}, true
	case "ctrl+_":
		return pos.KeyEvent{Key: "/", Mod: true}, true
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok {
		return pos.KeyEvent{Key: rest, Mod: true}, true
	}
	if msg.Type == tea.KeyRunes && !msg.Alt {
		return pos.KeyEvent{Key: string(msg.Runes)}, true
	}
	return pos.KeyEvent{Key: name}, true
}
