package tui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/pos"
	"github.com/csheth/weighbridge/internal/scale"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Index     *entity.Index
	History   []pos.Record
	Console   pos.Config
	Simulator *scale.Simulator
	ScaleTick time.Duration
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Index == nil {
		config.Index = entity.NewIndex(nil, nil, nil, nil)
	}
	if config.Simulator == nil {
		config.Simulator = scale.NewSimulator(scale.Config{}, nil)
	}
	if config.ScaleTick <= 0 {
		config.ScaleTick = defaultScaleTick
	}
	config.Console.Scale = config.Simulator.Reading()

	queryInput := textinput.New()
	queryInput.Prompt = "› "
	queryInput.CharLimit = 64
	queryInput.Width = 48

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	hm := help.New()
	hm.ShowAll = true

	return &model{
		config:      config,
		console:     pos.NewConsole(config.Index, config.History, config.Console),
		queryInput:  queryInput,
		spinner:     spin,
		help:        hm,
		keys:        defaultKeyMap,
		layout:      newPageLayout(),
		infoMessage: "Ctrl+T to pick a truck, Ctrl+K to search everything.",
	}
}

type model struct {
	config  Config
	console *pos.Console

	queryInput textinput.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap
	layout     pageLayout

	infoMessage  string
	errorMessage string
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, scaleTickCmd(m.config.ScaleTick))
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	case scaleTickMsg:
		return m, tea.Batch(m.handleScaleTick(), scaleTickCmd(m.config.ScaleTick))
	case timerMsg:
		return m, m.handleTimer(msg.Scheduled)
	case spinner.TickMsg:
		if m.console.SyncPending() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.queryInput.Width = max(m.layout.listWidth-16, 16)
		m.help.Width = m.layout.listWidth
		return m, nil
	}
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev, ok := keyEvent(msg)
	if !ok {
		return m, nil
	}
	out := m.console.HandleKey(ev)
	if out.Action.Type == pos.ActionInput {
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		m.console.SetQuery(m.queryInput.Value())
		return m, cmd
	}
	m.syncQueryInput()
	m.applyOutcome(out)

	cmds := scheduleAll(out.Schedule)
	if len(out.Schedule) > 0 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

// syncQueryInput mirrors the console's focused search into the text input.
func (m *model) syncQueryInput() {
	ctx := m.console.Context()
	switch {
	case ctx.PaletteOpen:
		m.queryInput.Placeholder = "Search trucks, customers, orders, products…"
	case ctx.Field != "":
		m.queryInput.Placeholder = fmt.Sprintf("Search %ss…", ctx.Field)
	default:
		m.queryInput.SetValue("")
		m.queryInput.Blur()
		return
	}
	if q := m.console.Query(); q != m.queryInput.Value() {
		m.queryInput.SetValue(q)
		m.queryInput.CursorEnd()
	}
	m.queryInput.Focus()
}

func (m *model) applyOutcome(out pos.Outcome) {
	if out.Err != nil {
		m.errorMessage = describeError(out.Err)
		m.infoMessage = ""
		return
	}
	if out.Status != "" {
		m.errorMessage = ""
		m.infoMessage = out.Status
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, pos.ErrUnstableScale):
		return "Scale unstable: wait for the reading to settle before capturing."
	case errors.Is(err, pos.ErrIncompleteTicket):
		return "Ticket incomplete: pick all four fields and capture a gross above tare."
	case errors.Is(err, pos.ErrNoHistory):
		return "No previous ticket to repeat."
	default:
		return err.Error()
	}
}

func (m *model) handleScaleTick() tea.Cmd {
	r := m.config.Simulator.Tick()
	if s, armed := m.console.UpdateScale(r); armed {
		return scheduleCmd(s)
	}
	return nil
}

func (m *model) handleTimer(s pos.Scheduled) tea.Cmd {
	queued := m.console.Queued()
	if !m.console.Expire(s) {
		log.Printf("[timers] %s handle=%d stale, ignored", s.Name, s.Handle)
		return nil
	}
	switch s.Name {
	case pos.TimerScaleSettle:
		m.console.UpdateScale(m.config.Simulator.Settle())
	case pos.TimerOutboxFlush:
		m.errorMessage = ""
		m.infoMessage = fmt.Sprintf("Synced %d queued ticket(s).", queued)
	}
	return nil
}
