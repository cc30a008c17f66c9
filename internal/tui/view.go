package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/weighbridge/internal/entity"
	"github.com/csheth/weighbridge/internal/fuzzy"
	"github.com/csheth/weighbridge/internal/pos"
)

func (m *model) View() string {
	snap := m.console.Snapshot()
	parts := []string{m.heroView(snap)}
	if snap.Palette.Open {
		parts = append(parts, m.paletteView(snap.Palette))
	}
	parts = append(parts,
		m.fieldsView(snap),
		m.ticketView(snap.Ticket),
		m.quickRepeatView(snap),
		m.recentView(snap),
		m.statusView(snap),
	)
	if snap.HelpOpen {
		parts = append(parts, m.keyLegendView(), m.helpView())
	} else {
		parts = append(parts, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return joinNonEmpty(parts)
}

func (m *model) heroView(snap pos.Snapshot) string {
	title := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("WEIGHBRIDGE"),
		"  ",
		taglineStyle.Render(heroTagline),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, m.sessionMeterView(snap))
}

func (m *model) sessionMeterView(snap pos.Snapshot) string {
	stats := make([]string, 0, len(entity.Kinds)+2)
	for _, kind := range entity.Kinds {
		stats = append(stats, fmt.Sprintf("%s %d", kind.Label(), snap.Counts[kind]))
	}
	stats = append(stats, m.linkLabel(snap), m.scaleLabel(snap.Scale))
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) linkLabel(snap pos.Snapshot) string {
	switch {
	case !snap.Online:
		return fmt.Sprintf("Offline - %d queued", len(snap.Queue))
	case snap.FlushPending:
		return fmt.Sprintf("Online %s syncing %d", m.spinner.View(), len(snap.Queue))
	default:
		return "Online"
	}
}

func (m *model) scaleLabel(r pos.Reading) string {
	state := "Stable"
	if !r.Stable {
		state = "Unstable - hold truck"
	}
	return fmt.Sprintf("Scale %s (%s) %s", formatWeight(r.Weight), formatTons(r.Weight), state)
}

func (m *model) paletteView(st pos.SearchState) string {
	body := []string{
		sectionHeaderStyle.Render("Command Palette"),
		m.queryInput.View(),
		m.resultsView(st, true),
		helperStyle.Render("Enter to select, Esc to cancel."),
	}
	return paletteBoxStyle.Render(strings.Join(body, "\n"))
}

func (m *model) fieldsView(snap pos.Snapshot) string {
	rows := []string{sectionHeaderStyle.Render("Ticket")}
	for _, kind := range entity.Kinds {
		label := fieldLabelStyle.Render(kind.Label())
		if snap.OpenField == kind {
			label = fieldOpenStyle.Render("▸ " + kind.Label())
		}
		value := helperStyle.Render(fmt.Sprintf("not set (%s)", kindHotkeys[kind]))
		if e := snap.Ticket.Selection(kind); e != nil {
			value = selectedStyle.Render(e.Display())
		}
		rows = append(rows, fitLine(label+value, m.layout.listWidth))
		if snap.OpenField == kind {
			rows = append(rows,
				indentMultiline(m.queryInput.View(), "  "),
				indentMultiline(m.resultsView(snap.Fields[kind], false), "  "),
			)
		}
	}
	return strings.Join(rows, "\n")
}

func (m *model) resultsView(st pos.SearchState, withKind bool) string {
	if len(st.Results) == 0 {
		return helperStyle.Render("No matches.")
	}
	start, end := resultWindow(len(st.Results), st.Highlighted, m.layout.resultRows)
	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		c := st.Results[i]
		text := candidateLine(c, withKind)
		if i == st.Highlighted {
			lines = append(lines, fitLine(currentLineStyle.Render("▸ "+text), m.layout.listWidth))
			continue
		}
		lines = append(lines, fitLine("  "+highlightRunes(text, fuzzy.Positions(st.Query, text)), m.layout.listWidth))
	}
	if hidden := len(st.Results) - end; hidden > 0 {
		lines = append(lines, helperStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return strings.Join(lines, "\n")
}

func candidateLine(c pos.Candidate, withKind bool) string {
	parts := []string{c.Entity.Display()}
	if withKind {
		parts = append([]string{"[" + c.Kind.Tag() + "]"}, parts...)
	}
	for _, d := range c.Entity.Details {
		if d.Value == "" {
			continue
		}
		parts = append(parts, d.Value)
		if len(parts) >= 4 {
			break
		}
	}
	return strings.Join(parts, "  ")
}

func highlightRunes(text string, positions []int) string {
	return fuzzy.Mark(text, positions, func(s string) string { return matchStyle.Render(s) })
}

func (m *model) ticketView(t pos.TicketSnapshot) string {
	weight := func(ok bool, lb int) string {
		if !ok {
			return helperStyle.Render("—")
		}
		return weightStyle.Render(formatWeight(lb))
	}
	lines := []string{
		fmt.Sprintf("Gross %s   Tare %s   Net %s",
			weight(t.HasGross, t.Gross), weight(t.HasTare, t.Tare), weight(t.HasNet, t.Net)),
	}
	var extra []string
	if t.ExpectedTare > 0 {
		extra = append(extra, "Expected tare "+formatWeight(t.ExpectedTare))
	}
	if t.UnitPrice > 0 {
		extra = append(extra, fmt.Sprintf("Price $%.2f/t", t.UnitPrice))
		if t.HasNet {
			extra = append(extra, fmt.Sprintf("Amount $%.2f (%s)", t.Amount, formatTons(t.Net)))
		}
	}
	if len(extra) > 0 {
		lines = append(lines, helperStyle.Render(strings.Join(extra, "   ")))
	}
	if t.CanFinalize {
		lines = append(lines, readyStyle.Render("Ready: press f or Ctrl+F to finalize."))
	} else {
		lines = append(lines, helperStyle.Render("Needs "+strings.Join(missing(t), ", ")+"."))
	}
	return strings.Join(lines, "\n")
}

func missing(t pos.TicketSnapshot) []string {
	var out []string
	for _, kind := range entity.Kinds {
		if t.Selection(kind) == nil {
			out = append(out, string(kind))
		}
	}
	if !t.HasGross {
		out = append(out, "gross")
	}
	if !t.HasTare {
		out = append(out, "tare")
	}
	if t.HasNet && t.Net == 0 {
		out = append(out, "a gross above tare")
	}
	return out
}

func (m *model) quickRepeatView(snap pos.Snapshot) string {
	if snap.Ticket.Customer == nil || len(snap.QuickRepeat) == 0 {
		return ""
	}
	rows := []string{sectionHeaderStyle.Render("Recent loads for " + snap.Ticket.Customer.Name)}
	for i, r := range snap.QuickRepeat {
		line := fmt.Sprintf("%s %s  %s · %s  %s",
			keyStyle.Render(fmt.Sprint(i+1)), r.ID,
			m.entityCode(entity.KindTruck, r.TruckID), m.entityCode(entity.KindProduct, r.ProductID),
			formatWeight(r.Net))
		rows = append(rows, fitLine(line, m.layout.listWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *model) recentView(snap pos.Snapshot) string {
	rows := []string{
		sectionHeaderStyle.Render("Recent Transactions"),
		tableHeaderStyle.Render(fmt.Sprintf("%-7s %-6s %-10s %-10s %-8s %12s", "Ticket", "Time", "Truck", "Customer", "Product", "Net")),
	}
	if len(snap.Recent) == 0 {
		return strings.Join(append(rows, helperStyle.Render("No tickets yet.")), "\n")
	}
	queued := make(map[string]bool, len(snap.Queue))
	for _, r := range snap.Queue {
		queued[r.ID] = true
	}
	limit := min(len(snap.Recent), m.layout.recentRows)
	for _, r := range snap.Recent[:limit] {
		line := fmt.Sprintf("%-7s %-6s %-10s %-10s %-8s %12s",
			r.ID,
			r.Timestamp.Format("15:04"),
			m.entityCode(entity.KindTruck, r.TruckID),
			m.entityCode(entity.KindCustomer, r.CustomerID),
			m.entityCode(entity.KindProduct, r.ProductID),
			formatWeight(r.Net),
		)
		if queued[r.ID] {
			line = queuedRowStyle.Render(line + "  queued")
		}
		rows = append(rows, fitLine(line, m.layout.listWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *model) entityCode(kind entity.Kind, id string) string {
	if e, ok := m.config.Index.Lookup(kind, id); ok && e.Code != "" {
		return e.Code
	}
	return id
}

func (m *model) statusView(snap pos.Snapshot) string {
	var parts []string
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if snap.FlushPending {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	return strings.Join(parts, "\n")
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) keyLegendView() string {
	var hints []key.Binding
	for _, group := range m.keys.FullHelp() {
		hints = append(hints, group...)
	}
	rows := []string{sectionHeaderStyle.Render("Hotkeys")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := min(i+columns, len(hints))
		var cells []string
		for _, hint := range hints[i:end] {
			k := keyStyle.Render(hint.Help().Key)
			desc := keyDescStyle.Width(20).Render(" " + hint.Help().Desc)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, k, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	width := max(m.layout.listWidth-8, 32)
	lines := []string{
		"• Ctrl+T/C/O/P open a field; type to filter, ↑/↓ to move, Enter to pick and Tab to jump to the next field.",
		"• Ctrl+K searches every list at once; prefix a query with truck, customer, order or product to narrow it.",
		"• While a search box has focus only F2, F3 and Ctrl+F act; every other key is typed into the box.",
		"• Captures are refused while the scale reads unstable. Offline tickets queue and sync shortly after going online.",
		"• Esc closes the palette, then the field, then this panel. Ctrl+Q quits.",
	}
	wrapped := make([]string, len(lines))
	for i, line := range lines {
		wrapped[i] = helperStyle.Render(wordwrap.String(line, width))
	}
	return helpBoxStyle.Render(strings.Join(append([]string{m.help.View(m.keys)}, wrapped...), "\n"))
}
