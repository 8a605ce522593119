// Package tui implements the converter and history screens as a single
// Bubble Tea model.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jcarver/unitconv/internal/config"
	"github.com/jcarver/unitconv/internal/history"
	"github.com/jcarver/unitconv/internal/units"
)

// App ties together the converter and history views. The history store
// is owned by the caller and shared by both views.
type App struct {
	store *history.Store
	cfg   config.Config
	log   zerolog.Logger

	state  appState
	modal  modalState
	picker *Picker

	category   units.Category
	inputUnit  units.Unit
	outputUnit units.Unit

	inputBuffer string
	result      string
	status      string
	statusErr   bool
	histCursor  int
}

type appState string

const (
	viewConverter appState = "converter"
	viewHistory   appState = "history"
)

type modalState string

const (
	modalNone         modalState = ""
	modalCategory     modalState = "categoryPicker"
	modalInputUnit    modalState = "inputUnitPicker"
	modalOutputUnit   modalState = "outputUnitPicker"
	modalConfirmClear modalState = "confirmClear"
)

func New(cfg config.Config, store *history.Store, log zerolog.Logger) *App {
	cat := units.Length
	return &App{
		store:      store,
		cfg:        cfg,
		log:        log,
		state:      viewConverter,
		category:   cat,
		inputUnit:  cat.DefaultInput(),
		outputUnit: cat.DefaultOutput(),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	if a.modal != modalNone {
		return a.handleModalKey(m)
	}
	if a.state == viewHistory {
		return a.handleHistoryKey(m)
	}
	return a.handleConverterKey(m)
}

func (a *App) handleConverterKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "h":
		a.state = viewHistory
		a.histCursor = 0
		a.status = ""
	case "c":
		a.openCategoryPicker()
	case "i":
		a.openUnitPicker(modalInputUnit)
	case "o":
		a.openUnitPicker(modalOutputUnit)
	case "s":
		a.inputUnit, a.outputUnit = a.outputUnit, a.inputUnit
		a.result = ""
		a.status = ""
	case "enter":
		a.convert()
	case "backspace":
		if len(a.inputBuffer) > 0 {
			a.inputBuffer = a.inputBuffer[:len(a.inputBuffer)-1]
		}
	case "esc":
		a.inputBuffer = ""
		a.status = ""
	default:
		if m.Type == tea.KeyRunes {
			for _, r := range m.Runes {
				if (r >= '0' && r <= '9') || r == '.' || r == '-' {
					a.inputBuffer += string(r)
				}
			}
		}
	}
	return a, nil
}

func (a *App) handleHistoryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc", "h":
		a.state = viewConverter
		a.status = ""
	case "up", "k":
		if a.histCursor > 0 {
			a.histCursor--
		}
	case "down", "j":
		if a.histCursor < a.store.Len()-1 {
			a.histCursor++
		}
	case "x":
		if a.store.Len() > 0 {
			a.modal = modalConfirmClear
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal == modalConfirmClear {
		switch m.String() {
		case "y", "Y":
			a.modal = modalNone
			n := a.store.Len()
			a.store.Clear()
			a.histCursor = 0
			a.setStatus(fmt.Sprintf("cleared %d records", n), false)
			a.log.Info().Int("records", n).Msg("history cleared")
		case "n", "N", "esc":
			a.modal = modalNone
		}
		return a, nil
	}

	res := a.picker.HandleKey(m.String())
	switch res.Action {
	case PickerActionCancelled:
		a.modal = modalNone
		a.picker = nil
	case PickerActionSelected:
		mode := a.modal
		a.modal = modalNone
		a.picker = nil
		a.applyPick(mode, res.Item)
	}
	return a, nil
}

func (a *App) applyPick(mode modalState, item PickerItem) {
	n, err := strconv.Atoi(item.ID)
	if err != nil {
		return
	}
	switch mode {
	case modalCategory:
		a.setCategory(units.Category(n))
	case modalInputUnit:
		a.inputUnit = units.Unit(n)
	case modalOutputUnit:
		a.outputUnit = units.Unit(n)
	}
}

// setCategory resets both units to the category's defaults and clears the
// displayed result. Applies even when re-selecting the current category.
func (a *App) setCategory(cat units.Category) {
	a.category = cat
	a.inputUnit = cat.DefaultInput()
	a.outputUnit = cat.DefaultOutput()
	a.result = ""
	a.status = ""
}

func (a *App) convert() {
	v := units.ParseValue(a.inputBuffer)
	out := units.Convert(v, a.inputUnit, a.outputUnit)

	p := a.cfg.UI.Precision
	in := units.Format(v, a.inputUnit, p)
	res := units.Format(out, a.outputUnit, p)
	a.result = in + " = " + res

	rec, added := a.store.AppendIfChanged(in, res, a.category.Label())
	if added {
		a.setStatus("recorded", false)
		a.log.Debug().
			Str("id", rec.ID).
			Str("input", rec.Input).
			Str("output", rec.Output).
			Str("category", rec.Category).
			Msg("conversion recorded")
	} else {
		a.setStatus("", false)
	}
}

func (a *App) openCategoryPicker() {
	items := make([]PickerItem, 0, len(units.Categories()))
	for _, c := range units.Categories() {
		items = append(items, PickerItem{ID: strconv.Itoa(int(c)), Label: c.Label()})
	}
	a.picker = NewPicker("Select category", items)
	a.modal = modalCategory
}

func (a *App) openUnitPicker(mode modalState) {
	title := "Select input unit"
	if mode == modalOutputUnit {
		title = "Select output unit"
	}
	items := make([]PickerItem, 0, len(a.category.Units()))
	for _, u := range a.category.Units() {
		items = append(items, PickerItem{ID: strconv.Itoa(int(u)), Label: u.Label()})
	}
	a.picker = NewPicker(title, items)
	a.modal = mode
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewHistory:
		body = a.renderHistory()
	default:
		body = a.renderConverter()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

func (a *App) renderConverter() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("UnitConv - "+a.category.Label()) + "\n\n")

	b.WriteString(labelStyle.Render("Input unit:  ") + valueStyle.Render(unitLine(a.inputUnit)) + "\n")
	b.WriteString(labelStyle.Render("Output unit: ") + valueStyle.Render(unitLine(a.outputUnit)) + "\n")

	buf := a.inputBuffer
	if buf == "" {
		buf = "0"
	}
	b.WriteString(labelStyle.Render("Value:       ") + valueStyle.Render(buf) + cursorStyle.Render("_") + "\n")

	if a.result != "" {
		b.WriteString("\n" + resultStyle.Render(a.result) + "\n")
	}

	b.WriteString("\n" + helpLine(
		"c", "Category",
		"i", "Input unit",
		"o", "Output unit",
		"s", "Swap",
		"enter", "Convert",
		"h", "History",
		"q", "Quit",
	))
	b.WriteString(a.renderStatus())
	return b.String()
}

func (a *App) renderHistory() string {
	var b strings.Builder
	recent := a.store.Recent()
	b.WriteString(titleStyle.Render(fmt.Sprintf("History - %d conversions", len(recent))) + "\n\n")

	if len(recent) == 0 {
		b.WriteString(labelStyle.Render("(no conversions yet)") + "\n")
	}
	for i, r := range recent {
		marker := "  "
		if i == a.histCursor {
			marker = cursorStyle.Render("▶") + " "
		}
		line := fmt.Sprintf("%s  %s → %s  (%s)", r.At.Local().Format(a.cfg.UI.TimeFormat), r.Input, r.Output, r.Category)
		b.WriteString(marker + valueStyle.Render(line) + "\n")
	}

	b.WriteString("\n" + helpLine(
		"j/k", "Move",
		"x", "Clear",
		"esc", "Back",
		"q", "Quit",
	))
	b.WriteString(a.renderStatus())
	return b.String()
}

func (a *App) renderModal() string {
	if a.modal == modalConfirmClear {
		return titleStyle.Render("Clear history?") + "\nThis removes all recorded conversions.\n" +
			helpLine("y", "Yes", "n", "No")
	}
	if a.picker == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.picker.Title()))
	if q := a.picker.Query(); q != "" {
		b.WriteString(labelStyle.Render("  filter: ") + valueStyle.Render(q))
	}
	b.WriteString("\n")
	items := a.picker.Items()
	if len(items) == 0 {
		b.WriteString(labelStyle.Render("(no match)") + "\n")
	}
	for i, item := range items {
		marker := "  "
		if i == a.picker.Cursor() {
			marker = cursorStyle.Render("▶") + " "
		}
		b.WriteString(marker + valueStyle.Render(item.Label) + "\n")
	}
	b.WriteString(helpLine("enter", "Select", "esc", "Cancel"))
	return b.String()
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	st := statusStyle
	if a.statusErr {
		st = statusErrStyle
	}
	return "\n" + st.Render(a.status)
}

func unitLine(u units.Unit) string {
	return fmt.Sprintf("%s (%s)", u.Label(), u.Symbol())
}

func helpLine(pairs ...string) string {
	var parts []string
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, keyStyle.Render("["+pairs[i]+"]")+" "+helpDescStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
