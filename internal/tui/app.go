// Package tui provides the interactive Bubble Tea dashboard for tally.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/store"
	"github.com/theirongolddev/tally/internal/tui/components"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the dashboard.
type Options struct {
	Currency   string
	DarkTheme  string
	LightTheme string
	Dark       bool
	Tab        model.Kind
}

// App is the root Bubble Tea model.
type App struct {
	engines  []*ledger.Engine // indexed like components.Tabs
	prefs    store.KV
	currency string

	darkTheme  string
	lightTheme string
	dark       bool

	// UI state
	width     int
	height    int
	activeTab int
	cursors   []int
	showHelp  bool

	// Add form (huh); values live behind a pointer because App is copied
	// on every Update.
	addForm *huh.Form
	addVals *addValues

	// Contribution input
	contributing bool
	contribID    string
	input        textinput.Model

	// Last status message
	status    string
	statusErr bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// NewApp builds the dashboard over one engine per tab. prefs is where the
// theme choice is saved.
func NewApp(engines map[model.Kind]*ledger.Engine, prefs store.KV, opts Options) App {
	a := App{
		engines:    make([]*ledger.Engine, len(components.Tabs)),
		cursors:    make([]int, len(components.Tabs)),
		prefs:      prefs,
		currency:   opts.Currency,
		darkTheme:  opts.DarkTheme,
		lightTheme: opts.LightTheme,
		dark:       opts.Dark,
		activeTab:  components.TabIdxByKind(opts.Tab),
	}
	for i, tab := range components.Tabs {
		a.engines[i] = engines[tab.Kind]
	}
	theme.SetMode(a.dark, a.darkTheme, a.lightTheme)

	for _, e := range a.engines {
		if e != nil && e.LoadErr() != nil {
			a.setError(fmt.Sprintf("%s data was unreadable and has been reset", strings.ToLower(e.Kind().Label())))
			break
		}
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a App) engine() *ledger.Engine { return a.engines[a.activeTab] }

func (a App) kind() model.Kind { return components.Tabs[a.activeTab].Kind }

// items returns the active tab's items.
func (a App) items() []model.Item {
	if e := a.engine(); e != nil {
		return e.Items()
	}
	return nil
}

// selected returns the item under the cursor.
func (a App) selected() (model.Item, bool) {
	items := a.items()
	c := a.cursors[a.activeTab]
	if c < 0 || c >= len(items) {
		return model.Item{}, false
	}
	return items[c], true
}

func (a *App) clampCursor() {
	n := len(a.items())
	c := a.cursors[a.activeTab]
	if c >= n {
		c = n - 1
	}
	if c < 0 {
		c = 0
	}
	a.cursors[a.activeTab] = c
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.status = msg
	a.statusErr = true
}

// afterWrite reports a failed save; the change itself stays applied.
func (a *App) afterWrite(ok string) {
	if err := a.engine().SaveErr(); err != nil {
		a.setError("not saved: " + err.Error())
		return
	}
	a.setStatus(ok)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The add form intercepts all keys
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}

		if a.contributing {
			return a.updateContribution(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "1", "2", "3":
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
			a.clampCursor()
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			a.clampCursor()
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			a.clampCursor()
			return a, nil
		case "j", "down":
			a.cursors[a.activeTab]++
			a.clampCursor()
			return a, nil
		case "k", "up":
			a.cursors[a.activeTab]--
			a.clampCursor()
			return a, nil
		case "g":
			a.cursors[a.activeTab] = 0
			return a, nil
		case "G":
			a.cursors[a.activeTab] = len(a.items()) - 1
			a.clampCursor()
			return a, nil
		case "a":
			return a.startAdd()
		case "p", "enter":
			return a.startContribution()
		case "x", "delete":
			a.deleteSelected()
			return a, nil
		case "t":
			a.toggleTheme()
			return a, nil
		}
		return a, nil
	}

	// Forward unhandled messages (cursor blinks etc.) to whatever has focus.
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.contributing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) deleteSelected() {
	it, ok := a.selected()
	if !ok {
		return
	}
	if a.engine().Delete(it.ID) {
		a.clampCursor()
		a.afterWrite(fmt.Sprintf("Deleted %s", it.Name))
	}
}

// toggleTheme flips dark/light and saves the choice under the theme key.
func (a *App) toggleTheme() {
	a.dark = !a.dark
	theme.SetMode(a.dark, a.darkTheme, a.lightTheme)
	if a.prefs == nil {
		return
	}
	if err := store.SetDarkMode(a.prefs, a.dark); err != nil {
		a.setError("theme not saved: " + err.Error())
		return
	}
	if a.dark {
		a.setStatus("Dark mode")
	} else {
		a.setStatus("Light mode")
	}
}

// applyContribution records amount against id. Unknown ids are ignored.
func (a *App) applyContribution(id, amount string) {
	it, err := a.engine().Contribute(id, amount)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return
	case err != nil:
		a.setError(validationMessage(err))
		return
	}
	if it.IsComplete() {
		a.afterWrite(it.Kind.CompletionMessage())
		return
	}
	a.afterWrite(fmt.Sprintf("%s: %s remaining", it.Name, cli.FormatMoney(it.Remaining(), a.currency)))
}

// validationMessage flattens a validation error into one status line.
func validationMessage(err error) string {
	var verr *ledger.ValidationError
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr.Fields))
		for _, f := range verr.SortedFields() {
			msgs = append(msgs, verr.Fields[f])
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.addForm != nil {
		return a.viewAddForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  tally needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"1 2 3", "Debts / Savings / Investments"},
		{"← →", "Previous / Next tab"},
		{"j k", "Select item"},
		{"a", "Add item"},
		{"p Enter", "Record a payment or deposit"},
		{"x", "Delete selected item"},
		{"t", "Toggle dark / light"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)

	hints := "[a]dd  [p]ay  [x]del  [t]heme  [?]help  [q]uit"
	if a.kind() == model.KindInvestment {
		hints = "[a]dd  [x]del  [t]heme  [?]help  [q]uit"
	}
	footer := components.RenderStatusBar(w, hints, a.status, a.statusErr)
	if a.contributing {
		footer = a.viewContribution(w) + "\n" + footer
	}

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(footer), minContentHeight)

	content := a.renderTracker(cw)
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
