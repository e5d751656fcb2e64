package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/tally/internal/cli"
	"github.com/theirongolddev/tally/internal/date"
	"github.com/theirongolddev/tally/internal/ledger"
	"github.com/theirongolddev/tally/internal/model"
	"github.com/theirongolddev/tally/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// addValues is bound to the add form's inputs.
type addValues struct {
	kind  model.Kind
	draft ledger.Draft
}

func requireName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

func requireAmount(s string) error {
	v, err := ledger.ParseAmount(s)
	if err != nil {
		return errors.New("enter a number")
	}
	if !v.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func requirePastDate(today date.Date) func(string) error {
	return func(s string) error {
		d, err := date.Parse(strings.TrimSpace(s))
		if err != nil {
			return errors.New("use YYYY-MM-DD")
		}
		if d.After(today) {
			return errors.New("cannot be in the future")
		}
		return nil
	}
}

// newAddForm builds the add form for kind, writing into vals.
func newAddForm(vals *addValues, today date.Date) *huh.Form {
	name := huh.NewInput().
		Title("Name").
		Value(&vals.draft.Name).
		Validate(requireName)

	var fields []huh.Field
	switch vals.kind {
	case model.KindDebt:
		fields = []huh.Field{
			name.Placeholder("Credit card"),
			huh.NewInput().Title("Amount owed").Placeholder("5000").
				Value(&vals.draft.Target).Validate(requireAmount),
		}
	case model.KindSavings:
		fields = []huh.Field{
			name.Placeholder("Emergency fund"),
			huh.NewInput().Title("Target amount").Placeholder("10000").
				Value(&vals.draft.Target).Validate(requireAmount),
		}
	default:
		vals.draft.StartDate = today.String()
		fields = []huh.Field{
			name.Placeholder("Certificate of deposit"),
			huh.NewInput().Title("Principal").Placeholder("1000").
				Value(&vals.draft.Principal).Validate(requireAmount),
			huh.NewInput().Title("Monthly interest rate (%)").Placeholder("0.5").
				Value(&vals.draft.MonthlyRate).Validate(requireAmount),
			huh.NewInput().Title("Start date").Placeholder("YYYY-MM-DD").
				Value(&vals.draft.StartDate).Validate(requirePastDate(today)),
		}
	}

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title("New "+vals.kind.Noun()).
			Description("Enter to continue, Esc to cancel"),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func (a App) startAdd() (tea.Model, tea.Cmd) {
	if a.engine() == nil {
		return a, nil
	}
	a.addVals = &addValues{kind: a.kind()}
	a.addForm = newAddForm(a.addVals, a.engine().Today())
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(min(a.width, 60))
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		vals := a.addVals
		a.addForm = nil
		a.addVals = nil
		a.submitAdd(vals.draft)
		return a, nil
	case huh.StateAborted:
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	return a, cmd
}

// submitAdd adds the drafted item and selects it.
func (a *App) submitAdd(d ledger.Draft) {
	it, err := a.engine().Add(d)
	if err != nil {
		a.setError(validationMessage(err))
		return
	}
	a.cursors[a.activeTab] = a.engine().Len() - 1
	a.afterWrite(fmt.Sprintf("Added %s", it.Name))
}

func (a App) viewAddForm() string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.addForm.View(),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func newAmountInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.CharLimit = 20
	ti.Width = 20
	return ti
}

// startContribution opens the amount input for the selected item.
func (a App) startContribution() (tea.Model, tea.Cmd) {
	it, ok := a.selected()
	if !ok {
		return a, nil
	}
	if !it.Kind.Tracked() {
		a.setError("investments do not take payments")
		return a, nil
	}

	ti := newAmountInput()
	ti.Prompt = fmt.Sprintf("%s %s > ", verbFor(it.Kind), it.Name)
	ti.Focus()

	a.contributing = true
	a.contribID = it.ID
	a.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateContribution(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.contributing = false
		a.applyContribution(a.contribID, a.input.Value())
		return a, nil
	case "esc":
		a.contributing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) viewContribution(width int) string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Width(width)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("  Enter to apply, Esc to cancel (" + a.currency + ")")
	return style.Render(" " + a.input.View() + hint)
}

func verbFor(kind model.Kind) string {
	if kind == model.KindDebt {
		return "Pay toward"
	}
	return "Deposit into"
}

// remainingLine describes what is left, or the completion message.
func remainingLine(it model.Item, currency string) string {
	if it.IsComplete() {
		return it.Kind.CompletionMessage()
	}
	return cli.FormatMoney(it.Remaining(), currency) + " remaining"
}
