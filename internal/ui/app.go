package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bornholm/effortcalc/internal/model"
	"github.com/bornholm/effortcalc/internal/store"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// App represents the main tview application
type App struct {
	app      *tview.Application
	store    store.Store
	calc     *Calculator
	estimate *model.Estimate
	filePath string

	// UI Components
	pages      *tview.Pages
	layout     *tview.Flex
	header     *tview.TextView
	form       *tview.Form
	factors    *FactorTable
	preview    *tview.TextView
	footer     *tview.TextView
	commandBar *tview.InputField

	roleField      *tview.DropDown
	factorFields   map[model.Category]*tview.DropDown
	riskField      *tview.DropDown
	baseField      *tview.InputField
	focusField     *tview.InputField
	startDateField *tview.InputField

	// State
	ready             bool
	hasUnsavedChanges bool
	commandMode       bool
	modalVisible      bool
}

// NewApp creates a new App instance
func NewApp(s store.Store, config *model.Config, estimate *model.Estimate, filePath string) *App {
	a := &App{
		app:          tview.NewApplication(),
		store:        s,
		calc:         NewCalculator(config, estimate.Input),
		estimate:     estimate,
		filePath:     filePath,
		factorFields: map[model.Category]*tview.DropDown{},
	}

	a.setupUI()
	a.ready = true
	a.refresh()

	return a
}

// setupUI creates and configures all UI components
func (a *App) setupUI() {
	// Header
	a.header = tview.NewTextView()
	a.header.SetDynamicColors(true)
	a.header.SetTextAlign(tview.AlignCenter)

	// Factor breakdown
	a.factors = NewFactorTable()

	// Results
	a.preview = tview.NewTextView()
	a.preview.SetDynamicColors(true)
	a.preview.SetBorder(true)
	a.preview.SetTitle(" Results ")

	// Selections
	a.setupForm()

	// Command bar (hidden by default)
	a.commandBar = tview.NewInputField()
	a.commandBar.SetLabel(":")
	a.commandBar.SetFieldWidth(40)
	a.commandBar.SetDoneFunc(a.handleCommand)

	// Footer
	a.footer = tview.NewTextView()
	a.footer.SetDynamicColors(true)
	a.updateFooter()

	results := tview.NewFlex().SetDirection(tview.FlexRow)
	results.AddItem(a.factors, len(model.Categories)+4, 0, false)
	results.AddItem(a.preview, 0, 1, false)

	mainContent := tview.NewFlex().SetDirection(tview.FlexColumn)
	mainContent.AddItem(a.form, 0, 1, true)
	mainContent.AddItem(results, 0, 1, false)

	// Layout
	a.layout = tview.NewFlex().SetDirection(tview.FlexRow)
	a.layout.AddItem(a.header, 3, 0, false)
	a.layout.AddItem(mainContent, 0, 1, true)
	a.layout.AddItem(a.footer, 1, 0, false)

	// Pages for modal dialogs
	a.pages = tview.NewPages()
	a.pages.AddPage("main", a.layout, true, true)
}

// setupForm creates one field per selection of the estimation input
func (a *App) setupForm() {
	a.form = tview.NewForm()
	a.form.SetBorder(true)
	a.form.SetTitle(" Inputs ")
	a.form.SetItemPadding(0)

	roles := make([]string, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, string(r))
	}
	a.roleField = tview.NewDropDown().
		SetLabel("Role").
		SetOptions(roles, func(option string, index int) {
			a.onChange(a.calc.SetRole(option))
		})
	a.form.AddFormItem(a.roleField)

	for _, c := range model.Categories {
		category := c
		field := tview.NewDropDown().
			SetLabel(category.Label()).
			SetOptions(model.OptionLabels(category), func(option string, index int) {
				a.onChange(a.calc.SetFactor(category, option))
			})
		a.factorFields[category] = field
		a.form.AddFormItem(field)
	}

	risks := make([]string, 0, len(model.RiskLevels))
	for _, r := range model.RiskLevels {
		risks = append(risks, string(r))
	}
	a.riskField = tview.NewDropDown().
		SetLabel("Risk").
		SetOptions(risks, func(option string, index int) {
			a.onChange(a.calc.SetRisk(option))
		})
	a.form.AddFormItem(a.riskField)

	a.baseField = tview.NewInputField().
		SetLabel("Base Effort (hrs)").
		SetFieldWidth(10).
		SetAcceptanceFunc(tview.InputFieldFloat).
		SetChangedFunc(func(text string) {
			a.calc.SetBaseEffort(text)
			a.onChange(nil)
		})
	a.form.AddFormItem(a.baseField)

	a.focusField = tview.NewInputField().
		SetLabel("Focus Hours/Day").
		SetFieldWidth(10).
		SetAcceptanceFunc(tview.InputFieldFloat).
		SetChangedFunc(func(text string) {
			a.calc.SetFocusHours(text)
			a.onChange(nil)
		})
	a.form.AddFormItem(a.focusField)

	a.startDateField = tview.NewInputField().
		SetLabel("Start Date").
		SetPlaceholder(model.DateLayout).
		SetFieldWidth(12).
		SetChangedFunc(func(text string) {
			a.calc.SetStartDate(text)
			a.onChange(nil)
		})
	a.form.AddFormItem(a.startDateField)

	a.form.AddButton("Save", a.save)
	a.form.AddButton("Reset", a.reset)
	a.form.AddButton("Help", a.showHelp)

	a.syncForm()
}

// syncForm copies the calculator selections into the form fields
func (a *App) syncForm() {
	in := a.calc.Input()

	roles := make([]string, 0, len(model.Roles))
	for _, r := range model.Roles {
		roles = append(roles, string(r))
	}
	a.roleField.SetCurrentOption(indexOf(roles, string(in.Role)))

	for _, c := range model.Categories {
		a.factorFields[c].SetCurrentOption(indexOf(model.OptionLabels(c), in.Factor(c)))
	}

	risks := make([]string, 0, len(model.RiskLevels))
	for _, r := range model.RiskLevels {
		risks = append(risks, string(r))
	}
	a.riskField.SetCurrentOption(indexOf(risks, string(in.Risk)))

	a.baseField.SetText(strconv.FormatFloat(in.BaseEffortHours, 'f', -1, 64))
	a.focusField.SetText(strconv.FormatFloat(in.FocusHoursPerDay, 'f', -1, 64))

	start := ""
	if in.StartDate != nil {
		start = in.StartDate.String()
	}
	a.startDateField.SetText(start)
}

// onChange is called after every field change
func (a *App) onChange(err error) {
	if !a.ready {
		return
	}

	a.hasUnsavedChanges = true
	a.refresh()

	if err != nil {
		a.setStatus(fmt.Sprintf("[red]%s[white]", tview.Escape(err.Error())))
	}
}

// refresh recomputes the estimate and updates the results panels
func (a *App) refresh() {
	a.factorFields[model.CategoryDeveloperLevel].SetDisabled(a.calc.Input().Role != model.RoleDeveloper)

	res, breakdown, err := a.calc.Compute()
	if err != nil {
		a.factors.Update(nil, 0)
	} else {
		a.factors.Update(breakdown, res.MultiplierProduct)
	}

	a.preview.SetText(a.calc.Preview())
	a.updateHeader()
	a.updateFooter()
}

// updateHeader updates the header text
func (a *App) updateHeader() {
	title := a.estimate.Label
	if title == "" {
		title = "Untitled Estimate"
	}

	saved := ""
	if a.hasUnsavedChanges {
		saved = " [red](unsaved changes)[white]"
	}

	a.header.SetTitle(fmt.Sprintf(" Effort Calculator - %s%s ", tview.Escape(title), saved))
	a.header.SetBorder(true)
}

// updateFooter updates the footer text
func (a *App) updateFooter() {
	a.footer.SetText("[yellow]Tab[white] Next Field  [yellow]Ctrl+S[white] Save  [yellow]Ctrl+R[white] Reset  [yellow]:w[white] Save  [yellow]:q[white] Quit  [yellow]:q![white] Force Quit  [yellow]F1[white] Help")
}

// setStatus temporarily replaces the footer text
func (a *App) setStatus(text string) {
	a.footer.SetText(text)
}

// Run starts the application
func (a *App) Run() error {
	a.pages.SetInputCapture(a.handleInput)

	// Prevent Ctrl+C from quitting the app
	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			return nil
		}
		return event
	})

	a.app.SetRoot(a.pages, true)
	a.app.SetFocus(a.form)
	return a.app.Run()
}

// handleInput handles global key input
func (a *App) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if a.modalVisible || a.commandMode {
		return event
	}

	switch event.Key() {
	case tcell.KeyCtrlS:
		a.save()
		return nil
	case tcell.KeyCtrlR:
		a.reset()
		return nil
	case tcell.KeyF1:
		a.showHelp()
		return nil
	case tcell.KeyRune:
		// Text fields receive ':' as a regular character
		if _, typing := a.app.GetFocus().(*tview.InputField); typing {
			return event
		}
		if event.Rune() == ':' {
			a.startCommandMode()
			return nil
		}
	}

	return event
}

// startCommandMode enters command mode
func (a *App) startCommandMode() {
	a.commandMode = true
	a.commandBar.SetText("")

	// Replace footer with command bar
	a.layout.RemoveItem(a.footer)
	a.layout.AddItem(a.commandBar, 1, 0, true)
	a.app.SetFocus(a.commandBar)
}

// exitCommandMode exits command mode
func (a *App) exitCommandMode() {
	a.commandMode = false
	a.commandBar.SetText("")

	// Restore footer
	a.layout.RemoveItem(a.commandBar)
	a.layout.AddItem(a.footer, 1, 0, false)
	a.app.SetFocus(a.form)
}

// handleCommand processes the command entered in command mode
func (a *App) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		a.exitCommandMode()
		return
	}

	command := strings.TrimSpace(a.commandBar.GetText())

	switch command {
	case "w":
		a.exitCommandMode()
		a.save()
	case "q":
		if a.hasUnsavedChanges {
			a.commandBar.SetText("Unsaved changes, use :q! to force quit")
		} else {
			a.app.Stop()
		}
	case "q!":
		a.app.Stop()
	case "wq", "x":
		if err := a.write(); err == nil {
			a.app.Stop()
		} else {
			a.commandBar.SetText(fmt.Sprintf("Failed to save: %v", err))
		}
	case "reset":
		a.exitCommandMode()
		a.reset()
	default:
		a.exitCommandMode()
	}
}

// write stores the current selections in the estimate file
func (a *App) write() error {
	if err := a.calc.Err(); err != nil {
		return err
	}

	a.estimate.SetInput(a.calc.Input())
	return a.store.SaveEstimate(a.filePath, a.estimate)
}

// save saves the estimate to file
func (a *App) save() {
	if err := a.write(); err != nil {
		a.setStatus(fmt.Sprintf("[red]Error: Failed to save: %s[white]", tview.Escape(err.Error())))
		return
	}
	a.hasUnsavedChanges = false
	a.updateHeader()
	a.setStatus(fmt.Sprintf("[green]Saved to %s[white]", tview.Escape(a.filePath)))
}

// reset restores the configured defaults in every field
func (a *App) reset() {
	a.ready = false
	a.calc.Reset()
	a.syncForm()
	a.ready = true

	a.hasUnsavedChanges = true
	a.refresh()
}

// showHelp displays help information
func (a *App) showHelp() {
	helpView := tview.NewTextView()
	helpView.SetDynamicColors(true)
	helpView.SetBorder(true)
	helpView.SetTitle(" Keyboard Shortcuts ")
	helpView.SetTitleAlign(tview.AlignCenter)
	helpView.SetTextAlign(tview.AlignLeft)

	helpText := `[yellow]Commands:[white]
  :w         Save estimate
  :q         Quit application
  :q!        Force quit (discard changes)
  :wq or :x  Save and quit
  :reset     Restore default selections

[yellow]Shortcuts:[white]
  Ctrl+S     Save estimate
  Ctrl+R     Restore default selections
  F1         Show this help

[yellow]Navigation:[white]
  Tab        Next field
  Shift+Tab  Previous field
  Enter      Open option list

[gray]Press Escape or Enter to close[white]`

	helpView.SetText(helpText)

	helpView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyEnter {
			a.modalVisible = false
			a.pages.RemovePage("modal")
			a.app.SetFocus(a.form)
			return nil
		}
		return event
	})

	// Center the help view using a flex container
	flex := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(helpView, 20, 1, true).
			AddItem(nil, 0, 1, false), 50, 1, true).
		AddItem(nil, 0, 1, false)

	a.modalVisible = true
	a.pages.AddPage("modal", flex, true, true)
	a.app.SetFocus(helpView)
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return -1
}
