// Package tui provides the interactive motolog dashboard.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/motolog/internal/cli"
	"github.com/theirongolddev/motolog/internal/config"
	"github.com/theirongolddev/motolog/internal/ledger"
	"github.com/theirongolddev/motolog/internal/model"
	"github.com/theirongolddev/motolog/internal/report"
	"github.com/theirongolddev/motolog/internal/share"
	"github.com/theirongolddev/motolog/internal/tui/components"
	"github.com/theirongolddev/motolog/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabToday = iota
	tabWeek
	tabMonth
	tabHistory
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 140
	minContentHeight = 5
)

type formKind int

const (
	formNone formKind = iota
	formAddDelivery
	formAddRate
	formEditDelivery
	formEditRate
	formReconcile
	formSetup
)

// formValues holds the fields the open form writes into. It lives behind a
// pointer so the bindings survive copies of App.
type formValues struct {
	delivery DeliveryValues
	rate     DailyRateValues
	total    string
	setup    SetupValues
	editID   int64
}

// warnings collects storage problems reported by the ledger.
type warnings struct {
	last error
}

// reportSharedMsg reports the outcome of a share.
type reportSharedMsg struct {
	sink string
	err  error
}

// App is the root bubbletea model.
type App struct {
	store *ledger.Store
	cfg   config.Config
	warns *warnings

	snap model.Snapshot
	rev  uint64

	day        model.Date // selected day; week and month follow it
	activeTab  int
	cursor     int // selected row on the Today tab
	histCursor int
	pendingDel *dayRow // armed by the first delete press

	width    int
	height   int
	showHelp bool

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	sharing bool

	form     *huh.Form
	formKind formKind
	vals     *formValues

	status    string
	statusErr bool
}

// NewApp builds the dashboard over s, starting on day.
func NewApp(s *ledger.Store, cfg config.Config, day model.Date) App {
	w := &warnings{}
	s.SetWarn(func(err error) { w.last = err })

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		store:   s,
		cfg:     cfg,
		warns:   w,
		day:     day,
		keys:    defaultKeys(),
		help:    help.New(),
		spinner: sp,
		vals:    &formValues{},
		snap:    s.Snapshot(),
		rev:     s.Revision(),
	}
	a.sync()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// sync reloads the snapshot when the store changed and surfaces any
// storage warning raised since the last call.
func (a *App) sync() {
	if a.rev != a.store.Revision() {
		a.snap = a.store.Snapshot()
		a.rev = a.store.Revision()
	}
	if a.warns.last != nil {
		a.setStatus(a.warns.last.Error(), true)
		a.warns.last = nil
	}
	a.cursor = clamp(a.cursor, 0, len(a.dayRows())-1)
	a.histCursor = clamp(a.histCursor, 0, len(a.historyDays())-1)
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, 72))
		}
		return a, nil

	case reportSharedMsg:
		a.sharing = false
		if msg.err != nil {
			a.setStatus("share failed: "+msg.err.Error(), true)
		} else {
			a.setStatus("report sent to "+msg.sink, false)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.sharing {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if a.form != nil {
			if msg.String() == "esc" {
				a.closeForm()
				a.setStatus("cancelled", false)
				return a, nil
			}
			return a.updateForm(msg)
		}
		return a.updateKey(msg)
	}

	// Cursor blinks and other form internals.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Any key other than a second delete disarms a pending delete.
	if a.pendingDel != nil && !key.Matches(msg, k.Delete) {
		a.pendingDel = nil
		a.setStatus("", false)
	}

	if len(msg.Runes) == 1 {
		if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
			a.activeTab = tab
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return a, tea.Quit
	case key.Matches(msg, k.Help):
		a.showHelp = true
	case key.Matches(msg, k.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case key.Matches(msg, k.PrevTab):
		a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
	case key.Matches(msg, k.PrevDay):
		a.shiftDay(-1)
	case key.Matches(msg, k.NextDay):
		a.shiftDay(1)
	case key.Matches(msg, k.Today):
		a.day = a.store.Today()
		a.cursor = 0
	case key.Matches(msg, k.Up):
		a.moveCursor(-1)
	case key.Matches(msg, k.Down):
		a.moveCursor(1)
	case key.Matches(msg, k.Open):
		if a.activeTab == tabHistory {
			if days := a.historyDays(); len(days) > 0 {
				a.day = days[a.histCursor].Date
				a.activeTab = tabToday
				a.cursor = 0
			}
		}
	case key.Matches(msg, k.AddDeliv):
		a.vals.delivery = DeliveryValues{}
		return a.openForm(formAddDelivery, DeliveryForm(&a.vals.delivery))
	case key.Matches(msg, k.AddRate):
		a.vals.rate = DailyRateValues{}
		return a.openForm(formAddRate, DailyRateForm(&a.vals.rate))
	case key.Matches(msg, k.Edit):
		return a.editSelected()
	case key.Matches(msg, k.Delete):
		a.deleteSelected()
	case key.Matches(msg, k.Reconcile):
		a.vals.total = a.dayEntry().GrandTotal.StringFixed(2)
		return a.openForm(formReconcile, ReconcileForm(a.day.String(), &a.vals.total))
	case key.Matches(msg, k.Share):
		return a.shareReport(share.FromConfig(a.cfg.Report.ShareCommand))
	case key.Matches(msg, k.Copy):
		return a.shareReport(share.Fallback{share.ClipboardSink{}})
	case key.Matches(msg, k.Settings):
		a.vals.setup = SetupValuesFrom(a.cfg)
		return a.openForm(formSetup, SetupForm(&a.vals.setup))
	}
	return a, nil
}

// shiftDay moves the selected day by one step of the active tab's period.
func (a *App) shiftDay(dir int) {
	switch a.activeTab {
	case tabWeek:
		a.day = a.day.AddDays(7 * dir)
	case tabMonth:
		if dir < 0 {
			a.day = a.day.FirstOfMonth().AddDays(-1)
		} else {
			a.day = a.day.LastOfMonth().AddDays(1)
		}
	default:
		a.day = a.day.AddDays(dir)
	}
	a.cursor = 0
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabToday:
		a.cursor = clamp(a.cursor+delta, 0, len(a.dayRows())-1)
	case tabHistory:
		a.histCursor = clamp(a.histCursor+delta, 0, len(a.historyDays())-1)
	}
}

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.form = f.WithShowHelp(true)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, 72))
	}
	a.setStatus("", false)
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.submitForm()
		a.closeForm()
		return a, nil
	case huh.StateAborted:
		a.closeForm()
		return a, nil
	}
	return a, cmd
}

// submitForm applies the values of the completed form.
func (a *App) submitForm() {
	v := a.vals
	var err error
	switch a.formKind {
	case formAddDelivery:
		var r model.DeliveryRecord
		if r, err = a.store.AddDelivery(v.delivery.Address, v.delivery.Fee); err == nil {
			a.day = r.Date
			a.setStatus(fmt.Sprintf("added %s %s", r.ClientAddress, cli.FormatFloatMoney(r.Fee)), false)
		}
	case formAddRate:
		var r model.DailyRateRecord
		if r, err = a.store.AddDailyRate(v.rate.Workplace, v.rate.Rate, v.rate.Schedule); err == nil {
			a.day = r.Date
			a.setStatus(fmt.Sprintf("added %s %s", r.Workplace, cli.FormatFloatMoney(r.Rate)), false)
		}
	case formEditDelivery:
		var r model.DeliveryRecord
		if r, err = a.store.EditDelivery(v.editID, v.delivery.Address, v.delivery.Fee); err == nil {
			a.day = r.Date
			a.setStatus("updated "+r.ClientAddress, false)
		}
	case formEditRate:
		var r model.DailyRateRecord
		if r, err = a.store.EditDailyRate(v.editID, v.rate.Workplace, v.rate.Rate, v.rate.Schedule); err == nil {
			a.day = r.Date
			a.setStatus("updated "+r.Workplace, false)
		}
	case formReconcile:
		amount, perr := ledger.ParseAmount(v.total)
		if perr != nil {
			err = perr
			break
		}
		if adj, ok := a.store.ReconcileDate(a.day, amount); ok {
			a.setStatus("added "+adj.ClientAddress, false)
		} else {
			a.setStatus("total already matches", false)
		}
	case formSetup:
		next := v.setup.Apply(a.cfg)
		if err = next.Validate(); err != nil {
			break
		}
		if err = config.Save(next); err != nil {
			break
		}
		restart := next.General != a.cfg.General
		a.cfg = next
		cli.Currency = next.Report.Currency
		theme.SetActive(next.Appearance.Theme)
		if restart {
			a.setStatus("saved; storage changes apply on restart", false)
		} else {
			a.setStatus("settings saved", false)
		}
	}
	if err != nil {
		a.setStatus(err.Error(), true)
	}
	a.sync()
}

func (a App) editSelected() (tea.Model, tea.Cmd) {
	rows := a.dayRows()
	if a.activeTab != tabToday || len(rows) == 0 {
		return a, nil
	}
	row := rows[a.cursor]
	a.vals.editID = row.id
	if row.rate {
		r, _ := a.store.DailyRate(row.id)
		a.vals.rate = DailyRateValues{Workplace: r.Workplace, Rate: plainAmount(r.Rate), Schedule: r.Schedule}
		return a.openForm(formEditRate, DailyRateForm(&a.vals.rate))
	}
	r, _ := a.store.Delivery(row.id)
	a.vals.delivery = DeliveryValues{Address: r.ClientAddress, Fee: plainAmount(r.Fee)}
	return a.openForm(formEditDelivery, DeliveryForm(&a.vals.delivery))
}

// deleteSelected arms on the first press and deletes on the second.
func (a *App) deleteSelected() {
	rows := a.dayRows()
	if a.activeTab != tabToday || len(rows) == 0 {
		return
	}
	row := rows[a.cursor]
	if a.pendingDel == nil || a.pendingDel.id != row.id || a.pendingDel.rate != row.rate {
		a.pendingDel = &row
		a.setStatus(fmt.Sprintf("press x again to delete %s", row.label), true)
		return
	}
	a.pendingDel = nil
	var ok bool
	if row.rate {
		ok = a.store.DeleteDailyRate(row.id)
	} else {
		ok = a.store.DeleteDelivery(row.id)
	}
	if ok {
		a.setStatus("deleted "+row.label, false)
	}
	a.sync()
}

func (a App) shareReport(chain share.Fallback) (tea.Model, tea.Cmd) {
	if a.sharing {
		return a, nil
	}
	text := report.Format(a.snap, a.day, report.Options{Currency: a.cfg.Report.Currency})
	a.sharing = true
	a.setStatus("sharing report…", false)
	deliver := func() tea.Msg {
		used, err := chain.Deliver(context.Background(), report.Title, text)
		if err != nil {
			return reportSharedMsg{err: err}
		}
		return reportSharedMsg{sink: used.Name()}
	}
	return a, tea.Batch(a.spinner.Tick, deliver)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return padHeight(fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  motolog needs at least %d columns.\n",
			a.width, minTerminalWidth), a.height)
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) viewForm() string {
	t := theme.Active
	titles := map[formKind]string{
		formAddDelivery:  "New delivery · " + a.store.Today().LongForm(),
		formAddRate:      "New daily rate · " + a.store.Today().LongForm(),
		formEditDelivery: "Edit delivery",
		formEditRate:     "Edit daily rate",
		formReconcile:    "Correct total · " + a.day.LongForm(),
		formSetup:        "Settings",
	}
	title := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(titles[a.formKind])
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(title + "\n\n" + a.form.View() + "\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("esc to cancel"))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active
	title := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("Keyboard shortcuts")
	tabs := make([]string, len(components.Tabs))
	for i, tab := range components.Tabs {
		tabs[i] = string(tab.Key) + " " + tab.Name
	}
	body := title + "\n\n" +
		a.help.FullHelpView(a.keys.FullHelp()) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(strings.Join(tabs, "  ")) + "\n\n" +
		lipgloss.NewStyle().Foreground(t.TextDim).Render("Press any key to close")
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w, a.periodLabel())

	message := a.status
	if a.sharing {
		message = a.spinner.View() + " " + message
	}
	statusBar := components.RenderStatusBar(w, a.help.ShortHelpView(a.keys.ShortHelp()), message, a.statusErr)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabToday:
		content = a.renderTodayTab(cw)
	case tabWeek:
		content = a.renderWeekTab(cw)
	case tabMonth:
		content = a.renderMonthTab(cw)
	case tabHistory:
		content = a.renderHistoryTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// periodLabel names the period the active tab shows.
func (a App) periodLabel() string {
	switch a.activeTab {
	case tabWeek:
		start := a.day.StartOfWeek()
		return start.String() + " – " + start.AddDays(6).String()
	case tabMonth:
		return a.day.MonthName()
	case tabHistory:
		return cli.Plural(len(a.historyDays()), "day", "days")
	default:
		return a.day.LongForm()
	}
}

// tabAtX returns the tab under column x of the tab bar, or -1.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		w := components.TabVisualWidth(tab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func plainAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

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
