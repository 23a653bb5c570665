// Package ui is the Bubble Tea front of the planner: it maps terminal
// mouse and key events onto the gesture, interaction and store
// operations, and renders the month grid.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/puruvats57/google-calender/internal/config"
	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/gesture"
	"github.com/puruvats57/google-calender/internal/interact"
	"github.com/puruvats57/google-calender/internal/layout"
	"github.com/puruvats57/google-calender/internal/task"
)

// headerRows is the title line plus the weekday header.
const headerRows = 2

// cellRows is the height of one day cell: day number, task line,
// overflow line.
const cellRows = 3

// doubleClickWindow is how close two presses on the same bar must be
// to count as a double click.
const doubleClickWindow = 400 * time.Millisecond

type Model struct {
	store *task.Store
	cfg   config.Config

	year   int
	month0 int
	grid   []time.Time

	width  int
	height int

	filters task.Filters
	search  string

	searchInput textinput.Model
	searching   bool

	sel    *gesture.Selector
	resize *interact.Resize
	move   *interact.Move

	moveGrabIdx  int
	moveMoved    bool
	moveHoverIdx int

	modal *modal

	// dayCycle rotates which task fronts a day that holds several, so
	// every task on a shared day stays reachable. Keyed by date.
	dayCycle map[string]int

	lastClickAt   time.Time
	lastClickTask string

	memo derivedMemo

	status string

	// now is swappable so tests can pin the clock.
	now func() time.Time

	newID func() string
}

func NewModel(store *task.Store, cfg config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 128
	ti.Width = 30

	m := &Model{
		store:        store,
		cfg:          cfg,
		filters:      task.Filters{WeeksWindow: cfg.DefaultWeeks},
		searchInput:  ti,
		dayCycle:     map[string]int{},
		moveHoverIdx: -1,
		status:       "Drag across days to create a task. Double-click a task to edit.",
		now:          time.Now,
		newID:        uuid.NewString,
	}
	m.sel = gesture.NewSelector(m.onRangeSelected)

	today := dateutil.Today()
	m.setMonth(today.Year(), int(today.Month())-1)
	return m
}

// Option tweaks a Model before the program starts.
type Option func(*Model)

// WithMonth opens the planner on a specific month instead of the
// current one. month0 is zero-based.
func WithMonth(year, month0 int) Option {
	return func(m *Model) {
		m.setMonth(year, month0)
	}
}

func Run(store *task.Store, cfg config.Config, opts ...Option) error {
	m := NewModel(store, cfg)
	for _, opt := range opts {
		opt(m)
	}
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) setMonth(year, month0 int) {
	m.year = year
	m.month0 = month0
	m.grid = dateutil.MonthGrid(year, month0)

	// A month switch invalidates indices held by any open gesture.
	m.sel.Abandon()
	m.resize = nil
	m.move = nil
	m.moveHoverIdx = -1
}

func (m *Model) onRangeSelected(sel gesture.Selection) {
	if sel.StartIdx < 0 || sel.EndIdx >= len(m.grid) {
		return
	}
	start := dateutil.FormatYMD(m.grid[sel.StartIdx])
	end := dateutil.FormatYMD(m.grid[sel.EndIdx])
	m.modal = newCreateModal(start, end)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(16, msg.Width/4)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		return m.updateModal(msg)
	}
	if m.searching {
		return m.updateSearch(msg)
	}

	switch msg.String() {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.PrevMonth:
		y, mo := m.year, m.month0-1
		if mo < 0 {
			y, mo = y-1, 11
		}
		m.setMonth(y, mo)
	case m.cfg.Keys.NextMonth:
		y, mo := m.year, m.month0+1
		if mo > 11 {
			y, mo = y+1, 0
		}
		m.setMonth(y, mo)
	case m.cfg.Keys.Today:
		today := dateutil.Today()
		m.setMonth(today.Year(), int(today.Month())-1)
	case m.cfg.Keys.Search:
		m.searching = true
		m.searchInput.SetValue(m.search)
		m.searchInput.Focus()
		m.status = "Search: type to filter by name, Enter to keep, Esc to clear"
	case m.cfg.Keys.CycleWeeks:
		m.filters.WeeksWindow = (m.filters.WeeksWindow + 1) % 4
		m.status = weeksStatus(m.filters.WeeksWindow)
	case "1", "2", "3", "4":
		cats := task.Categories()
		i := int(msg.String()[0] - '1')
		m.filters = m.filters.ToggleCategory(cats[i])
		m.status = "Category filter: " + filterSummary(m.filters)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.searching = false
		m.search = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.status = "Search cleared"
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.searching = false
		m.search = m.searchInput.Value()
		m.searchInput.Blur()
		m.status = "Search: " + displaySearch(m.search)
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.search = m.searchInput.Value()
		return m, cmd
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointerDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		m.pointerMove(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.pointerUp(msg.X, msg.Y)
	}
	return m, nil
}

// pointerDown routes a press to one of the three gesture kinds: an
// edge handle starts a resize, a bar body starts a move (or, on a
// quick second press, opens the editor), a crowded day's overflow
// line cycles which task fronts that day, anywhere else starts a
// range selection.
func (m *Model) pointerDown(x, y int) {
	idx, ok := m.cellAt(x, y)
	if !ok {
		return
	}

	if (y-headerRows)%cellRows == 2 {
		if bucket := m.derived().buckets[idx]; len(bucket.Tasks) > 1 {
			m.cycleDay(idx, bucket)
			return
		}
	}

	if t, zone, hit := m.barHit(x, y, idx); hit {
		// Only body presses count as clicks; a handle press is the
		// start of a resize, never half of a double click.
		if zone == interact.ZoneBody &&
			t.ID == m.lastClickTask && m.now().Sub(m.lastClickAt) <= doubleClickWindow {
			m.lastClickTask = ""
			m.modal = newEditModal(t)
			return
		}

		switch zone {
		case interact.ZoneLeftHandle, interact.ZoneRightHandle:
			m.lastClickTask = ""
			r, err := interact.StartResize(t, zone, x, m.dayWidth())
			if err == nil {
				m.resize = r
			}
		case interact.ZoneBody:
			m.lastClickTask = t.ID
			m.lastClickAt = m.now()
			mv, err := interact.StartMove(t)
			if err == nil {
				m.move = mv
				m.moveGrabIdx = idx
				m.moveMoved = false
				m.moveHoverIdx = idx
			}
		}
		return
	}

	m.lastClickTask = ""
	m.sel.Start(idx, m.now())
}

// cycleDay rotates the fronted task for a day that holds several.
func (m *Model) cycleDay(idx int, bucket layout.Bucket) {
	date := dateutil.FormatYMD(m.grid[idx])
	m.dayCycle[date] = (m.dayCycle[date] + 1) % len(bucket.Tasks)
	if t, ok := m.frontedTask(idx, bucket); ok {
		m.status = fmt.Sprintf("Showing %q (%d of %d on %s)",
			t.Name, m.dayCycle[date]+1, len(bucket.Tasks), date)
	}
}

func (m *Model) pointerMove(x, y int) {
	if m.resize != nil {
		// Resize commits continuously; a frame past the opposite edge
		// is silently skipped.
		if _, err := m.resize.Apply(m.store, x); err != nil {
			m.status = "save failed: " + err.Error()
		}
		return
	}
	if m.move != nil {
		if idx, ok := m.cellAt(x, y); ok {
			if idx != m.moveGrabIdx {
				m.moveMoved = true
			}
			m.moveHoverIdx = idx
		}
		return
	}
	if m.sel.Dragging() {
		if idx, ok := m.cellAt(x, y); ok {
			m.sel.Move(idx, m.now())
		}
	}
}

func (m *Model) pointerUp(x, y int) {
	if m.resize != nil {
		m.resize = nil
		return
	}
	if m.move != nil {
		mv := m.move
		moved := m.moveMoved
		m.move = nil
		m.moveMoved = false
		m.moveHoverIdx = -1
		// A press-release without crossing into another cell is a
		// plain click, not a drop.
		if !moved {
			return
		}
		if idx, ok := m.cellAt(x, y); ok {
			if err := mv.Commit(m.store, m.grid[idx]); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.status = "Task moved"
			}
		}
		return
	}
	if m.sel.Dragging() {
		m.sel.Release()
	}
}

// dayWidth is the terminal-column width of one day cell, derived from
// the window; it doubles as the unit for all bar math.
func (m *Model) dayWidth() int {
	w := m.width / 7
	if w < 8 {
		w = 8
	}
	return w
}

// cellAt maps a terminal coordinate to a grid cell index.
func (m *Model) cellAt(x, y int) (int, bool) {
	col := x / m.dayWidth()
	row := (y - headerRows) / cellRows
	if col < 0 || col > 6 || y < headerRows || row < 0 {
		return 0, false
	}
	idx := row*7 + col
	if idx >= len(m.grid) {
		return 0, false
	}
	return idx, true
}

// frontedTask is the task a day cell currently surfaces: the bucket
// entry selected by that day's cycle offset, defaulting to the first.
func (m *Model) frontedTask(idx int, bucket layout.Bucket) (task.Task, bool) {
	n := len(bucket.Tasks)
	if n == 0 {
		return task.Task{}, false
	}
	off := m.dayCycle[dateutil.FormatYMD(m.grid[idx])] % n
	return bucket.Tasks[off], true
}

// barHit reports the task bar under the pointer, if the press landed
// on a cell's task line, along with the zone: the first two columns of
// the bar's starting cell are the left handle, the last two of its
// ending cell the right handle, everything else the body.
func (m *Model) barHit(x, y int, idx int) (task.Task, interact.Zone, bool) {
	if (y-headerRows)%cellRows != 1 {
		return task.Task{}, interact.ZoneBody, false
	}
	t, ok := m.frontedTask(idx, m.derived().buckets[idx])
	if !ok {
		return task.Task{}, interact.ZoneBody, false
	}

	dw := m.dayWidth()
	inCell := x % dw
	date := dateutil.FormatYMD(m.grid[idx])
	if date == t.StartDate && inCell < 2 {
		return t, interact.ZoneLeftHandle, true
	}
	if date == t.EndDate && inCell >= dw-2 {
		return t, interact.ZoneRightHandle, true
	}
	return t, interact.ZoneBody, true
}

func weeksStatus(w int) string {
	switch w {
	case 0:
		return "Time window: all tasks"
	case 1:
		return "Time window: within 1 week"
	default:
		return fmt.Sprintf("Time window: within %d weeks", w)
	}
}

func displaySearch(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
