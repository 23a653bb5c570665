package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/puruvats57/google-calender/internal/task"
)

type modalMode int

const (
	modalCreate modalMode = iota
	modalEdit
)

// modal gathers name and category for a pending creation range or an
// existing task. It owns its own text input and stays open on
// validation failure.
type modal struct {
	mode   modalMode
	taskID string

	// The creation range resolved by the drag selection, captured at
	// open time.
	startDate string
	endDate   string

	name   textinput.Model
	catIdx int
	errMsg string
}

func newNameInput(initial string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Task name"
	ti.CharLimit = 128
	ti.Width = 32
	ti.SetValue(initial)
	ti.Focus()
	return ti
}

func newCreateModal(startDate, endDate string) *modal {
	return &modal{
		mode:      modalCreate,
		startDate: startDate,
		endDate:   endDate,
		name:      newNameInput(""),
	}
}

func newEditModal(t task.Task) *modal {
	catIdx := 0
	for i, c := range task.Categories() {
		if c == t.Category {
			catIdx = i
			break
		}
	}
	return &modal{
		mode:      modalEdit,
		taskID:    t.ID,
		startDate: t.StartDate,
		endDate:   t.EndDate,
		name:      newNameInput(t.Name),
		catIdx:    catIdx,
	}
}

func (d *modal) category() task.Category {
	return task.Categories()[d.catIdx]
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.modal
	switch msg.String() {
	case m.cfg.Keys.Cancel, "esc":
		m.modal = nil
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.NextField, "tab", "down":
		d.catIdx = (d.catIdx + 1) % len(task.Categories())
		return m, nil
	case "shift+tab", "up":
		d.catIdx = (d.catIdx + len(task.Categories()) - 1) % len(task.Categories())
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		return m.commitModal()
	default:
		var cmd tea.Cmd
		d.name, cmd = d.name.Update(msg)
		return m, cmd
	}
}

// commitModal validates and commits through the store. Validation
// failures surface on the modal and keep it open; a successful commit
// always closes it and clears the pending state.
func (m *Model) commitModal() (tea.Model, tea.Cmd) {
	d := m.modal
	name, ok := validateName(d.name.Value())
	if !ok {
		d.errMsg = "Task name is required"
		return m, nil
	}
	if d.mode == modalCreate && (d.startDate == "" || d.endDate == "") {
		// The selection flow resolves a range before the modal opens,
		// so this only trips on a malformed caller.
		d.errMsg = "Task dates are required"
		return m, nil
	}

	cat := d.category()
	var err error
	if d.mode == modalEdit {
		err = m.store.Update(d.taskID, task.Patch{Name: &name, Category: &cat})
		m.status = fmt.Sprintf("Updated %q", name)
	} else {
		err = m.store.Add(task.Task{
			ID:        m.newID(),
			Name:      name,
			Category:  cat,
			StartDate: d.startDate,
			EndDate:   d.endDate,
		})
		m.status = fmt.Sprintf("Created %q (%s to %s)", name, d.startDate, d.endDate)
	}
	if err != nil {
		// Persistence is best-effort: the in-memory change is in, only
		// the write failed.
		m.status = fmt.Sprintf("save failed: %v", err)
	}
	m.modal = nil
	return m, nil
}

func validateName(raw string) (string, bool) {
	name := trimmed(raw)
	return name, name != ""
}
