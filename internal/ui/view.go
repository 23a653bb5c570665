package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/puruvats57/google-calender/internal/dateutil"
	"github.com/puruvats57/google-calender/internal/layout"
	"github.com/puruvats57/google-calender/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	weekdayStyle  = lipgloss.NewStyle().Faint(true).Underline(true)
	adjacentStyle = lipgloss.NewStyle().Faint(true)
	todayStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	selectStyle   = lipgloss.NewStyle().Background(lipgloss.Color("24"))
	hoverStyle    = lipgloss.NewStyle().Background(lipgloss.Color("238"))
	overflowStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	categoryStyles = map[task.Category]lipgloss.Style{
		task.CategoryToDo:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		task.CategoryInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		task.CategoryReview:     lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		task.CategoryCompleted:  lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m *Model) View() string {
	if m.modal != nil {
		return m.viewModal()
	}

	var b strings.Builder

	b.WriteString(m.viewTitle())
	b.WriteString("\n")
	b.WriteString(m.viewWeekdayHeader())
	b.WriteString("\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.viewHelp()))

	return b.String()
}

func (m *Model) viewTitle() string {
	monthName := time.Month(m.month0 + 1).String()
	left := titleStyle.Render(fmt.Sprintf("%s %d", monthName, m.year))

	right := filterSummary(m.filters)
	if m.searching {
		right = "Search: " + m.searchInput.View()
	} else if trimmed(m.search) != "" {
		right += "  search:" + trimmed(m.search)
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) viewWeekdayHeader() string {
	dw := m.dayWidth()
	var b strings.Builder
	for _, name := range weekdayNames {
		b.WriteString(weekdayStyle.Render(padTo(name, dw)))
	}
	return b.String()
}

func (m *Model) viewGrid() string {
	buckets := m.derived().buckets
	selLo, selHi, selecting := m.sel.Highlight()
	today := dateutil.FormatYMD(m.now())

	var b strings.Builder
	for week := 0; week*7 < len(m.grid); week++ {
		numbers := make([]string, 0, 7)
		bars := make([]string, 0, 7)
		overflow := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			idx := week*7 + col
			numbers = append(numbers, m.cellNumber(idx, today, selLo, selHi, selecting))
			bars = append(bars, m.cellBar(idx, buckets[idx]))
			overflow = append(overflow, m.cellOverflow(buckets[idx]))
		}
		b.WriteString(strings.Join(numbers, ""))
		b.WriteString("\n")
		b.WriteString(strings.Join(bars, ""))
		b.WriteString("\n")
		b.WriteString(strings.Join(overflow, ""))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) cellNumber(idx int, today string, selLo, selHi int, selecting bool) string {
	d := m.grid[idx]
	dw := m.dayWidth()
	text := padTo(fmt.Sprintf("%2d", d.Day()), dw)

	switch {
	case selecting && idx >= selLo && idx <= selHi:
		return selectStyle.Render(text)
	case idx == m.moveHoverIdx:
		return hoverStyle.Render(text)
	case dateutil.FormatYMD(d) == today:
		return todayStyle.Render(text)
	case int(d.Month())-1 != m.month0:
		return adjacentStyle.Render(text)
	default:
		return text
	}
}

// cellBar paints the fronted task's bar segment for this day (pressing
// the overflow line rotates which task that is). The name shows on the
// day the bar enters the visible grid; continuation days are filled so
// a multi-day bar reads as one run. Edge glyphs mark the resize
// handles.
func (m *Model) cellBar(idx int, bucket layout.Bucket) string {
	dw := m.dayWidth()
	t, ok := m.frontedTask(idx, bucket)
	if !ok {
		return strings.Repeat(" ", dw)
	}
	bar, ok := layout.BarFor(t, m.grid[0], dw)
	if !ok {
		return strings.Repeat(" ", dw)
	}

	date := dateutil.FormatYMD(m.grid[idx])
	isStart := date == t.StartDate
	isEnd := date == t.EndDate
	// The bar's first cell inside the grid carries the name even when
	// the range started before the visible month.
	labelCell := idx == bar.OffsetDays || (bar.OffsetDays < 0 && idx == 0)

	body := strings.Repeat("─", dw-2)
	if labelCell {
		body = padWith(truncate(t.Name, dw-2), '─', dw-2)
	}
	left, right := "─", "─"
	if isStart {
		left = "▌"
	}
	if isEnd {
		right = "▐"
	}
	return categoryStyles[t.Category].Render(left + body + right)
}

func (m *Model) cellOverflow(bucket layout.Bucket) string {
	dw := m.dayWidth()
	if n := bucket.Overflow(); n > 0 {
		return overflowStyle.Render(padTo(fmt.Sprintf(" +%d more", n), dw))
	}
	return strings.Repeat(" ", dw)
}

func (m *Model) viewModal() string {
	d := m.modal

	title := "Create Task"
	if d.mode == modalEdit {
		title = "Edit Task"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s to %s\n\n", d.startDate, d.endDate))
	b.WriteString("Name:     " + d.name.View() + "\n")
	b.WriteString("Category: ")
	for i, c := range task.Categories() {
		label := " " + string(c) + " "
		if i == d.catIdx {
			label = categoryStyles[c].Reverse(true).Render(label)
		} else {
			label = categoryStyles[c].Render(label)
		}
		b.WriteString(label)
	}
	b.WriteString("\n")
	if d.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(d.errMsg) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter save • tab category • esc cancel"))

	box := modalStyle.Render(b.String())
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m *Model) viewHelp() string {
	k := m.cfg.Keys
	return fmt.Sprintf("%s/%s month • %s today • %s search • %s weeks window • 1-4 category filters • %s quit",
		k.PrevMonth, k.NextMonth, k.Today, k.Search, k.CycleWeeks, k.Quit)
}

func filterSummary(f task.Filters) string {
	parts := make([]string, 0, 2)
	if len(f.Categories) > 0 {
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = string(c)
		}
		parts = append(parts, strings.Join(names, ","))
	} else {
		parts = append(parts, "all categories")
	}
	if f.WeeksWindow > 0 {
		parts = append(parts, fmt.Sprintf("next %dw", f.WeeksWindow))
	}
	return strings.Join(parts, " • ")
}

func padTo(s string, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}

func padWith(s string, fill rune, w int) string {
	r := []rune(s)
	if len(r) >= w {
		return string(r[:w])
	}
	return s + strings.Repeat(string(fill), w-len(r))
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:w])
	}
	return string(r[:w-1]) + "…"
}
