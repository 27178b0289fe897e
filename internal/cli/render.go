package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

const (
	noDueDate         = "N/A"
	upcomingHeading   = "Upcoming Tasks"
	noUpcomingTasks   = "No upcoming tasks"
	maxDescriptionLen = 40
)

// Renderer formats tasks for the terminal
type Renderer struct {
	display config.DisplayConfig
	now     time.Time

	heading   lipgloss.Style
	completed lipgloss.Style
	badge     lipgloss.Style
	muted     lipgloss.Style
}

// NewRenderer creates a renderer. Relative due dates are measured from now.
func NewRenderer(display config.DisplayConfig, now time.Time) *Renderer {
	r := &Renderer{
		display:   display,
		now:       now,
		heading:   lipgloss.NewStyle(),
		completed: lipgloss.NewStyle(),
		badge:     lipgloss.NewStyle(),
		muted:     lipgloss.NewStyle(),
	}
	if display.Color {
		r.heading = r.heading.Bold(true).Underline(true)
		r.completed = r.completed.Strikethrough(true).Foreground(lipgloss.Color("8"))
		r.badge = r.badge.Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Padding(0, 1)
		r.muted = r.muted.Faint(true)
	}
	return r
}

// DueDate returns the display form of a task's due date
func (r *Renderer) DueDate(task *domain.Task) string {
	if task.DueDate == nil {
		return noDueDate
	}
	formatted := task.DueDate.Format(r.display.DateFormat)
	if !r.display.RelativeDates {
		return formatted
	}
	return fmt.Sprintf("%s (%s)", formatted, humanize.RelTime(*task.DueDate, r.now, "ago", "from now"))
}

// Badge renders the bell with the due-soon count
func (r *Renderer) Badge(count int) string {
	if count == 0 {
		return "🔔"
	}
	return "🔔" + r.badge.Render(fmt.Sprintf("%d", count))
}

// TaskTables writes the pending and completed sections followed by the bell
func (r *Renderer) TaskTables(w io.Writer, pending, completed []*domain.Task, dueSoon int) {
	r.PendingSection(w, pending)
	fmt.Fprintln(w)
	r.CompletedSection(w, completed)
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Badge(dueSoon))
}

// PendingSection writes the pending table
func (r *Renderer) PendingSection(w io.Writer, tasks []*domain.Task) {
	fmt.Fprintln(w, r.heading.Render("Pending Tasks"))
	r.table(w, tasks, "No pending tasks", lipgloss.NewStyle())
}

// CompletedSection writes the completed table with struck-through rows
func (r *Renderer) CompletedSection(w io.Writer, tasks []*domain.Task) {
	fmt.Fprintln(w, r.heading.Render("Completed Tasks"))
	r.table(w, tasks, "No completed tasks", r.completed)
}

// table aligns the rows with tabwriter first and styles whole lines after, so
// escape sequences never affect column widths
func (r *Renderer) table(w io.Writer, tasks []*domain.Task, empty string, rowStyle lipgloss.Style) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, r.muted.Render(empty))
		return
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDESCRIPTION\tDUE\tPRIORITY\tSTATUS")
	for _, task := range tasks {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Title,
			truncate(task.Description, maxDescriptionLen),
			r.DueDate(task),
			task.Priority,
			task.Status,
		)
	}
	tw.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	fmt.Fprintln(w, r.heading.Render(strings.TrimRight(lines[0], " ")))
	for _, line := range lines[1:] {
		fmt.Fprintln(w, rowStyle.Render(strings.TrimRight(line, " ")))
	}
}

// NotificationPanel writes the due-soon list
func (r *Renderer) NotificationPanel(w io.Writer, items []*domain.Task) {
	fmt.Fprintln(w, r.heading.Render(upcomingHeading))
	if len(items) == 0 {
		fmt.Fprintln(w, r.muted.Render(noUpcomingTasks))
		return
	}
	for _, task := range items {
		fmt.Fprintf(w, "%s - Due on %s\n", task.Title, task.DueDate.Format(r.display.DateFormat))
	}
}

func truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
