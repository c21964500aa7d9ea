package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sgrubb/therapy-log/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentMain)).
			Padding(0, 2).
			Underline(true)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSecondaryText))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAccentBright)).
				Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true)

	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain))

	statusStyles = map[models.SessionStatus]lipgloss.Style{
		models.StatusAttended:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
		models.StatusScheduled:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)),
		models.StatusDNA:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)),
		models.StatusCancelled:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
		models.StatusRescheduled: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
	}
)

// View renders the browser
func (m BrowseModel) View() string {
	var b strings.Builder

	title := "Therapy Log"
	if m.version != "" {
		title += " " + mutedStyle.Render("v"+m.version)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(mutedStyle.Render("Loading records..."))
		b.WriteString("\n")
	case m.loadErr != nil:
		b.WriteString(errorStyle.Render("Could not load records: " + m.loadErr.Error()))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press r to retry."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m BrowseModel) renderTabs() string {
	parts := make([]string, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == m.view {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m BrowseModel) renderTable() string {
	switch m.view {
	case viewClients:
		return m.renderClients()
	case viewSessions:
		return m.renderSessions()
	default:
		return m.renderTherapists()
	}
}

// pageBounds returns the slice range of the current page
func (m BrowseModel) pageBounds(count int) (int, int) {
	low := m.page * m.perPage
	high := min(low+m.perPage, count)
	if low > count {
		low = count
	}
	return low, high
}

func (m BrowseModel) renderClients() string {
	clients := m.visibleClients()
	if len(clients) == 0 {
		return mutedStyle.Render("No clients found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("  %-4s %-10s %-24s %-20s %-10s %-7s",
		"ID", "HOSPITAL#", "NAME", "THERAPIST", "DAY", "STATUS")))
	b.WriteString("\n")

	low, high := m.pageBounds(len(clients))
	for i := low; i < high; i++ {
		c := clients[i]

		name := truncateCell(c.FirstName+" "+c.LastName, 24)
		therapist := ""
		if c.Therapist != nil {
			therapist = truncateCell(c.Therapist.FirstName+" "+c.Therapist.LastName, 20)
		}
		day := ""
		if c.SessionDay != nil {
			day = string(*c.SessionDay)
		}
		status := "Open"
		if c.IsClosed {
			status = "Closed"
		}

		if i == m.selected {
			name = m.shimmer.Render(name, 24)
			line := fmt.Sprintf("%-4d %-10s %-24s %-20s %-10s %-7s",
				c.ID, c.HospitalNumber, name, therapist, day, status)
			b.WriteString(selectedRowStyle.Render("> ") + selectedRowStyle.Render(line))
		} else {
			line := fmt.Sprintf("  %-4d %-10s %-24s %-20s %-10s %-7s",
				c.ID, c.HospitalNumber, name, therapist, day, status)
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderPagination(len(clients)))
	return b.String()
}

func (m BrowseModel) renderSessions() string {
	sessions := m.visibleSessions()
	if len(sessions) == 0 {
		return mutedStyle.Render("No sessions found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("  %-4s %-17s %-24s %-12s %-22s",
		"ID", "SCHEDULED", "CLIENT", "STATUS", "TYPE")))
	b.WriteString("\n")

	low, high := m.pageBounds(len(sessions))
	for i := low; i < high; i++ {
		s := sessions[i]

		scheduled := s.ScheduledAt.Format("2006-01-02 15:04")
		client := ""
		if s.Client != nil {
			client = truncateCell(s.Client.FirstName+" "+s.Client.LastName, 24)
		}
		status := string(s.Status)
		kind := truncateCell(string(s.SessionType), 22)

		if i == m.selected {
			client = m.shimmer.Render(client, 24)
			line := fmt.Sprintf("%-4d %-17s %-24s %-12s %-22s",
				s.ID, scheduled, client, status, kind)
			b.WriteString(selectedRowStyle.Render("> ") + selectedRowStyle.Render(line))
		} else {
			styledStatus := status
			if st, ok := statusStyles[s.Status]; ok {
				styledStatus = st.Render(fmt.Sprintf("%-12s", status))
			} else {
				styledStatus = fmt.Sprintf("%-12s", status)
			}
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-4d %-17s %-24s ", s.ID, scheduled, client)))
			b.WriteString(styledStatus)
			b.WriteString(rowStyle.Render(" " + fmt.Sprintf("%-22s", kind)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderPagination(len(sessions)))
	return b.String()
}

func (m BrowseModel) renderTherapists() string {
	if len(m.therapists) == 0 {
		return mutedStyle.Render("No therapists found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerRowStyle.Render(fmt.Sprintf("  %-4s %-28s %-5s", "ID", "NAME", "ADMIN")))
	b.WriteString("\n")

	low, high := m.pageBounds(len(m.therapists))
	for i := low; i < high; i++ {
		t := m.therapists[i]

		name := truncateCell(t.FirstName+" "+t.LastName, 28)
		admin := "no"
		if t.IsAdmin {
			admin = "yes"
		}

		if i == m.selected {
			name = m.shimmer.Render(name, 28)
			line := fmt.Sprintf("%-4d %-28s %-5s", t.ID, name, admin)
			b.WriteString(selectedRowStyle.Render("> ") + selectedRowStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-4d %-28s %-5s", t.ID, name, admin)))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderPagination(len(m.therapists)))
	return b.String()
}

func (m BrowseModel) renderPagination(count int) string {
	pages := (count + m.perPage - 1) / m.perPage
	if pages <= 1 {
		return ""
	}
	return mutedStyle.Render(fmt.Sprintf("\npage %d/%d (%d records)", m.page+1, pages, count))
}

func (m BrowseModel) renderFooter() string {
	if m.searchActive {
		return searchStyle.Render("search: "+m.searchQuery+"_") +
			mutedStyle.Render("  enter confirm | esc clear")
	}

	help := "tab/1-3 switch | j/k move | h/l page | / search | r reload | q quit"
	if m.searchQuery != "" {
		return searchStyle.Render("filter: "+m.searchQuery) + "  " + mutedStyle.Render(help)
	}
	return mutedStyle.Render(help)
}

// truncateCell shortens a value to fit a fixed-width column
func truncateCell(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
