package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/models"
)

// view selects which record table is on screen
type view int

const (
	viewClients view = iota
	viewSessions
	viewTherapists
)

var viewNames = []string{"Clients", "Sessions", "Therapists"}

// recordsMsg carries a full reload of all three record sets
type recordsMsg struct {
	clients    []models.Client
	sessions   []models.Session
	therapists []models.Therapist
	version    string
	err        error
}

type shimmerTickMsg struct{}

// BrowseModel is the TUI model for browsing records
type BrowseModel struct {
	client *api.Client

	width  int
	height int

	view    view
	loading bool
	loadErr error

	clients    []models.Client
	sessions   []models.Session
	therapists []models.Therapist
	version    string

	selected int
	page     int
	perPage  int

	searchActive bool
	searchQuery  string

	shimmer *Shimmer
}

// NewBrowseModel creates the record browser backed by the typed facade
func NewBrowseModel(client *api.Client) BrowseModel {
	return BrowseModel{
		client:  client,
		loading: true,
		perPage: 10,
		shimmer: NewShimmer(),
	}
}

// loadRecords fetches all record sets through the facade
func (m BrowseModel) loadRecords() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx := context.Background()
		var msg recordsMsg

		clients, err := client.ListClients(ctx)
		if err != nil {
			return recordsMsg{err: err}
		}
		msg.clients = clients

		sessions, err := client.ListSessions(ctx)
		if err != nil {
			return recordsMsg{err: err}
		}
		msg.sessions = sessions

		therapists, err := client.ListTherapists(ctx)
		if err != nil {
			return recordsMsg{err: err}
		}
		msg.therapists = therapists

		if version, err := client.Version(ctx); err == nil {
			msg.version = version
		}
		return msg
	}
}

// Init loads records and starts the shimmer ticking
func (m BrowseModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadRecords()}
	if m.shimmer.ShouldTick() {
		cmds = append(cmds, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsMsg:
		m.loading = false
		m.loadErr = msg.err
		if msg.err == nil {
			m.clients = msg.clients
			m.sessions = msg.sessions
			m.therapists = msg.therapists
			m.version = msg.version
		}
		m.clampSelection()
		return m, nil

	case shimmerTickMsg:
		if m.shimmer.ShouldTick() {
			return m, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
				return shimmerTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// header(2) + tabs(2) + column header(2) + pagination(1) + help(1)
		// + margins leave the rest for rows
		available := m.height - 10
		if available < 3 {
			available = 3
		}
		m.perPage = available
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % 3
			m.resetCursor()
			return m, nil

		case "1":
			m.view = viewClients
			m.resetCursor()
			return m, nil

		case "2":
			m.view = viewSessions
			m.resetCursor()
			return m, nil

		case "3":
			m.view = viewTherapists
			m.resetCursor()
			return m, nil

		case "up", "k":
			return m.moveSelection(-1), nil

		case "down", "j":
			return m.moveSelection(1), nil

		case "left", "h":
			return m.turnPage(-1), nil

		case "right", "l":
			return m.turnPage(1), nil

		case "/":
			m.searchActive = true
			m.shimmer.SetActive(false)
			return m, nil

		case "r":
			m.loading = true
			return m, m.loadRecords()
		}
	}

	return m, nil
}

// handleSearchKeys handles key input while the search bar has focus
func (m BrowseModel) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchActive = false
		m.searchQuery = ""
		m.shimmer.SetActive(true)
		m.resetCursor()
		return m, nil

	case "enter":
		m.searchActive = false
		m.shimmer.SetActive(true)
		return m, nil

	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
		}
		m.resetCursor()
		return m, nil

	default:
		if len(msg.String()) == 1 {
			m.searchQuery += msg.String()
			m.resetCursor()
		}
		return m, nil
	}
}

// rowCount is the number of rows in the current (filtered) view
func (m BrowseModel) rowCount() int {
	switch m.view {
	case viewClients:
		return len(m.visibleClients())
	case viewSessions:
		return len(m.visibleSessions())
	default:
		return len(m.therapists)
	}
}

func (m *BrowseModel) resetCursor() {
	m.selected = 0
	m.page = 0
	m.shimmer.Reset()
}

func (m *BrowseModel) clampSelection() {
	if count := m.rowCount(); m.selected >= count && count > 0 {
		m.selected = count - 1
	} else if count == 0 {
		m.selected = 0
	}
}

func (m BrowseModel) moveSelection(delta int) BrowseModel {
	count := m.rowCount()
	next := m.selected + delta
	if next < 0 || next >= count {
		return m
	}
	m.selected = next
	m.shimmer.Reset()

	// Follow the selection across page boundaries
	if m.selected < m.page*m.perPage {
		m.page--
	}
	if m.selected >= (m.page+1)*m.perPage {
		m.page++
	}
	return m
}

func (m BrowseModel) turnPage(delta int) BrowseModel {
	count := m.rowCount()
	pages := (count + m.perPage - 1) / m.perPage
	next := m.page + delta
	if next < 0 || next >= pages {
		return m
	}
	m.page = next

	low := m.page * m.perPage
	high := min(low+m.perPage-1, count-1)
	if m.selected < low {
		m.selected = low
	}
	if m.selected > high {
		m.selected = high
	}
	m.shimmer.Reset()
	return m
}

// visibleClients applies the search filter to the client list
func (m BrowseModel) visibleClients() []models.Client {
	if m.searchQuery == "" {
		return m.clients
	}
	q := strings.ToLower(m.searchQuery)
	var out []models.Client
	for _, c := range m.clients {
		name := strings.ToLower(c.FirstName + " " + c.LastName)
		if strings.Contains(name, q) || strings.Contains(strings.ToLower(c.HospitalNumber), q) {
			out = append(out, c)
		}
	}
	return out
}

// visibleSessions applies the search filter to the session list
func (m BrowseModel) visibleSessions() []models.Session {
	if m.searchQuery == "" {
		return m.sessions
	}
	q := strings.ToLower(m.searchQuery)
	var out []models.Session
	for _, s := range m.sessions {
		name := ""
		if s.Client != nil {
			name = strings.ToLower(s.Client.FirstName + " " + s.Client.LastName)
		}
		if strings.Contains(name, q) || strings.Contains(strings.ToLower(string(s.Status)), q) {
			out = append(out, s)
		}
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
