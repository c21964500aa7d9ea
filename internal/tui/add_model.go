package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/models"
)

// formStep is the current field in the add therapist wizard
type formStep int

const (
	stepFirstName formStep = iota
	stepLastName
	stepAdmin
	stepComplete
)

type therapistSavedMsg struct {
	therapist *models.Therapist
	err       error
}

// AddTherapistModel is the TUI model for creating a therapist
type AddTherapistModel struct {
	client *api.Client

	currentStep formStep
	inputs      []textinput.Model
	isAdmin     bool

	width  int
	height int

	saving    bool
	completed bool
	cancelled bool
	err       error
	fieldErr  string
	created   *models.Therapist

	shimmer *Shimmer
}

// NewAddTherapistModel creates the add therapist form
func NewAddTherapistModel(client *api.Client) AddTherapistModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 100
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[stepFirstName].Placeholder = "First name (required)"
	inputs[stepFirstName].Focus()
	inputs[stepLastName].Placeholder = "Last name (required)"

	return AddTherapistModel{
		client:  client,
		inputs:  inputs,
		shimmer: NewShimmer(),
	}
}

// Init starts the shimmer tick
func (m AddTherapistModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.ShouldTick() {
		cmds = append(cmds, tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
			return shimmerTickMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

// save creates the therapist through the facade
func (m AddTherapistModel) save() tea.Cmd {
	client := m.client
	input := api.CreateTherapist{
		FirstName: strings.TrimSpace(m.inputs[stepFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[stepLastName].Value()),
	}
	if m.isAdmin {
		input.IsAdmin = &m.isAdmin
	}
	return func() tea.Msg {
		t, err := client.CreateTherapist(context.Background(), input)
		return therapistSavedMsg{therapist: t, err: err}
	}
}

// Update handles messages
func (m AddTherapistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case therapistSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.created = msg.therapist
		m.completed = true
		m.currentStep = stepComplete
		return m, tea.Quit

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
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advanceStep()
		}

		if m.currentStep == stepAdmin {
			switch msg.String() {
			case "y", "Y":
				m.isAdmin = true
				return m.advanceStep()
			case "n", "N":
				m.isAdmin = false
				return m.advanceStep()
			}
			return m, nil
		}
	}

	if m.saving || m.currentStep >= stepAdmin {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	return m, cmd
}

// advanceStep validates the current field and moves forward
func (m AddTherapistModel) advanceStep() (tea.Model, tea.Cmd) {
	m.fieldErr = ""

	switch m.currentStep {
	case stepFirstName:
		if strings.TrimSpace(m.inputs[stepFirstName].Value()) == "" {
			m.fieldErr = "First name is required."
			return m, nil
		}
		m.inputs[stepFirstName].Blur()
		m.currentStep = stepLastName
		m.inputs[stepLastName].Focus()
		return m, textinput.Blink

	case stepLastName:
		if strings.TrimSpace(m.inputs[stepLastName].Value()) == "" {
			m.fieldErr = "Last name is required."
			return m, nil
		}
		m.inputs[stepLastName].Blur()
		m.currentStep = stepAdmin
		return m, nil

	case stepAdmin:
		m.saving = true
		return m, m.save()
	}

	return m, nil
}

// View renders the form
func (m AddTherapistModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Add Therapist"))
	b.WriteString("\n\n")

	labels := []string{"First name", "Last name"}
	for i, input := range m.inputs {
		label := labels[i]
		if formStep(i) == m.currentStep {
			label = m.shimmer.Render(label, 12)
		} else {
			label = mutedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	adminLabel := "Admin"
	if m.currentStep == stepAdmin {
		adminLabel = m.shimmer.Render(adminLabel, 12)
	} else {
		adminLabel = mutedStyle.Render(adminLabel)
	}
	b.WriteString(adminLabel)
	b.WriteString("\n")
	answer := "no"
	if m.isAdmin {
		answer = "yes"
	}
	if m.currentStep == stepAdmin {
		b.WriteString(searchStyle.Render(answer) + mutedStyle.Render("  (y/n, enter to save)"))
	} else {
		b.WriteString(rowStyle.Render(answer))
	}
	b.WriteString("\n\n")

	if m.fieldErr != "" {
		b.WriteString(errorStyle.Render(m.fieldErr))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.saving {
		b.WriteString(mutedStyle.Render("Saving..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter next | esc cancel"))
	return b.String()
}
