package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgrubb/therapy-log/internal/api"
)

// Run starts the interactive record browser
func Run(client *api.Client) error {
	p := tea.NewProgram(NewBrowseModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunAddTherapist starts the interactive add therapist form
func RunAddTherapist(client *api.Client) error {
	p := tea.NewProgram(NewAddTherapistModel(client), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AddTherapistModel); ok {
		if m.cancelled {
			fmt.Println("Cancelled.")
		} else if m.completed && m.created != nil {
			fmt.Printf("Added therapist %s %s - ID: %d\n",
				m.created.FirstName, m.created.LastName, m.created.ID)
		} else if m.err != nil {
			fmt.Printf("Error: %v\n", m.err)
		}
	}

	return nil
}
