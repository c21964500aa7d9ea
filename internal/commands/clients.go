package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/models"
)

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients",
	Long:  "List all clients with their hospital number, assigned therapist, and case status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		clients, err := client.ListClients(cmd.Context())
		if err != nil {
			printError(err)
			return nil
		}

		if len(clients) == 0 {
			fmt.Println("No clients found.")
			return nil
		}

		fmt.Printf("%-4s %-10s %-25s %-12s %-20s %s\n", "ID", "HOSPITAL#", "NAME", "DOB", "THERAPIST", "STATUS")
		for _, c := range clients {
			name := truncate(c.FirstName+" "+c.LastName, 23)
			therapist := ""
			if c.Therapist != nil {
				therapist = truncate(c.Therapist.FirstName+" "+c.Therapist.LastName, 18)
			}
			status := "open"
			if c.IsClosed {
				status = "closed"
			}
			fmt.Printf("%-4d %-10s %-25s %-12s %-20s %s\n",
				c.ID,
				c.HospitalNumber,
				name,
				c.DOB.Format("2006-01-02"),
				therapist,
				status)
		}
		return nil
	},
}

// truncate shortens s to fit a fixed-width column
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

var addClientCmd = &cobra.Command{
	Use:   "add-client",
	Short: "Add a new client",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		hospitalNumber, _ := cmd.Flags().GetString("hospital-number")
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		dobStr, _ := cmd.Flags().GetString("dob")
		therapistID, _ := cmd.Flags().GetUint("therapist-id")

		dob, err := parseDate(dobStr)
		if err != nil {
			fmt.Printf("Error: --dob %v\n", err)
			return nil
		}

		input := api.CreateClient{
			HospitalNumber: hospitalNumber,
			FirstName:      firstName,
			LastName:       lastName,
			DOB:            dob,
			TherapistID:    therapistID,
		}
		if day, _ := cmd.Flags().GetString("session-day"); day != "" {
			d := models.SessionDay(day)
			input.SessionDay = &d
		}
		if v, _ := cmd.Flags().GetString("session-time"); v != "" {
			input.SessionTime = &v
		}
		if v, _ := cmd.Flags().GetString("phone"); v != "" {
			input.Phone = &v
		}
		if v, _ := cmd.Flags().GetString("email"); v != "" {
			input.Email = &v
		}
		if v, _ := cmd.Flags().GetString("address"); v != "" {
			input.Address = &v
		}
		if v, _ := cmd.Flags().GetString("notes"); v != "" {
			input.Notes = &v
		}
		if cmd.Flags().Changed("pre-score") {
			v, _ := cmd.Flags().GetFloat64("pre-score")
			input.PreScore = &v
		}

		created, err := client.CreateClient(cmd.Context(), input)
		if err != nil {
			printError(err)
			return nil
		}

		fmt.Printf("Created client %s %s (%s) - ID: %d\n",
			created.FirstName, created.LastName, created.HospitalNumber, created.ID)
		return nil
	},
}

// parseDate accepts the same literal forms the channel surface does
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("is required")
	}
	for _, format := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("must be a date like 2012-03-15")
}

func init() {
	addClientCmd.Flags().String("hospital-number", "", "Hospital number (required, unique)")
	addClientCmd.Flags().String("first-name", "", "First name (required)")
	addClientCmd.Flags().String("last-name", "", "Last name (required)")
	addClientCmd.Flags().String("dob", "", "Date of birth, e.g. 2012-03-15 (required)")
	addClientCmd.Flags().Uint("therapist-id", 0, "Assigned therapist id (required)")
	addClientCmd.Flags().String("session-day", "", "Usual session day, e.g. Tuesday")
	addClientCmd.Flags().String("session-time", "", "Usual session time, e.g. 10:00")
	addClientCmd.Flags().String("phone", "", "Contact phone number")
	addClientCmd.Flags().String("email", "", "Contact email address")
	addClientCmd.Flags().String("address", "", "Home address")
	addClientCmd.Flags().String("notes", "", "Free-text notes")
	addClientCmd.Flags().Float64("pre-score", 0, "Pre-treatment assessment score")
}
