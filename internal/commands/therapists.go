package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/tui"
)

var therapistsCmd = &cobra.Command{
	Use:   "therapists",
	Short: "List therapists",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		therapists, err := client.ListTherapists(cmd.Context())
		if err != nil {
			printError(err)
			return nil
		}

		if len(therapists) == 0 {
			fmt.Println("No therapists found. Use 'therapy-log add-therapist' to create one.")
			return nil
		}

		fmt.Printf("%-4s %-20s %-20s %s\n", "ID", "FIRST NAME", "LAST NAME", "ADMIN")
		for _, t := range therapists {
			admin := ""
			if t.IsAdmin {
				admin = "yes"
			}
			fmt.Printf("%-4d %-20s %-20s %s\n", t.ID, t.FirstName, t.LastName, admin)
		}
		return nil
	},
}

var addTherapistCmd = &cobra.Command{
	Use:   "add-therapist",
	Short: "Add a new therapist",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")
		isAdmin, _ := cmd.Flags().GetBool("admin")

		// Launch the interactive form when no details were given on
		// the command line
		if firstName == "" && lastName == "" {
			return tui.RunAddTherapist(client)
		}

		input := api.CreateTherapist{FirstName: firstName, LastName: lastName}
		if isAdmin {
			input.IsAdmin = &isAdmin
		}

		therapist, err := client.CreateTherapist(cmd.Context(), input)
		if err != nil {
			printError(err)
			return nil
		}

		fmt.Printf("Created therapist %s %s - ID: %d\n", therapist.FirstName, therapist.LastName, therapist.ID)
		return nil
	},
}

func init() {
	addTherapistCmd.Flags().String("first-name", "", "First name (required)")
	addTherapistCmd.Flags().String("last-name", "", "Last name (required)")
	addTherapistCmd.Flags().Bool("admin", false, "Grant admin access")
}
