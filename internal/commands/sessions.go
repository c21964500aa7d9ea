package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/models"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions",
	Long:  "List all sessions with their client, therapist, schedule, and attendance status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		sessions, err := client.ListSessions(cmd.Context())
		if err != nil {
			printError(err)
			return nil
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-4s %-17s %-20s %-12s %-22s %-12s %s\n",
			"ID", "SCHEDULED", "CLIENT", "STATUS", "TYPE", "DELIVERY", "REASON")
		for _, s := range sessions {
			clientName := ""
			if s.Client != nil {
				clientName = truncate(s.Client.FirstName+" "+s.Client.LastName, 18)
			}
			reason := ""
			if s.MissedReason != nil {
				reason = string(*s.MissedReason)
			}
			fmt.Printf("%-4d %-17s %-20s %-12s %-22s %-12s %s\n",
				s.ID,
				s.ScheduledAt.Format("2006-01-02 15:04"),
				clientName,
				s.Status,
				s.SessionType,
				s.DeliveryMethod,
				reason)
		}
		return nil
	},
}

var addSessionCmd = &cobra.Command{
	Use:   "add-session",
	Short: "Add a new session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		clientID, _ := cmd.Flags().GetUint("client-id")
		therapistID, _ := cmd.Flags().GetUint("therapist-id")
		scheduledStr, _ := cmd.Flags().GetString("scheduled-at")
		status, _ := cmd.Flags().GetString("status")
		sessionType, _ := cmd.Flags().GetString("session-type")
		delivery, _ := cmd.Flags().GetString("delivery-method")

		scheduledAt, err := parseDate(scheduledStr)
		if err != nil {
			fmt.Printf("Error: --scheduled-at %v\n", err)
			return nil
		}

		input := api.CreateSession{
			ClientID:       clientID,
			TherapistID:    therapistID,
			ScheduledAt:    scheduledAt,
			Status:         models.SessionStatus(status),
			SessionType:    models.SessionType(sessionType),
			DeliveryMethod: models.DeliveryMethod(delivery),
		}
		if v, _ := cmd.Flags().GetString("missed-reason"); v != "" {
			r := models.MissedReason(v)
			input.MissedReason = &r
		}
		if v, _ := cmd.Flags().GetString("occurred-at"); v != "" {
			occurredAt, perr := parseDate(v)
			if perr != nil {
				fmt.Printf("Error: --occurred-at %v\n", perr)
				return nil
			}
			input.OccurredAt = &occurredAt
		}
		if v, _ := cmd.Flags().GetString("notes"); v != "" {
			input.Notes = &v
		}

		created, err := client.CreateSession(cmd.Context(), input)
		if err != nil {
			printError(err)
			return nil
		}

		fmt.Printf("Created %s session for client %d - ID: %d\n",
			created.Status, created.ClientID, created.ID)
		return nil
	},
}

func init() {
	addSessionCmd.Flags().Uint("client-id", 0, "Client id (required)")
	addSessionCmd.Flags().Uint("therapist-id", 0, "Therapist id (required)")
	addSessionCmd.Flags().String("scheduled-at", "", "Scheduled time, e.g. 2026-03-01T10:00:00 (required)")
	addSessionCmd.Flags().String("status", "", "Status: Scheduled, Attended, DNA, Cancelled, Rescheduled (required)")
	addSessionCmd.Flags().String("session-type", "", "Session type, e.g. Child, Parent, AssessmentChild (required)")
	addSessionCmd.Flags().String("delivery-method", "", "Delivery: FaceToFace, Online, Telephone, Email (required)")
	addSessionCmd.Flags().String("missed-reason", "", "Reason when the session was missed, e.g. Illness")
	addSessionCmd.Flags().String("occurred-at", "", "Actual time the session took place")
	addSessionCmd.Flags().String("notes", "", "Free-text notes")
}
