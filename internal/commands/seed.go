package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sgrubb/therapy-log/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample data",
	Long:  "Load a small sample dataset of therapists, clients, and sessions for trying the tool out",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := seed.Run(cmd.Context(), client); err != nil {
			printError(err)
			return nil
		}

		fmt.Println("Sample data loaded.")
		return nil
	},
}
