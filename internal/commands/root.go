package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgrubb/therapy-log/internal/api"
	"github.com/sgrubb/therapy-log/internal/config"
	"github.com/sgrubb/therapy-log/internal/ipc"
	"github.com/sgrubb/therapy-log/internal/store"
	"github.com/sgrubb/therapy-log/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "therapy-log",
	Short: "A record-keeping tool for therapists",
	Long: `therapy-log tracks clients and therapy sessions in a local database.
Run without arguments to open the interactive record browser, or use the
subcommands to list and add records from the command line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := openClient(cmd)
		if err != nil {
			return err
		}
		defer cleanup()
		return tui.Run(client)
	},
}

// openClient builds the full stack for one command invocation: config,
// store, dispatcher with every channel registered, and the typed facade.
// The returned cleanup closes the database connection; call it exactly
// once when done.
func openClient(cmd *cobra.Command) (*api.Client, func(), error) {
	cfg, err := config.Load(cmd.Root().PersistentFlags())
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	dispatcher := ipc.NewDispatcher(logger)
	ipc.RegisterHandlers(dispatcher, st, version)

	cleanup := func() {
		if err := st.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}
	return api.New(dispatcher), cleanup, nil
}

// printError renders a facade error for the terminal, listing field
// problems when the failure was a validation one.
func printError(err error) {
	if apiErr, ok := err.(*api.Error); ok {
		fmt.Printf("Error: %s\n", apiErr.Message)
		for field, msg := range apiErr.Fields {
			fmt.Printf("  - %s %s\n", field, msg)
		}
		return
	}
	fmt.Printf("Error: %v\n", err)
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("database-path", "", "Path to the database file")

	rootCmd.AddCommand(therapistsCmd)
	rootCmd.AddCommand(addTherapistCmd)
	rootCmd.AddCommand(clientsCmd)
	rootCmd.AddCommand(addClientCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(addSessionCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
