package cli

import (
	"encoding/json"
	"fmt"

	"AdoptionTutorial_API/internal/models"
	"AdoptionTutorial_API/internal/storage"

	"github.com/spf13/cobra"
)

const offlineNote = `

Works on the data file directly. With the json driver the file is locked while the
server runs, so stop the server first (or use the admin HTTP endpoints instead).`

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace all records with freshly generated ones",
		Long:  "Replace all records with freshly generated ones." + offlineNote,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(store storage.Store) error {
				records := storage.NewSeeder(0).Generate(storage.DefaultRecordCount)
				if err := store.Replace(records); err != nil {
					return fmt.Errorf("reset records: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reset: %d records\n", len(records))
				return nil
			})
		},
	}
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all records",
		Long:  "Remove all records without generating new ones." + offlineNote,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(store storage.Store) error {
				if err := store.Replace(nil); err != nil {
					return fmt.Errorf("clear records: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "clear: 0 records")
				return nil
			})
		},
	}
}

// NewCallsCommand creates the calls command, which prints the call log as JSON.
func NewCallsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "calls",
		Short: "Print the call log",
		Long:  "Print the call log as JSON, oldest first." + offlineNote,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(store storage.Store) error {
				calls, err := store.Calls()
				if err != nil {
					return fmt.Errorf("read calls: %w", err)
				}
				if calls == nil {
					calls = []models.Call{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(calls)
			})
		},
	}
}

// NewClearCallsCommand creates the clear-calls command.
func NewClearCallsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-calls",
		Short: "Empty the call log",
		Long:  "Empty the call log." + offlineNote,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, func(store storage.Store) error {
				if err := store.ClearCalls(); err != nil {
					return fmt.Errorf("clear calls: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "clear-calls: done")
				return nil
			})
		},
	}
}
