package cli

import (
	"fmt"

	"AdoptionTutorial_API/internal/config"
	"AdoptionTutorial_API/internal/storage"

	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every command. Non-zero values override the environment.
type RootOptions struct {
	EnvFile  string
	Port     int
	DataFile string
	Driver   string
}

// NewRootCommand creates the api command. Without a subcommand it serves HTTP.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "api",
		Short:         "API Adoption tutorial server",
		Long:          "Serves the API Adoption tutorial and manages its data file.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env", "", "path to a .env file (default .env)")
	cmd.PersistentFlags().IntVarP(&opts.Port, "port", "p", 0, "HTTP port (overrides PORT)")
	cmd.PersistentFlags().StringVar(&opts.DataFile, "data", "", "data file path (overrides DATA_FILE)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver json|sqlite (overrides STORE_DRIVER)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewCallsCommand(opts))
	cmd.AddCommand(NewClearCallsCommand(opts))

	return cmd
}

func loadConfig(opts *RootOptions) (config.Config, error) {
	var files []string
	if opts.EnvFile != "" {
		files = append(files, opts.EnvFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return cfg, err
	}

	if opts.Port != 0 {
		if opts.Port < 0 || opts.Port > 65535 {
			return cfg, fmt.Errorf("invalid --port %d", opts.Port)
		}
		cfg.Port = opts.Port
	}
	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
	if opts.Driver != "" {
		cfg.StoreDriver = opts.Driver
	}
	return cfg, nil
}

func openStore(cfg config.Config) (storage.Store, error) {
	store, err := storage.Open(cfg.StoreDriver, cfg.DataFile, storage.NewSeeder(0))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// withStore loads config, opens the store and closes it after fn returns.
func withStore(opts *RootOptions, fn func(storage.Store) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
