package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"meeting-tracker/config"
	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/log"
)

// RootCmd is the offline companion to the API: it runs the provider chain
// directly without touching the database.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Meeting action item tracker CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		ExtractCmd(),
		HealthCmd(),
	)

	return root
}

// newManager loads configuration and builds the provider chain with a quiet
// logger so only the JSON result reaches stdout.
func newManager() (*llmprovider.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})
	return llmprovider.NewFromConfig(cfg, nil, logger)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
