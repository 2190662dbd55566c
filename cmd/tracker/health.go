package main

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"meeting-tracker/pkg/llmprovider"
)

var errUnhealthy = errors.New("no LLM provider is reachable")

// Prober is the part of llmprovider.Manager the health command needs.
type Prober interface {
	CheckHealth(ctx context.Context) llmprovider.HealthStatus
}

func HealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Ping the LLM provider chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			return runHealth(cmd.Context(), m, cmd.OutOrStdout())
		},
	}
}

func runHealth(ctx context.Context, p Prober, w io.Writer) error {
	status := p.CheckHealth(ctx)
	if err := writeJSON(w, status); err != nil {
		return err
	}
	if status.Status != llmprovider.HealthOK {
		return errUnhealthy
	}
	return nil
}
