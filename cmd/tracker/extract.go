package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"meeting-tracker/pkg/llmprovider"
	"meeting-tracker/pkg/llmresponse"
)

// Extractor is the part of llmprovider.Manager the extract command needs.
type Extractor interface {
	Extract(ctx context.Context, transcript string) (llmprovider.Result, error)
}

type extractOutput struct {
	Provider string            `json:"provider"`
	Model    string            `json:"model"`
	Items    llmresponse.Batch `json:"items"`
}

func ExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract action items from a transcript file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readTranscript(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			m, err := newManager()
			if err != nil {
				return err
			}
			return runExtract(cmd.Context(), m, text, cmd.OutOrStdout())
		},
	}
}

func runExtract(ctx context.Context, ex Extractor, text string, w io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("transcript is empty")
	}
	res, err := ex.Extract(ctx, text)
	if err != nil {
		return err
	}
	return writeJSON(w, extractOutput{
		Provider: res.Provider,
		Model:    res.Model,
		Items:    res.Items,
	})
}

func readTranscript(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(b), nil
}
