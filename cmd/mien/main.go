package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sant0-9/mien/internal/character/endora"
	"github.com/sant0-9/mien/internal/server"
	"github.com/sant0-9/mien/internal/tui"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:          "mien",
		Short:        "Character sensibility for image generation prompts",
		Long:         "mien applies a sitcom character's unified sensory logic to image generation prompts,\nwith an intensity dial from 0 (untouched) to 10 (complete saturation).",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
	}
	root.Version = version
	root.AddCommand(serveCmd(), enhanceCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI() error {
	app := tui.NewApp()
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the character tools over MCP on stdin/stdout",
		RunE: func(_ *cobra.Command, _ []string) error {
			return server.ServeStdio(version)
		},
	}
}

func enhanceCmd() *cobra.Command {
	var (
		intensity int
		details   bool
		metadata  bool
	)

	cmd := &cobra.Command{
		Use:   "enhance [prompt]",
		Short: "Enhance a single prompt and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			resp, err := endora.Enhance(strings.Join(args, " "), intensity, details)
			if err != nil {
				return err
			}

			if details {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Println(endora.FormatForGeneration(resp.EnhancedPrompt, resp.Intensity, metadata))
			return nil
		},
	}

	cmd.Flags().IntVarP(&intensity, "intensity", "i", 5, "transformation intensity 0-10")
	cmd.Flags().BoolVarP(&details, "details", "d", false, "print the full transformation record as JSON")
	cmd.Flags().BoolVar(&metadata, "metadata", false, "append the operator metadata line")
	return cmd
}
