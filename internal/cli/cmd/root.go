// Package cmd provides Cobra CLI commands for canvasclip.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/canvasclip/internal/cli"
	"github.com/bnema/canvasclip/internal/cli/styles"
	"github.com/bnema/canvasclip/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "canvasclip",
		Short: "Copy and paste canvas cards through the clipboard",
		Long: `canvasclip - clipboard content negotiation for canvas cards.

Copy writes selected cards as plain text and as a lossless structured form.
Paste inspects whatever the clipboard offers and turns it into cards:
images, previously copied cards, image URLs, code copied from an editor,
or plain text.

The system clipboard carries plain text only. Use --bundle to round-trip
every representation through a JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

// renderError styles a command error with the app theme, or the default
// theme when the app never initialized.
func renderError(err error) string {
	theme := styles.NewTheme()
	if app != nil && app.Theme != nil {
		theme = app.Theme
	}
	return styles.NewCardsRenderer(theme).RenderError(err)
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
