package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/cli/styles"
	"github.com/bnema/canvasclip/internal/infrastructure/clipboard"
	"github.com/bnema/canvasclip/internal/logging"
)

var (
	pasteAt     string
	pasteBundle string
	pasteJSON   bool
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Turn the clipboard contents into cards",
	Long: `Resolve whatever the clipboard offers into new cards at a drop position.

Payloads are tried in order: image files, copied cards, an image URL,
code copied from an editor (wrapped as markdown), then plain text.

Examples:
  canvasclip paste --at 120,80
  canvasclip paste --bundle clip.json --json
  canvasclip copy a.json --bundle - | canvasclip paste --bundle - --at 0,0`,
	Args: cobra.NoArgs,
	RunE: runPaste,
}

func init() {
	rootCmd.AddCommand(pasteCmd)
	pasteCmd.Flags().StringVar(&pasteAt, "at", "0,0", "drop position as x,y")
	pasteCmd.Flags().StringVarP(&pasteBundle, "bundle", "b", "", `read a JSON bundle from this file ("-" for stdin)`)
	pasteCmd.Flags().BoolVar(&pasteJSON, "json", false, "print the created cards as JSON")
}

func runPaste(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "paste")

	drop, err := parseDrop(pasteAt)
	if err != nil {
		return err
	}

	var source port.PayloadSource
	if pasteBundle != "" {
		in, err := openInput(pasteBundle)
		if err != nil {
			return err
		}
		defer in.Close()
		source = clipboard.NewBundleSource(in)
	} else {
		source = clipboard.New()
	}

	payload, err := source.ReadPayload(ctx)
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}

	uc, err := app.NewPasteUseCase()
	if err != nil {
		return err
	}
	cards := uc.Paste(ctx, payload, drop)

	if pasteJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	fmt.Print(styles.NewCardsRenderer(app.Theme).RenderCards(cards))
	return nil
}
