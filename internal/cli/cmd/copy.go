package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/cli/styles"
	"github.com/bnema/canvasclip/internal/infrastructure/clipboard"
	"github.com/bnema/canvasclip/internal/logging"
)

var copyBundle string

var copyCmd = &cobra.Command{
	Use:   "copy [cards.json]",
	Short: "Copy cards to the clipboard",
	Long: `Read a JSON array of cards and copy them.

Cards are read from the given file, or from stdin when omitted or "-".
Without --bundle the plain-text form goes to the system clipboard.
With --bundle both representations are written as a JSON bundle that
'canvasclip paste --bundle' can read back.

Examples:
  canvasclip copy selection.json
  canvasclip copy selection.json --bundle clip.json
  cat selection.json | canvasclip copy --bundle -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().StringVarP(&copyBundle, "bundle", "b", "", `write a JSON bundle to this file ("-" for stdout)`)
}

func runCopy(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "copy")
	renderer := styles.NewCardsRenderer(app.Theme)

	var input string
	if len(args) > 0 {
		input = args[0]
	}
	in, err := openInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	cards, err := readCards(in)
	if err != nil {
		return err
	}

	var (
		transport port.CopyTransport
		target    = "clipboard"
		status    io.Writer = os.Stdout
	)
	if copyBundle != "" {
		out, err := openOutput(copyBundle)
		if err != nil {
			return err
		}
		defer out.Close()
		transport = clipboard.NewBundleWriter(out)
		target = copyBundle
		if copyBundle == stdioPath {
			target = "stdout"
			status = os.Stderr
		}
	} else {
		system := clipboard.New()
		if !system.Available() {
			return clipboard.ErrNoClipboardTool
		}
		transport = system
	}

	uc := app.NewCopyUseCase(transport)
	if err := uc.Copy(ctx, cards); err != nil {
		return err
	}

	fmt.Fprint(status, renderer.RenderCopied(len(cards), target))
	return nil
}
