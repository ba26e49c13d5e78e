package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/canvasclip/internal/infrastructure/config"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON schemas for the config file and the cards format",
	Long: `Write config.schema.json and cards.schema.json.

Schemas go to the config directory unless --out names another directory.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOut, "out", "o", "", "output directory (default: config directory)")
}

func runSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	dir := schemaOut
	if dir == "" {
		var err error
		if dir, err = config.GetConfigDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, "config.schema.json")
	if err := config.WriteSchemaFile(configPath, config.ConfigSchema()); err != nil {
		return err
	}
	cardsPath := filepath.Join(dir, "cards.schema.json")
	if err := config.WriteSchemaFile(cardsPath, config.CardsSchema()); err != nil {
		return err
	}

	fmt.Printf("Generated JSON schema: %s\n", configPath)
	fmt.Printf("Generated JSON schema: %s\n", cardsPath)
	return nil
}
