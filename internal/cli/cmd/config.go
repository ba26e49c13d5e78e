package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/canvasclip/internal/cli/styles"
	"github.com/bnema/canvasclip/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, create and watch the canvasclip configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  `Write the default config file and its JSON schema. Existing files are kept unless --force is given.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Validate the config file on every change",
	Long:  `Watch the config file and print the effective configuration each time it is saved. Invalid edits are reported and ignored.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigWatch,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configWatchCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderConfigPath(app.Manager.GetConfigFile()))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path, err := app.Manager.InitConfigFile(configForce)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewConfigRenderer(app.Theme).RenderCreated(path))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	if app.ConfigErr != nil {
		fmt.Println(renderer.RenderError(app.ConfigErr))
	}
	fmt.Println(renderer.RenderConfigPath(app.Manager.GetConfigFile()))
	fmt.Println(renderer.RenderConfig(app.Config))
	return nil
}

func runConfigWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if app.ConfigErr != nil {
		return app.ConfigErr
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		fmt.Println(renderer.RenderConfig(cfg))
	})
	if err := app.Manager.Watch(); err != nil {
		return err
	}

	fmt.Println(renderer.RenderConfigPath(app.Manager.GetConfigFile()))
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	return nil
}
