package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/hamscan/ham/internal/config"
	"github.com/hamscan/ham/internal/errors"
	"github.com/hamscan/ham/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initForce bool

// initCmd writes a default .ham.yaml in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .ham.yaml config file",
	Long: `Write a .ham.yaml with default settings to the current directory.

Edit the file to change probe targets, intervals, or the domain list
used for censorship detection.

Examples:
  ham init
  ham init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(config.ConfigFileName, initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file without asking")
}

// initCommand writes the default config to path, confirming before it
// overwrites an existing file.
func initCommand(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		ok, err := confirmOverwrite(path)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't encode default configuration",
			"This is unexpected - please report it.")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Can't write %s", path),
			"Check directory permissions and try again.")
	}

	fmt.Printf("%s Created %s\n", ui.SymbolPass, path)
	return nil
}

// confirmOverwrite asks before clobbering an existing config. When
// stdin is not a terminal there is nobody to ask, so it declines.
func confirmOverwrite(path string) (bool, error) {
	if !ui.IsInputTerminal() {
		return false, errors.New(errors.ErrConfig,
			fmt.Sprintf("%s already exists", path),
			"Use --force to overwrite it.")
	}

	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Overwrite existing %s?", path)).
				Description("Your current settings will be lost").
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return false, nil
	}
	return confirm, nil
}
