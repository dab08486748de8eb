package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abdul-hamid-achik/testy/packages/core/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [config-file...]",
	Short: "Validate testy config files",
	Long: `Check config files against the testy config schema without running
anything. With no arguments, the config file found in the current
directory is checked.

Examples:
  testy validate
  testy validate .testy.yaml ci/.testy.json`,
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files := args
	if len(files) == 0 {
		found := config.FindConfig(".")
		if found == "" {
			return withExitCode(ExitConfigError, fmt.Errorf("no config file found (looked for %v)", config.ConfigFilenames))
		}
		files = []string{found}
	}

	hasErrors := false
	for _, file := range files {
		if err := validateFile(file); err != nil {
			hasErrors = true
			var verr *config.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s:\n", file)
				for _, p := range verr.Problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
				}
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Error in %s: %v\n", file, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
	}

	if hasErrors {
		return withExitCode(ExitConfigError, nil)
	}
	return nil
}

func validateFile(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return config.Validate(data, strings.EqualFold(filepath.Ext(file), ".json"))
}
