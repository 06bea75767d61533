package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/internal/cli/model"
	"github.com/bnema/rpmview/internal/infrastructure/config"
)

var pickSave bool

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose language, body type and gender interactively",
	Long: `Walk through language, body type and gender and print the resulting URL.

With --save the choice is written to the [avatar] section of the config file.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().BoolVar(&pickSave, "save", false, "persist the choice to the config file")
}

func runPick(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	current, err := app.Config.AvatarConfig()
	if err != nil {
		return err
	}

	p := tea.NewProgram(model.NewPickerModel(app.Theme, current))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	picker, ok := finalModel.(model.PickerModel)
	if !ok {
		return fmt.Errorf("unexpected model type")
	}
	if !picker.Done() {
		return nil
	}

	chosen := picker.Config()
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, app.Theme.RenderURL(chosen.URL(""), chosen)); err != nil {
		return err
	}

	if !pickSave {
		return nil
	}
	if err := app.ConfigManager.SaveAvatar(config.FromAvatar(chosen)); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderSuccess("saved to "+app.ConfigManager.GetConfigFile()))
	return err
}
