package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/rpmview/assets"
	"github.com/bnema/rpmview/internal/application/usecase"
)

var installForce bool

var installScriptCmd = &cobra.Command{
	Use:   "install-script",
	Short: "Install the frame setup script into the plugins directory",
	Long: `Write the bundled RpmFrameSetup.js to
{browser.plugins_dir}/RpmWebBrowser/Scripts/RpmFrameSetup.js.

An existing script that differs is kept, with a warning, unless --force is given.`,
	RunE: runInstallScript,
}

func init() {
	rootCmd.AddCommand(installScriptCmd)

	installScriptCmd.Flags().BoolVar(&installForce, "force", false, "overwrite a modified script")
}

func runInstallScript(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	path, err := installScript(app.Config.Browser.PluginsDir, installForce)
	if errors.Is(err, errScriptModified) {
		_, werr := fmt.Fprintln(out, app.Theme.RenderWarning(err.Error()))
		return werr
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderSuccess("installed "+path))
	return err
}

var errScriptModified = errors.New("setup script was modified (use --force to overwrite)")

func installScript(pluginsDir string, force bool) (string, error) {
	const (
		dirPerm  = 0o755
		filePerm = 0o644
	)
	path := filepath.Join(pluginsDir, filepath.FromSlash(usecase.SetupScriptPath))
	content := []byte(assets.FrameSetupScript)

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			return path, nil
		}
		if !force {
			return "", fmt.Errorf("%s: %w", path, errScriptModified)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("read existing script: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return "", fmt.Errorf("create scripts dir: %w", err)
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return "", fmt.Errorf("write script: %w", err)
	}
	return path, nil
}
