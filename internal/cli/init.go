package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize storedesk configuration and storage",
		Long: "Create the configuration directory and a default config.yaml if missing,\n" +
			"then initialize the order source in the data directory.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	var dataDir string
	if a.dataDir != "" {
		if dataDir, err = filepath.Abs(a.dataDir); err != nil {
			return sysError(fmt.Errorf("resolve data dir: %w", err))
		}
	}
	created, err := writeConfigIfMissing(configDir, dataDir)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if err := a.setup(); err != nil {
		return err
	}
	_, detach, err := a.openOrders()
	if err != nil {
		return err
	}
	detach()

	a.log.WithField("config_created", created).Info("initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "storedesk initialized\nconfig: %s\ndata:   %s\n",
		filepath.Join(configDir, configFileExt), a.settings.DataDir)
	return nil
}
