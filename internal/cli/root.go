// Package cli implements the storedesk command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/storedesk/internal/logger"
	"github.com/mesh-intelligence/storedesk/internal/paths"
	"github.com/mesh-intelligence/storedesk/internal/sqlite"
	"github.com/mesh-intelligence/storedesk/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the exit code a failed command should end with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// ExitCode maps an error returned by a command to a process exit code.
// Errors that were not classified are treated as user errors, which covers
// cobra's own flag and argument failures.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// app holds global flag values and the state loaded for one invocation.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool

	settings *Settings
	log      logrus.FieldLogger
}

// NewRootCmd creates the top-level "storedesk" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "storedesk",
		Short: "Browse and summarize a store's orders",
		Long: "Storedesk keeps a local copy of a store's orders and lists them the way\n" +
			"the order dashboard does: filtered, paged ten at a time, and totaled by status.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.storedesk-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(a),
		newInitCmd(a),
		newImportCmd(a),
		newListCmd(a),
		newTotalsCmd(a),
		newStatusesCmd(a),
	)
	return root
}

// closeLogs releases log files once a command finishes, whether or not it
// failed. Tests override it.
var closeLogs = logger.Close

// Execute runs the root command against os.Args and returns the exit code.
func Execute() int {
	return execute(NewRootCmd(), os.Stderr)
}

func execute(root *cobra.Command, stderr io.Writer) int {
	defer closeLogs()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "storedesk:", err)
	}
	return ExitCode(err)
}

// setup resolves directories, loads settings, and configures logging.
func (a *app) setup() error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	settings, err := loadSettings(configDir)
	if err != nil {
		return err
	}
	settings.ConfigDir = configDir
	settings.DataDir, err = paths.ResolveDataDir(a.dataDir, settings.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}

	lc := settings.loggerConfig()
	if err := logger.Init(lc); err != nil {
		return sysError(fmt.Errorf("configure logging: %w", err))
	}
	a.settings = settings
	a.log = logger.Get(logger.NameCLI).WithField("data_dir", settings.DataDir)
	return nil
}

// openOrders attaches the configured order source. The caller must call the
// returned detach function.
func (a *app) openOrders() (types.OrderTable, func(), error) {
	source := sqlite.NewBackend(sqlite.WithLogger(logger.Get(logger.NameStore)))
	cfg := types.Config{
		Backend: a.settings.Backend,
		DataDir: a.settings.DataDir,
	}
	if err := source.Attach(cfg); err != nil {
		if errors.Is(err, types.ErrBackendEmpty) || errors.Is(err, types.ErrBackendUnknown) {
			return nil, nil, userError(fmt.Errorf("attach order source: %w", err))
		}
		return nil, nil, sysError(fmt.Errorf("attach order source: %w", err))
	}
	detach := func() {
		if err := source.Detach(); err != nil {
			a.log.WithError(err).Warn("detach order source")
		}
	}
	table, err := source.Orders()
	if err != nil {
		detach()
		return nil, nil, sysError(fmt.Errorf("open orders: %w", err))
	}
	return table, detach, nil
}

// fetchOrders attaches the source and returns the orders of storeID.
func (a *app) fetchOrders(storeID string) ([]types.Order, error) {
	table, detach, err := a.openOrders()
	if err != nil {
		return nil, err
	}
	defer detach()

	list, err := table.Fetch(storeID)
	if err != nil {
		return nil, sysError(fmt.Errorf("fetch orders: %w", err))
	}
	a.log.WithFields(logrus.Fields{"store": storeID, "orders": len(list)}).Debug("fetched orders")
	return list, nil
}
