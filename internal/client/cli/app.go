package cli

import (
	"bufio"
	"context"

	"github.com/dmitrijs2005/unity/internal/client/client"
	"github.com/dmitrijs2005/unity/internal/client/config"
	"github.com/dmitrijs2005/unity/internal/client/tui"
	"github.com/spf13/cobra"
)

// Seams for tests.
var (
	newClient = func(cfg *config.Config, token string) (client.Client, error) {
		return client.NewGRPCClient(cfg.ServerEndpointAddr, token)
	}
	runTUI = tui.Run
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader

	configPath string
	serverAddr string
	token      string
}

// NewRootCommand builds the command tree. The config is loaded and the
// client connected before any subcommand runs.
func NewRootCommand() *cobra.Command {
	a := &App{}

	root := &cobra.Command{
		Use:                "unity",
		Short:              "Browse and manage marketplace listings",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&a.serverAddr, "server", "", "server gRPC address (host:port)")
	root.PersistentFlags().StringVar(&a.token, "token", "", "access token (overrides the saved one)")

	root.AddCommand(
		a.browseCommand(),
		a.optionsCommand(),
		a.mineCommand(),
		a.createCommand(),
		a.toggleCommand(),
		a.upgradeCommand(),
		a.upgradesCommand(),
		a.purchasesCommand(),
		a.loginCommand(),
	)
	return root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.serverAddr != "" {
		cfg.ServerEndpointAddr = a.serverAddr
	}
	if a.token != "" {
		cfg.Token = a.token
	}
	a.config = cfg
	a.reader = bufio.NewReader(cmd.InOrStdin())

	if cmd.Name() == "login" {
		return nil
	}

	token, err := cfg.ResolveToken()
	if err != nil {
		return err
	}
	c, err := newClient(cfg, token)
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

func (a *App) teardown(*cobra.Command, []string) error {
	if a.client == nil {
		return nil
	}
	return a.client.Close()
}

// rpcContext bounds one call by the configured request timeout.
func (a *App) rpcContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
