// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cryptohomeboy/modules"
	"cryptohomeboy/pkg/config"
	"cryptohomeboy/pkg/console"
	"cryptohomeboy/pkg/health"
	"cryptohomeboy/pkg/journal"
	"cryptohomeboy/pkg/logging"
	"cryptohomeboy/pkg/version"

	"github.com/TeneoProtocolAI/teneo-agent-sdk/pkg/agent"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	dataFile    string
	journalPath string
	noColor     bool
)

var rootCmd = &cobra.Command{
	Use:   "cryptohomeboy",
	Short: "Rule-based crypto advisor chatbot",
	Long: `CryptoHomeboy answers beginner questions about a small, fixed table of coins:
what is trending, what is sustainable, what looks good for growth, and how two
coins compare. It is educational and NOT financial advice.`,
	Version:       version.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runChat,
}

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Answer a single question and exit",
	Example: `  cryptohomeboy ask which coin is the most sustainable
  cryptohomeboy ask compare bitcoin vs ethereum`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Serve the advisor as a Teneo network agent",
	Long: `Registers the advisor as a Teneo agent so network tasks are answered with the
same rules as the console. Requires PRIVATE_KEY; a health server listens on HEALTH_PORT.`,
	RunE: runAgent,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "YAML knowledge file replacing the built-in coin table")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "SQLite file to append answered queries to")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(agentCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is what every command needs: config, logger and a ready advisor.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	advisor *modules.Advisor
	journal *journal.Journal
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	if journalPath != "" {
		cfg.JournalPath = journalPath
	}
	if noColor {
		cfg.Color = false
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	kb := modules.DefaultKnowledgeBase()
	if cfg.DataFile != "" {
		kb, err = modules.LoadKnowledgeBase(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("file", cfg.DataFile).Int("coins", kb.Len()).Msg("loaded knowledge file")
	}

	a := &app{
		cfg:     cfg,
		log:     logger,
		advisor: modules.NewAdvisor(kb, logger),
	}

	if cfg.JournalPath != "" {
		j, err := journal.Open(ctx, cfg.JournalPath)
		if err != nil {
			return nil, err
		}
		a.journal = j
		a.advisor.WithRecorder(j)
	}
	return a, nil
}

func (a *app) close() {
	if err := a.journal.Close(); err != nil {
		a.log.Warn().Err(err).Msg("close journal")
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	colorize := a.cfg.Color && term.IsTerminal(int(os.Stdout.Fd()))
	session := console.NewSession(os.Stdin, os.Stdout, a.advisor, console.Options{
		BotName:  modules.BotName,
		Banner:   []string{modules.Banner, modules.Disclaimer},
		Farewell: modules.Farewell,
		IsExit:   modules.IsExitWord,
		Color:    colorize,
	}, a.log)
	return session.Run(ctx)
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	return ask(cmd.Context(), a.advisor, cmd.OutOrStdout(), strings.Join(args, " "))
}

func ask(ctx context.Context, advisor *modules.Advisor, out io.Writer, question string) error {
	reply, err := advisor.ProcessTask(ctx, question)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, reply)
	return err
}

// agentStatus feeds the health server.
type agentStatus struct {
	advisor *modules.Advisor
	started time.Time
}

func (s agentStatus) KnownCoins() []string {
	return s.advisor.KnowledgeBase().Names()
}

func (s agentStatus) GetUptime() time.Duration {
	return time.Since(s.started).Truncate(time.Second)
}

func runAgent(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.Agent.PrivateKey == "" {
		return errors.New("agent mode requires PRIVATE_KEY")
	}

	capabilities := []string{"crypto-trend-lookup", "sustainability-ranking", "growth-ranking", "coin-comparison", "coin-explanation"}

	teneoCfg := agent.DefaultConfig()
	teneoCfg.Name = modules.BotName
	teneoCfg.Description = "Rule-based crypto advisor: trends, sustainability and growth over a fixed coin table."
	teneoCfg.Capabilities = capabilities
	teneoCfg.PrivateKey = a.cfg.Agent.PrivateKey
	teneoCfg.NFTTokenID = a.cfg.Agent.NFTTokenID
	teneoCfg.OwnerAddress = a.cfg.Agent.OwnerAddress
	teneoCfg.RateLimitPerMinute = a.cfg.Agent.RateLimitPerMinute

	enhancedAgent, err := agent.NewEnhancedAgent(&agent.EnhancedAgentConfig{
		Config:       teneoCfg,
		AgentHandler: a.advisor,
	})
	if err != nil {
		return fmt.Errorf("agent.NewEnhancedAgent: %w", err)
	}

	healthServer := health.NewServer(a.cfg.Agent.HealthPort, &health.AgentInfo{
		Name:         modules.BotName,
		Version:      version.Version(),
		Capabilities: capabilities,
		Description:  teneoCfg.Description,
	}, agentStatus{advisor: a.advisor, started: time.Now()}, a.log)
	go func() {
		if err := healthServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("health server stopped")
		}
	}()
	defer healthServer.Stop()

	a.log.Info().Str("agent", modules.BotName).Msg("starting agent")
	go enhancedAgent.Run()

	<-ctx.Done()
	a.log.Info().Msg("shutting down")
	return nil
}
