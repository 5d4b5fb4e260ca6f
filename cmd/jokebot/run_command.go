package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"jokebot/internal/config"
	"jokebot/internal/console"
	"jokebot/internal/jokes"
	"jokebot/internal/logging"
	"jokebot/internal/metrics"
	"jokebot/internal/services"
	"jokebot/internal/session"
	"jokebot/internal/steps"
	"jokebot/internal/workflow"
)

const welcomeBanner = "🎭 Welcome to the Writer & Critic Joke Bot!"

type runOptions struct {
	category string
	language string
	maxSteps int
	seed     int64
	table    bool
}

func (o *runOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.category, "category", "", "Starting category (neutral, chuck, all)")
	flags.StringVar(&o.language, "language", "", "Language code passed to the joke source")
	flags.IntVar(&o.maxSteps, "max-steps", 0, "Maximum workflow steps per session")
	flags.Int64Var(&o.seed, "seed", 0, "Random seed for category resolution and joke selection (0 = clock)")
	flags.BoolVar(&o.table, "table", false, "Render the final summary as a table")
}

// settings merges flags that were explicitly set over the loaded configuration.
func (o *runOptions) settings(cmd *cobra.Command, cfg *config.Config) (config.Bot, error) {
	bot := config.Default().Bot
	if cfg != nil {
		bot = cfg.Bot
	}
	flags := cmd.Flags()

	if flags.Changed("category") {
		category := strings.ToLower(strings.TrimSpace(o.category))
		if !jokes.IsSelectable(category) {
			return bot, services.Wrap(services.ErrValidation, "cli", "parse flags",
				fmt.Sprintf("--category: unsupported value %q (choose one of %s)", o.category, strings.Join(jokes.Selectable(), ", ")), nil)
		}
		bot.Category = category
	}
	if flags.Changed("language") {
		language, err := jokes.NormalizeLanguage(o.language)
		if err != nil {
			return bot, services.Wrap(services.ErrValidation, "cli", "parse flags", "--language", err)
		}
		bot.Language = language
	}
	if flags.Changed("max-steps") {
		if o.maxSteps <= 0 {
			return bot, services.Wrap(services.ErrValidation, "cli", "parse flags", "--max-steps must be positive", nil)
		}
		bot.MaxSteps = o.maxSteps
	}
	if flags.Changed("seed") {
		bot.Seed = o.seed
	}
	return bot, nil
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start an interactive joke session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd, ctx, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runBot(cmd *cobra.Command, ctx *commandContext, opts *runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	bot, err := opts.settings(cmd, cfg)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logFile.Close()
	logger = logging.NewComponentLogger(logger, "cli")

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The first signal cancels the session; a second one falls through to the
	// default handler and terminates the process.
	context.AfterFunc(runCtx, stop)

	sessionID := uuid.NewString()
	recorder := metrics.New()
	seed := resolveSeed(bot.Seed)
	source := jokes.NewBuiltin(newRandom(seed, 1))

	for _, health := range steps.CheckSource(runCtx, source, bot.Language) {
		if !health.Ready {
			logging.WarnWithContext(logger, "joke source cannot serve category", "source_check",
				logging.String(logging.FieldSessionID, sessionID),
				logging.String("check", health.Name),
				logging.String("detail", health.Detail),
				logging.String(logging.FieldImpact, "writer step will fail for this category"),
			)
		}
	}

	out := cmd.OutOrStdout()
	term := console.NewTerminal(cmd.InOrStdin(), out)
	set := workflow.StepSet{
		Menu:     steps.NewMenu(term, recorder),
		Writer:   steps.NewWriter(source, term, newRandom(seed, 2), recorder),
		Critic:   steps.NewCritic(term, bot.MinApprovedLength, recorder),
		Category: steps.NewCategory(term, recorder),
		Exit:     steps.NewExit(term),
	}
	engine, err := workflow.NewEngine(set, workflow.Options{
		MaxSteps:  bot.MaxSteps,
		Logger:    logger,
		Metrics:   recorder,
		SessionID: sessionID,
	})
	if err != nil {
		return err
	}

	term.PrintLine(welcomeBanner)
	final, runErr := engine.Run(runCtx, session.New(bot.Language, bot.Category))
	printSummary(out, final.Jokes, summaryOptions{table: opts.table, colorize: shouldColorize(out)})

	if path := strings.TrimSpace(cfg.Metrics.Textfile); path != "" {
		if err := recorder.WriteTextfile(path); err != nil {
			logging.WarnWithContext(logger, "metrics textfile not written", "metrics_write",
				logging.String("path", path),
				logging.Error(err),
			)
		}
	}
	return runErr
}

func resolveSeed(seed int64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(seed)
}

func newRandom(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
