package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"divinescribe/internal/completion"
	"divinescribe/internal/config"
	"divinescribe/internal/logging"
	"divinescribe/internal/quiz"
	"divinescribe/internal/sermon"
	"divinescribe/internal/trace"
	"divinescribe/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app holds state shared by the commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	endpoint   string
	model      string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "divinescribe",
		Short: "Divine Scribe - your Bible study companion",
		Long: `Divine Scribe is a terminal Bible study companion.

Read John 3:16-18 in several versions, generate sermons and quizzes with a
DeepSeek API key, and read classic hymns verse by verse.

Run without arguments to start the interactive interface.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		// Config is loaded here rather than in a pre-run hook so that hymns
		// and version work without a valid config.
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(); err != nil {
				return err
			}
			return a.runTUI(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./divinescribe.yaml or $XDG_CONFIG_HOME/divinescribe/divinescribe.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (requires log.file)")
	root.PersistentFlags().StringVar(&a.endpoint, "endpoint", "", "chat completion endpoint URL")
	root.PersistentFlags().StringVar(&a.model, "model", "", "model name sent with each request")

	root.AddCommand(newHymnsCmd(), newVersionCmd())
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.endpoint != "" {
		cfg.Completion.Endpoint = a.endpoint
	}
	if a.model != "" {
		cfg.Completion.Model = a.model
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := trace.Setup(ctx, a.cfg.Tracing.Enabled)
	if err != nil {
		a.logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				a.logger.Warn("trace shutdown", zap.Error(err))
			}
		}()
	}

	client := completion.New(a.cfg.Completion.Endpoint, a.cfg.Completion.Model,
		completion.WithTimeout(a.cfg.Completion.Timeout),
		completion.WithLogger(a.logger.Named("completion")),
	)
	a.logger.Info("starting",
		zap.String("version", version),
		zap.String("endpoint", a.cfg.Completion.Endpoint),
		zap.String("model", client.Model()),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := ui.NewAppModel(a.uiOptions(ctx, client))
	defer model.Close()

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func (a *app) uiOptions(ctx context.Context, client completion.Completer) ui.Options {
	tw := a.cfg.Typewriter
	return ui.Options{
		Context: ctx,
		Sermons: sermon.NewGenerator(client, a.cfg.Sermon.Temperature, a.cfg.Sermon.MaxTokens),
		Quizzes: quiz.NewGenerator(client, a.cfg.Quiz.Temperature, a.cfg.Quiz.MaxTokens),
		Logger:  a.logger.Named("ui"),
		Delays: ui.Delays{
			Text:     tw.Delay,
			Hymn:     tw.HymnDelay,
			Subtitle: tw.SubtitleDelay,
		},
		NoticeTTL: a.cfg.Notice.TTL,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
