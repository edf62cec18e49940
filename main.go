package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"daily_finance_mailer/chart"
	"daily_finance_mailer/config"
	"daily_finance_mailer/generator"
	"daily_finance_mailer/history"
	"daily_finance_mailer/mailer"
	"daily_finance_mailer/pipeline"
	"daily_finance_mailer/server"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := &cli.Command{
		Name:  "daily-finance-mailer",
		Usage: "Generate and send the daily finance lesson email",
		Description: `Asks a language model for the next beginner finance lesson, renders an
optional chart through QuickChart, and delivers the composed email over SMTP.
Taught topics are recorded in a history file so they are not repeated.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history",
				Usage: "path to the topic history file (overrides HISTORY_FILE)",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "compose the email and print it to stdout without sending",
			},
			&cli.BoolFlag{
				Name:  "mock-llm",
				Usage: "use a canned lesson instead of calling the model",
			},
			&cli.BoolFlag{
				Name:  "serve",
				Usage: "start the preview web server instead of sending",
			},
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "listen address for --serve",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if lvl, err := zerolog.ParseLevel(cmd.String("log-level")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var llm generator.LLMClient
	if cmd.Bool("mock-llm") {
		llm = generator.MockLLM{}
	} else {
		if err := cfg.Validate(); err != nil {
			return err
		}
		llm, err = generator.NewGeminiLLM(generator.LLMSettings{
			Model:   cfg.LLMModel,
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.LLMBaseURL,
		})
		if err != nil {
			return err
		}
	}

	agent, err := generator.NewAgent(llm)
	if err != nil {
		return err
	}

	historyPath := cfg.HistoryFile
	if p := cmd.String("history"); p != "" {
		historyPath = p
	}
	store := history.NewStore(historyPath)
	charts := chart.NewRenderer(cfg.QuickChartURL)

	if cmd.Bool("serve") {
		srv, err := server.New(agent, charts, store)
		if err != nil {
			return err
		}
		addr := cmd.String("addr")
		log.Info().Str("addr", addr).Msg("starting preview server")
		return http.ListenAndServe(addr, srv.Routes())
	}

	deps := pipeline.Deps{
		Store:     store,
		Generator: agent,
		Charts:    charts,
		Sender: mailer.NewMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			From:     cfg.EmailSender,
			Password: cfg.EmailPassword,
		}),
		Recipients: cfg.EmailRecipient,
	}
	if cmd.Bool("dry-run") {
		deps.DryRunOut = os.Stdout
	}

	return pipeline.Run(ctx, deps)
}
