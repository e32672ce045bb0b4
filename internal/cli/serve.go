package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/podolabs/frontdesk/internal/api/handlers"
	"github.com/podolabs/frontdesk/internal/classify"
	"github.com/podolabs/frontdesk/internal/composer"
	"github.com/podolabs/frontdesk/internal/config"
	"github.com/podolabs/frontdesk/internal/dedup"
	"github.com/podolabs/frontdesk/internal/directory"
	"github.com/podolabs/frontdesk/internal/jobs"
	"github.com/podolabs/frontdesk/internal/knowledge"
	"github.com/podolabs/frontdesk/internal/notify"
	"github.com/podolabs/frontdesk/internal/openai"
	"github.com/podolabs/frontdesk/internal/server"
	"github.com/podolabs/frontdesk/internal/slackapi"
	"github.com/podolabs/frontdesk/internal/slackbot"
	"github.com/podolabs/frontdesk/internal/telemetry"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the helpdesk bot",
		Long:  "Start the helpdesk bot, either as an HTTP callback server or in socket mode",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}

	if !cfg.HasOpenAI() {
		return fmt.Errorf("FRONTDESK_OPENAI_API_KEY is required: classification and replies need embeddings")
	}
	aiClient := openai.NewClient(cfg.OpenAIAPIKey)

	slackOpts := []slack.Option{slack.OptionDebug(cfg.Debug)}
	if cfg.HasSocketMode() {
		slackOpts = append(slackOpts, slack.OptionAppLevelToken(cfg.SlackAppToken))
	}
	rawSlack := slack.New(cfg.SlackBotToken, slackOpts...)
	slackClient := slackapi.NewClientWithAPI(rawSlack)

	kbIndex := knowledge.NewIndex(aiClient)
	kbSource := knowledge.NewFileSource(cfg.KnowledgePath)
	kbIndex.Load(ctx, kbSource)

	dir := directory.New()
	var dirLoader *directory.Loader
	if cfg.HasSheet() {
		dirLoader = directory.NewLoader(directory.LoaderConfig{
			Endpoint: cfg.SheetURL,
			Sheet:    cfg.SheetName,
			Secret:   cfg.SheetSecret,
			Embedder: aiClient,
		})
		directory.Load(ctx, dirLoader, dir)
	} else {
		log.Println("no sheet endpoint configured, all inquiries will fall back to the catch-all category")
	}

	classifier := classify.NewClassifier(aiClient, dir, cfg.ClassifyThreshold)
	replyComposer := composer.NewComposer(aiClient)
	router := notify.NewRouter(slackClient, dir)
	guard := dedup.NewGuard()

	pipeline := slackbot.NewPipeline(kbIndex, classifier, replyComposer, router, slackClient, guard,
		slackbot.PipelineConfig{
			SearchTopN:   cfg.SearchTopN,
			SearchMinSim: cfg.SearchMinSimilarity,
		})
	interactions := slackbot.NewInteractions(slackClient, slackClient, router)

	var refreshWorker *jobs.Worker
	if cfg.RefreshInterval > 0 {
		var dirReloader jobs.DirectoryReloader
		if dirLoader != nil {
			dirReloader = &directoryReloader{loader: dirLoader, dir: dir}
		}
		task := jobs.NewRefreshTask(&knowledgeReloader{index: kbIndex, source: kbSource}, dirReloader)
		refreshWorker = jobs.NewWorker(task, cfg.RefreshInterval)
		go refreshWorker.Start(ctx)
		log.Println("refresh worker started")
	}

	if cfg.HasSocketMode() {
		return runSocketMode(ctx, rawSlack, pipeline, interactions, refreshWorker, cfg.Debug)
	}
	return runHTTP(ctx, cfg, pipeline, interactions, refreshWorker)
}

func runHTTP(ctx context.Context, cfg *config.Config, pipeline *slackbot.Pipeline, interactions *slackbot.Interactions, refreshWorker *jobs.Worker) error {
	if cfg.SlackSigningSecret == "" {
		return fmt.Errorf("FRONTDESK_SLACK_SIGNING_SECRET is required in HTTP mode")
	}

	router := server.NewRouter(server.RouterConfig{
		SigningSecret:  cfg.SlackSigningSecret,
		EventsHandler:  handlers.NewEventsHandler(pipeline),
		ActionsHandler: handlers.NewActionsHandler(interactions),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if refreshWorker != nil {
		refreshWorker.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}

func runSocketMode(ctx context.Context, rawSlack *slack.Client, pipeline *slackbot.Pipeline, interactions *slackbot.Interactions, refreshWorker *jobs.Worker, debug bool) error {
	socketClient := socketmode.New(rawSlack, socketmode.OptionDebug(debug))
	runner := slackbot.NewSocketRunner(socketClient, pipeline, interactions)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down...")
		if refreshWorker != nil {
			refreshWorker.Stop()
		}
		cancel()
	}()

	log.Println("starting socket mode")
	return runner.Run(runCtx)
}

type knowledgeReloader struct {
	index  *knowledge.Index
	source knowledge.Source
}

func (r *knowledgeReloader) Reload(ctx context.Context) int {
	return r.index.Load(ctx, r.source)
}

type directoryReloader struct {
	loader *directory.Loader
	dir    *directory.Directory
}

func (r *directoryReloader) Reload(ctx context.Context) int {
	return directory.Load(ctx, r.loader, r.dir)
}
