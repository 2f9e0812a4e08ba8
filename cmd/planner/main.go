// Command planner runs the adaptive session planning API (§6): it
// serves POST /plan_next, GET /pack, POST /mark_served, and drives the
// enrichment pipeline over newly ingested questions in the background.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/adaptivecat/planner/pkg/api"
	"github.com/adaptivecat/planner/pkg/candidates"
	"github.com/adaptivecat/planner/pkg/config"
	"github.com/adaptivecat/planner/pkg/enrichment"
	"github.com/adaptivecat/planner/pkg/llmgateway"
	"github.com/adaptivecat/planner/pkg/mastery"
	"github.com/adaptivecat/planner/pkg/orchestrator"
	"github.com/adaptivecat/planner/pkg/planner"
	"github.com/adaptivecat/planner/pkg/quality"
	"github.com/adaptivecat/planner/pkg/store"
	"github.com/adaptivecat/planner/pkg/taxonomy"
)

// enrichPollInterval is how often the background worker scans for
// questions that still need enrichment (is_active = false).
const enrichPollInterval = 30 * time.Second

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "Path to YAML configuration file")
	envPath := flag.String("env-file", ".env", "Path to a .env file to load before reading configuration")
	flag.Parse()

	if err := godotenv.Load(*envPath); err != nil {
		slog.Warn("could not load .env file, continuing with existing environment", "path", *envPath, "error", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storeClient, err := store.NewClient(ctx, cfg.ToStoreConfig())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := storeClient.Close(); err != nil {
			slog.Warn("error closing database connection", "error", err)
		}
	}()
	slog.Info("connected to postgres", "host", cfg.Database.Host, "database", cfg.Database.Name)

	primaryProvider, err := llmgateway.DialGRPCProvider(cfg.LLM.PrimaryAddr, cfg.LLM.PrimaryModel)
	if err != nil {
		slog.Error("failed to dial primary LLM provider", "error", err)
		os.Exit(1)
	}
	defer primaryProvider.Close()

	fallbackProvider, err := llmgateway.DialGRPCProvider(cfg.LLM.FallbackAddr, cfg.LLM.FallbackModel)
	if err != nil {
		slog.Error("failed to dial fallback LLM provider", "error", err)
		os.Exit(1)
	}
	defer fallbackProvider.Close()

	gateway := llmgateway.New(primaryProvider, fallbackProvider,
		llmgateway.WithRecoveryInterval(cfg.LLM.RecoveryInterval),
		llmgateway.WithRetryDelays(cfg.LLM.RetryDelays),
		llmgateway.WithTimeout(cfg.LLM.Timeout))

	taxonomyRegistry := taxonomy.New()
	taxonomyMatcher := taxonomy.NewLLMMatcher(gateway, taxonomyRegistry)
	answerMatcher := quality.NewLLMAnswerMatcher(gateway)
	verifier := quality.New(taxonomyRegistry, answerMatcher)
	pipeline := enrichment.New(storeClient, gateway, taxonomyRegistry, taxonomyMatcher, verifier)

	masteryTracker := mastery.New(storeClient,
		mastery.WithAlpha(cfg.Mastery.EWMAAlpha),
		mastery.WithTimeDecay(cfg.Mastery.TimeDecayDaily))
	candidateProvider := candidates.New(storeClient, candidates.CooldownDays{
		Easy:   cfg.Pool.CooldownEasy,
		Medium: cfg.Pool.CooldownMedium,
		Hard:   cfg.Pool.CooldownHard,
	}, candidates.WithLadder(cfg.Pool.KPerBand, cfg.Pool.Ladder))

	tuning := planner.DefaultTuning()
	tuning.MaxPerSubcategoryStrict = cfg.Planner.MaxPerSubcategoryStrict
	tuning.MaxPerSubcategoryRelaxed = cfg.Planner.MaxPerSubcategoryRelaxed
	tuning.MaxPerSubcategoryCeiling = cfg.Planner.MaxPerSubcategoryCeiling
	tuning.PhaseACutoff = cfg.Planner.PhaseACutoff
	tuning.PhaseBCutoff = cfg.Planner.PhaseBCutoff
	sessionPlanner := planner.New(candidateProvider, masteryTracker, storeClient, taxonomyRegistry,
		planner.WithTuning(tuning))
	sessionOrchestrator := orchestrator.New(storeClient, sessionPlanner)

	server := api.NewServer(sessionOrchestrator, storeClient, masteryTracker)

	go runEnrichmentWorker(ctx, storeClient, pipeline)
	go runDecayWorker(ctx, storeClient, masteryTracker)

	errc := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.Addr)
		errc <- server.Start(cfg.API.Addr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errc:
		if err != nil {
			slog.Error("HTTP server stopped unexpectedly", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("error during HTTP server shutdown", "error", err)
	}
}

// runEnrichmentWorker drives C4 over the bank's not-yet-active
// questions until ctx is cancelled. It is deliberately simple: ingestion
// glue (CSV upload, admin review) is out of scope per spec.md §1, but
// the enrichment pipeline itself must keep draining the backlog it
// produces so questions become eligible for serving.
func runEnrichmentWorker(ctx context.Context, s *store.Client, p *enrichment.Pipeline) {
	ticker := time.NewTicker(enrichPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			enrichPendingBatch(ctx, s, p)
		}
	}
}

// enrichConcurrency bounds how many questions are enriched at once. Each
// question's enrichment is an independent, multi-stage LLM round trip
// (up to 60s per call, per spec.md §5), so this pipelines many
// questions without one slow question blocking the rest of the batch.
const enrichConcurrency = 4

// decayInterval is how often the time-decay sweep of spec.md §4.6 runs.
const decayInterval = 24 * time.Hour

// runDecayWorker applies the daily multiplicative mastery decay across
// every student with accrued mastery, per spec.md §4.6.
func runDecayWorker(ctx context.Context, s *store.Client, t *mastery.Tracker) {
	ticker := time.NewTicker(decayInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ids, err := s.StudentIDsWithMastery(ctx)
			if err != nil {
				slog.Error("decay worker: failed to list students", "error", err)
				continue
			}
			for _, id := range ids {
				if err := t.ApplyTimeDecay(ctx, id); err != nil {
					slog.Error("decay worker: decay failed", "student_id", id, "error", err)
				}
			}
			slog.Info("decay worker: sweep finished", "students", len(ids))
		}
	}
}

func enrichPendingBatch(ctx context.Context, s *store.Client, p *enrichment.Pipeline) {
	inactive := false
	pending, err := s.ActiveQuestions(ctx, store.QuestionFilter{IsActive: &inactive})
	if err != nil {
		slog.Error("enrichment worker: failed to list pending questions", "error", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	for _, q := range pending {
		q := q
		g.Go(func() error {
			outcome, err := p.Enrich(gctx, q.ID)
			if err != nil {
				slog.Error("enrichment worker: stage error", "question_id", q.ID, "error", err)
				return nil
			}
			slog.Info("enrichment worker: processed question",
				"question_id", q.ID, "activated", outcome.Activated)
			return nil
		})
	}

	_ = g.Wait()
}
