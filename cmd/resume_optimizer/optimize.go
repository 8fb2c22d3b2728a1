package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-optimizer/internal/analyze"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/optimize"
	"github.com/jonathan/resume-optimizer/internal/similarity"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the agentic optimization loop on a resume",
	Long: `Iteratively rewrite a resume to improve its match against a job posting:
score, pick a strategy, apply one targeted rewrite, rescore, and reflect, until
the target score is reached or the iteration budget runs out.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runOptimize,
}

var (
	optConfigPath    string
	optResumeFile    string
	optJobFile       string
	optJobURL        string
	optOutputFile    string
	optTargetScore   float64
	optMaxIterations int
	optAPIKey        string
	optUseBrowser    bool
	optVerbose       bool
	optDatabaseURL   string
)

func init() {
	// Config file flag (processed first)
	optimizeCmd.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCmd.Flags().StringVarP(&optResumeFile, "resume", "r", "", "Path to resume text file")
	optimizeCmd.Flags().StringVarP(&optJobFile, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	optimizeCmd.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	optimizeCmd.Flags().StringVarP(&optOutputFile, "out", "o", "", "Path to write the optimized resume text")
	optimizeCmd.Flags().Float64Var(&optTargetScore, "target", 0, "Match score the optimizer aims for (default 85)")
	optimizeCmd.Flags().IntVar(&optMaxIterations, "max-iterations", 0, "Optimizer iteration budget (default 3)")
	optimizeCmd.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	optimizeCmd.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	optimizeCmd.Flags().StringVar(&optAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for run persistence
	optimizeCmd.Flags().StringVar(&optDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var; runs are not persisted without one)")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResumeFile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJobFile
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetScore = optTargetScore
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = optMaxIterations
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = optAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = optDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		TargetScore:   optimize.DefaultTargetScore,
		MaxIterations: optimize.DefaultMaxIterations,
	})

	// Step 4: Validate required fields
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	// Step 5: API Key handling (the rewrite loop needs the LLM)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Database URL handling (optional; runs persist only when set)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	resumeText, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := loadJob(ctx, cfg.Job, cfg.JobURL, cfg.APIKey, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	engine := similarity.NewEngine(client)
	optimizer := optimize.New(client, engine)

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
	}

	profile, err := analyze.Job(jobText)
	if err != nil {
		return fmt.Errorf("failed to analyze job posting: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobProfile(profile)
	}

	runID, err := beginRun(ctx, database, profile, cfg, jobText)
	if err != nil {
		return err
	}

	result, err := optimizer.Run(ctx, resumeText, jobText, optimize.Options{
		TargetScore:   cfg.TargetScore,
		MaxIterations: cfg.MaxIterations,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		if database != nil {
			_ = database.CompleteRun(ctx, runID, db.StatusFailed, nil)
		}
		return fmt.Errorf("optimization failed: %w", err)
	}

	if database != nil {
		if err := database.SaveOptimizationResult(ctx, runID, result); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to save optimization result: %v\n", err)
		}
		finalScore := result.FinalScore
		if err := database.CompleteRun(ctx, runID, db.StatusCompleted, &finalScore); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to complete run: %v\n", err)
		}
		fmt.Fprintf(os.Stdout, "Run saved: %s\n", runID)
	}

	printer.PrintOptimizationResult(result)

	if optOutputFile != "" {
		if err := os.WriteFile(optOutputFile, []byte(result.OptimizedResume), 0644); err != nil {
			return fmt.Errorf("failed to write optimized resume: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Optimized resume written to %s\n", optOutputFile)
	}

	return nil
}

// beginRun records the run and its inputs when a database is configured.
// Without one it returns a zero ID and persistence is skipped.
func beginRun(ctx context.Context, database *db.DB, profile *types.JobProfile, cfg config.Config, jobText string) (runID uuid.UUID, err error) {
	if database == nil {
		return runID, nil
	}

	runID, err = database.CreateRun(ctx, profile.Company, profile.Title, cfg.JobURL, cfg.TargetScore)
	if err != nil {
		return runID, fmt.Errorf("failed to create run: %w", err)
	}

	if err := database.SaveTextArtifact(ctx, runID, db.StepJobPosting, "ingestion", jobText); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to save job posting: %v\n", err)
	}
	if err := database.SaveJobProfile(ctx, runID, profile); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to save job profile: %v\n", err)
	}

	return runID, nil
}
