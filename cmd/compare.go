package cmd

import (
	"context"
	"fmt"

	"district-sync/core/config"
	"district-sync/core/database"
	"district-sync/core/logger"
	"district-sync/core/reconcile"
	"district-sync/core/source"
	"district-sync/core/storage"
	"district-sync/feature/division"
	"district-sync/feature/division/dbtable"
	"district-sync/feature/division/listfile"
	"district-sync/feature/division/sqldump"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the compare command
	goldPath   string
	adminPath  string
	v1Path     string
	reportPath string
	jsonPath   string
	withDB     bool
)

// compareCmd runs the full reconciliation.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the SQL dumps against the gold list and write the report",
	Long: `Compare reads the gold-standard list and both SQL dump snapshots,
reports missing and stale districts per province, and writes the report to
the console and to the report file.

Paths may be local files or s3://bucket/key objects.

Examples:
  # Defaults from config.yaml / environment
  district-sync compare

  # Explicit inputs, JSON output and the live table as an extra target
  district-sync compare --gold list.txt --admin admin.sql --v1 v1.sql --json report.json --db`,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&goldPath, "gold", "", "Gold-standard list file")
	compareCmd.Flags().StringVar(&adminPath, "admin", "", "Admin SQL dump")
	compareCmd.Flags().StringVar(&v1Path, "v1", "", "V1 SQL dump")
	compareCmd.Flags().StringVar(&reportPath, "out", "", "Text report destination")
	compareCmd.Flags().StringVar(&jsonPath, "json", "", "Also write a JSON report to this path")
	compareCmd.Flags().BoolVar(&withDB, "db", false, "Add the live database table as a target")

	RootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyCompareFlags(cmd, cfg)

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	runID := uuid.NewString()
	l = logger.WithRunID(l, runID)
	l.Info("Starting district reconciliation")

	var client storage.Client
	if usesStorage(cfg.Division) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}
	opener := source.NewOpener(client)

	gold, targets := buildSources(cfg.Division, opener)

	if cfg.Database.Enabled {
		if db, err := database.Connect(ctx, cfg.Database); err != nil {
			l.Warn("Database connection failed, skipping live table", zap.Error(err))
		} else {
			targets = append(targets, &dbtable.Source{
				Label:   cfg.Division.DBLabel,
				DB:      db,
				Profile: cfg.Division.Profile(),
				RootID:  cfg.Division.RootID,
			})
		}
	}

	svc := division.NewService(gold, cfg.Division.GoldLabel, targets, l,
		division.WithStorage(client),
		division.WithRunID(runID),
		division.WithStdout(cmd.OutOrStdout()),
	)

	_, err = svc.Run(ctx, division.Output{
		ReportPath: cfg.Division.ReportPath,
		JSONPath:   cfg.Division.JSONPath,
	})
	return err
}

// applyCompareFlags copies explicitly set flags over the loaded config.
func applyCompareFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("gold") {
		cfg.Division.GoldPath = goldPath
	}
	if flags.Changed("admin") {
		cfg.Division.AdminPath = adminPath
	}
	if flags.Changed("v1") {
		cfg.Division.V1Path = v1Path
	}
	if flags.Changed("out") {
		cfg.Division.ReportPath = reportPath
	}
	if flags.Changed("json") {
		cfg.Division.JSONPath = jsonPath
	}
	if flags.Changed("db") {
		cfg.Database.Enabled = withDB
	}
}

// buildSources creates the gold source and the two dump targets.
func buildSources(cfg division.Config, opener *source.Opener) (reconcile.Source, []reconcile.Source) {
	gold := &listfile.Source{
		Label:  cfg.GoldLabel,
		Path:   cfg.GoldPath,
		Opener: opener,
	}
	targets := []reconcile.Source{
		&sqldump.Source{Label: cfg.AdminLabel, Path: cfg.AdminPath, RootID: cfg.RootID, Opener: opener},
		&sqldump.Source{Label: cfg.V1Label, Path: cfg.V1Path, RootID: cfg.RootID, Opener: opener},
	}
	return gold, targets
}

// usesStorage reports whether any input or output lives in object storage.
func usesStorage(cfg division.Config) bool {
	for _, p := range []string{cfg.GoldPath, cfg.AdminPath, cfg.V1Path, cfg.ReportPath, cfg.JSONPath} {
		if storage.IsURL(p) {
			return true
		}
	}
	return false
}
