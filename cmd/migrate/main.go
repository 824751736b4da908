package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"carreserve/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the SQL migrations under migrations/ via the atlas CLI.
// Usage: migrate [-dir migrations] [-dry-run]
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	dryRun := flag.Bool("dry-run", false, "print pending migrations without applying")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + *dir,
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Info("migrations applied",
		"current", res.Current,
		"target", res.Target,
		"applied", len(res.Applied),
	)
}
