package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"go.uber.org/zap"

	"github.com/murkotick/showcase-catalog-service/internal/platform/config"
	"github.com/murkotick/showcase-catalog-service/internal/platform/observability"
)

// migrate applies every migrations/*.sql file, in name order, to the database named by
// SPANNER_DATABASE (read from the environment or .env).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate -dir migrations
func main() {
	dir := flag.String("dir", "migrations", "directory holding the *.sql DDL files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, _, err := observability.NewLogger(observability.LoggerOptions{Level: cfg.Log.Level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("database", cfg.Spanner.Database))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	stmts, files, err := readMigrations(*dir)
	if err != nil {
		logger.Fatal("read DDL", zap.Error(err))
	}
	if len(stmts) == 0 {
		logger.Fatal("no DDL statements found", zap.String("dir", *dir))
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logger.Fatal("database admin client", zap.Error(err))
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.Spanner.Database,
		Statements: stmts,
	})
	if err != nil {
		logger.Fatal("update DDL", zap.Error(err))
	}
	if err := op.Wait(ctx); err != nil {
		logger.Fatal("wait for DDL", zap.Error(err))
	}

	logger.Info("migrations applied", zap.Int("statements", len(stmts)), zap.Int("files", files))
}

func readMigrations(dir string) ([]string, int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, 0, err
	}
	sort.Strings(paths)

	var out []string
	for _, p := range paths {
		stmts, err := readDDLStatements(p)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, stmts...)
	}
	return out, len(paths), nil
}

// readDDLStatements splits a file on ";" after dropping "--" comment lines.
func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sql := strings.ReplaceAll(string(b), "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out, nil
}
