package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rotina/internal/db"
	"github.com/javiermolinar/rotina/internal/planner"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import days from another database",
		Long: `Import all saved days from another Rotina database into the current one.
Days that are already planned here are skipped.

Example:
  rotina import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := checkSource(args[0], a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			imported, skipped, err := importDays(context.Background(), a.planner, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d dia(s) importado(s) de %s, %d já planejado(s).\n",
				imported, sourcePath, skipped)
			return nil
		},
	}

	return cmd
}

// checkSource resolves the source database path and rejects the current
// database, missing files and directories.
func checkSource(source, current string) (string, error) {
	sourcePath, err := resolvePath(source)
	if err != nil {
		return "", err
	}
	if currentPath, err := resolvePath(current); err == nil && currentPath == sourcePath {
		return "", errors.New("source database matches current database")
	}

	info, err := os.Stat(sourcePath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("source database does not exist: %s", sourcePath)
	case err != nil:
		return "", fmt.Errorf("checking source database: %w", err)
	case info.IsDir():
		return "", fmt.Errorf("source database path is a directory: %s", sourcePath)
	}
	return sourcePath, nil
}

func importDays(ctx context.Context, dest *planner.Planner, sourcePath string) (imported, skipped int, err error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	records, err := sourceRepo.ListAllDays(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("listing source days: %w", err)
	}

	return dest.Import(ctx, records)
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
