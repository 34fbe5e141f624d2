package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

const (
	// MilestonesFile maps stringified week to a list of milestone strings
	MilestonesFile = "milestones.json"
	// SizeComparisonsFile maps stringified week to a size comparison string
	SizeComparisonsFile = "size_comparisons.json"
)

// File implements CatalogRepository interface with two JSON documents in a directory
type File struct {
	dir string
}

// NewFile creates a new file repository rooted at dir
func NewFile(dir string) interfaces.CatalogRepository {
	return &File{dir: dir}
}

// LoadCatalog reads both catalog documents. Both must exist.
func (f *File) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	var (
		rawSizes      map[string]string
		rawMilestones map[string][]string
	)

	if err := f.readJSON(SizeComparisonsFile, &rawSizes); err != nil {
		return nil, err
	}
	if err := f.readJSON(MilestonesFile, &rawMilestones); err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx)
	sizes := make(map[types.Week]string, len(rawSizes))
	for key, value := range rawSizes {
		week, err := types.ParseWeek(key)
		if err != nil {
			logger.Warn("Skipping non-numeric week key", slog.String("file", SizeComparisonsFile), slog.String("key", key))
			continue
		}
		sizes[week] = value
	}

	milestones := make(map[types.Week][]string, len(rawMilestones))
	for key, value := range rawMilestones {
		week, err := types.ParseWeek(key)
		if err != nil {
			logger.Warn("Skipping non-numeric week key", slog.String("file", MilestonesFile), slog.String("key", key))
			continue
		}
		milestones[week] = value
	}

	return model.NewCatalog(sizes, milestones), nil
}

// SaveCatalog writes both catalog documents, creating the directory if needed
func (f *File) SaveCatalog(ctx context.Context, catalog *model.Catalog) error {
	if catalog == nil {
		return goerr.New("catalog is nil")
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create data directory", goerr.V("dir", f.dir))
	}

	sizes := make(map[string]string)
	for week, value := range catalog.SizeComparisons() {
		sizes[week.String()] = value
	}
	milestones := make(map[string][]string)
	for week, value := range catalog.AllMilestones() {
		milestones[week.String()] = value
	}

	if err := f.writeJSON(MilestonesFile, milestones); err != nil {
		return err
	}
	if err := f.writeJSON(SizeComparisonsFile, sizes); err != nil {
		return err
	}

	return nil
}

// Close does nothing for file repository
func (f *File) Close() error {
	return nil
}

func (f *File) readJSON(name string, v any) error {
	path := filepath.Join(f.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return goerr.Wrap(model.ErrCatalogNotFound, "catalog file not found",
				goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read catalog file",
			goerr.V("path", path))
	}

	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse catalog file",
			goerr.V("path", path))
	}

	return nil
}

func (f *File) writeJSON(name string, v any) error {
	path := filepath.Join(f.dir, name)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode catalog file", goerr.V("path", path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write catalog file", goerr.V("path", path))
	}

	return nil
}
