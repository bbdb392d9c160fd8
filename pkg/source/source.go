// Package source loads catalog datasets from the bundled data, YAML/JSON files,
// SQLite databases and PostgreSQL databases.
package source

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

// Kind identifies a source implementation.
type Kind string

const (
	KindBuiltin  Kind = "builtin"
	KindFile     Kind = "file"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// Source loads a complete dataset.
type Source interface {
	Kind() Kind
	Load(ctx context.Context) (catalog.Dataset, error)
	Close() error
}

// Seeder is implemented by sources that can be written to.
type Seeder interface {
	Seed(ctx context.Context, ds catalog.Dataset) error
}

// Detect maps a DSN to a source kind and the location the source should use.
//
//	""  or "builtin"                  bundled dataset
//	postgres://..., postgresql://...  PostgreSQL
//	sqlite:<path>, *.db, *.sqlite     SQLite
//	*.yaml, *.yml, *.json             file
func Detect(dsn string) (Kind, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "" || lower == string(KindBuiltin):
		return KindBuiltin, "", nil
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return KindPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite:"):
		return KindSQLite, dsn[len("sqlite:"):], nil
	case hasAnySuffix(lower, ".db", ".sqlite", ".sqlite3"):
		return KindSQLite, dsn, nil
	case hasAnySuffix(lower, ".yaml", ".yml", ".json"):
		return KindFile, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnknownSource, dsn)
}

// Open creates the source described by dsn. A nil logger discards output.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	kind, location, err := Detect(dsn)
	if err != nil {
		return nil, err
	}

	logger.Debug("Opening data source", zap.String("kind", string(kind)))

	switch kind {
	case KindBuiltin:
		return NewBuiltin(), nil
	case KindFile:
		return NewFile(location), nil
	case KindSQLite:
		src, err := OpenSQLite(location, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindPostgres:
		src, err := ConnectPostgres(ctx, location, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, dsn)
}

// LoadDataset opens dsn, loads and validates its dataset, and closes the source.
func LoadDataset(ctx context.Context, dsn string, logger *zap.Logger) (catalog.Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	src, err := Open(ctx, dsn, logger)
	if err != nil {
		return catalog.Dataset{}, err
	}
	defer func() { _ = src.Close() }()

	ds, err := src.Load(ctx)
	if err != nil {
		return catalog.Dataset{}, err
	}

	if err := catalog.Validate(ds); err != nil {
		return catalog.Dataset{}, &LoadError{Source: string(src.Kind()), Err: err}
	}

	logger.Info("Loaded catalog",
		zap.String("kind", string(src.Kind())),
		zap.Int("users", len(ds.Users)),
		zap.Int("categories", len(ds.Categories)),
		zap.Int("products", len(ds.Products)))

	return ds, nil
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
