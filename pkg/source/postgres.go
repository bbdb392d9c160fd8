package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

// Schema created by Seed. There are no foreign keys: products may reference
// missing categories and categories may reference missing users.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	id   integer PRIMARY KEY,
	name text    NOT NULL,
	sex  text    NOT NULL CHECK (sex IN ('m', 'f'))
);

CREATE TABLE IF NOT EXISTS categories (
	id       integer PRIMARY KEY,
	title    text    NOT NULL,
	icon     text    NOT NULL DEFAULT '',
	owner_id integer NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          integer PRIMARY KEY,
	name        text    NOT NULL,
	category_id integer NOT NULL
);`

const (
	selectUsers      = `SELECT id, name, sex FROM users ORDER BY id`
	selectCategories = `SELECT id, title, icon, owner_id FROM categories ORDER BY id`
	selectProducts   = `SELECT id, name, category_id FROM products ORDER BY id`

	upsertUser = `INSERT INTO users (id, name, sex) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, sex = EXCLUDED.sex`
	upsertCategory = `INSERT INTO categories (id, title, icon, owner_id) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, icon = EXCLUDED.icon, owner_id = EXCLUDED.owner_id`
	upsertProduct = `INSERT INTO products (id, name, category_id) VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category_id = EXCLUDED.category_id`
)

// Postgres reads the catalog from the users, categories and products tables.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// ConnectPostgres opens a connection pool and checks it with a ping.
func ConnectPostgres(ctx context.Context, connString string, logger *zap.Logger) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewPostgres(pool, logger), nil
}

// NewPostgres wraps an existing pool.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) *Postgres {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Postgres{pool: pool, logger: logger}
}

func (*Postgres) Kind() Kind { return KindPostgres }

// Close releases the pool.
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Load reads the three tables concurrently.
func (p *Postgres) Load(ctx context.Context) (catalog.Dataset, error) {
	if p.pool == nil {
		return catalog.Dataset{}, ErrNoConnection
	}

	var ds catalog.Dataset
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		users, err := queryAll[catalog.User](gctx, p.pool, "users", selectUsers, pgx.RowToStructByPos[catalog.User])
		ds.Users = users
		return err
	})
	g.Go(func() error {
		categories, err := queryAll[catalog.Category](gctx, p.pool, "categories", selectCategories, pgx.RowToStructByPos[catalog.Category])
		ds.Categories = categories
		return err
	})
	g.Go(func() error {
		products, err := queryAll[catalog.Product](gctx, p.pool, "products", selectProducts, pgx.RowToStructByPos[catalog.Product])
		ds.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return catalog.Dataset{}, err
	}

	p.logger.Debug("Read catalog tables", zap.Int("products", len(ds.Products)))
	return ds, nil
}

func queryAll[T any](ctx context.Context, pool *pgxpool.Pool, table, sql string, fn pgx.RowToFunc[T]) ([]T, error) {
	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return nil, &LoadError{Source: string(KindPostgres), Table: table, Err: err}
	}

	out, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, &LoadError{Source: string(KindPostgres), Table: table, Err: err}
	}
	return out, nil
}

// Seed creates the tables if needed and upserts every row of ds in one transaction.
func (p *Postgres) Seed(ctx context.Context, ds catalog.Dataset) error {
	if p.pool == nil {
		return ErrNoConnection
	}
	if err := catalog.Validate(ds); err != nil {
		return fmt.Errorf("failed to seed postgres database: %w", err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	batch := &pgx.Batch{}
	for _, u := range ds.Users {
		batch.Queue(upsertUser, u.ID, u.Name, string(u.Sex))
	}
	for _, c := range ds.Categories {
		batch.Queue(upsertCategory, c.ID, c.Title, c.Icon, c.OwnerID)
	}
	for _, pr := range ds.Products {
		batch.Queue(upsertProduct, pr.ID, pr.Name, pr.CategoryID)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	p.logger.Info("Seeded catalog",
		zap.String("kind", string(KindPostgres)),
		zap.Int("users", len(ds.Users)),
		zap.Int("categories", len(ds.Categories)),
		zap.Int("products", len(ds.Products)))

	return nil
}
