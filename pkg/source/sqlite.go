package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/marshallshelly/catalog/pkg/catalog"
)

type userRow struct {
	ID   int `gorm:"primaryKey;autoIncrement:false"`
	Name string
	Sex  string
}

func (userRow) TableName() string { return "users" }

type categoryRow struct {
	ID      int `gorm:"primaryKey;autoIncrement:false"`
	Title   string
	Icon    string
	OwnerID int `gorm:"index"`
}

func (categoryRow) TableName() string { return "categories" }

type productRow struct {
	ID         int `gorm:"primaryKey;autoIncrement:false"`
	Name       string
	CategoryID int `gorm:"index"`
}

func (productRow) TableName() string { return "products" }

// SQLite reads the catalog from a SQLite database through gorm.
type SQLite struct {
	db     *gorm.DB
	logger *zap.Logger
}

// OpenSQLite opens (and creates, if needed) the database at dsn.
func OpenSQLite(dsn string, log *zap.Logger) (*SQLite, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if dsn == "" {
		return nil, fmt.Errorf("%w: empty sqlite path", ErrUnknownSource)
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		zap.NewStdLog(log),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	return &SQLite{db: db, logger: log}, nil
}

func (*SQLite) Kind() Kind { return KindSQLite }

// Close closes the underlying connection.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	s.db = nil
	return sqlDB.Close()
}

// Load reads all three tables ordered by id.
func (s *SQLite) Load(ctx context.Context) (catalog.Dataset, error) {
	if s.db == nil {
		return catalog.Dataset{}, ErrNoConnection
	}
	db := s.db.WithContext(ctx)

	var users []userRow
	if err := db.Order("id").Find(&users).Error; err != nil {
		return catalog.Dataset{}, &LoadError{Source: string(KindSQLite), Table: "users", Err: err}
	}
	var categories []categoryRow
	if err := db.Order("id").Find(&categories).Error; err != nil {
		return catalog.Dataset{}, &LoadError{Source: string(KindSQLite), Table: "categories", Err: err}
	}
	var products []productRow
	if err := db.Order("id").Find(&products).Error; err != nil {
		return catalog.Dataset{}, &LoadError{Source: string(KindSQLite), Table: "products", Err: err}
	}

	ds := catalog.Dataset{
		Users:      make([]catalog.User, 0, len(users)),
		Categories: make([]catalog.Category, 0, len(categories)),
		Products:   make([]catalog.Product, 0, len(products)),
	}
	for _, u := range users {
		ds.Users = append(ds.Users, catalog.User{ID: u.ID, Name: u.Name, Sex: catalog.Sex(u.Sex)})
	}
	for _, c := range categories {
		ds.Categories = append(ds.Categories, catalog.Category{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID})
	}
	for _, p := range products {
		ds.Products = append(ds.Products, catalog.Product{ID: p.ID, Name: p.Name, CategoryID: p.CategoryID})
	}

	return ds, nil
}

// Seed validates ds, migrates the tables and upserts every row in one
// transaction. Upserts keep the last row per id, so duplicate ids are rejected.
func (s *SQLite) Seed(ctx context.Context, ds catalog.Dataset) error {
	if s.db == nil {
		return ErrNoConnection
	}
	if err := catalog.Validate(ds); err != nil {
		return fmt.Errorf("failed to seed sqlite database: %w", err)
	}
	db := s.db.WithContext(ctx)

	if err := db.AutoMigrate(&userRow{}, &categoryRow{}, &productRow{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	users := make([]userRow, 0, len(ds.Users))
	for _, u := range ds.Users {
		users = append(users, userRow{ID: u.ID, Name: u.Name, Sex: string(u.Sex)})
	}
	categories := make([]categoryRow, 0, len(ds.Categories))
	for _, c := range ds.Categories {
		categories = append(categories, categoryRow{ID: c.ID, Title: c.Title, Icon: c.Icon, OwnerID: c.OwnerID})
	}
	products := make([]productRow, 0, len(ds.Products))
	for _, p := range ds.Products {
		products = append(products, productRow{ID: p.ID, Name: p.Name, CategoryID: p.CategoryID})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if len(users) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&users).Error; err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		if len(categories) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&categories).Error; err != nil {
				return fmt.Errorf("insert categories: %w", err)
			}
		}
		if len(products) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products).Error; err != nil {
				return fmt.Errorf("insert products: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed sqlite database: %w", err)
	}

	s.logger.Info("Seeded catalog",
		zap.String("kind", string(KindSQLite)),
		zap.Int("users", len(ds.Users)),
		zap.Int("categories", len(ds.Categories)),
		zap.Int("products", len(ds.Products)))

	return nil
}

// ensureDirForSQLite creates the parent directory of a file DSN.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
