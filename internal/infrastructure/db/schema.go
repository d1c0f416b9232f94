package db

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gorm.io/gorm"

	domain "github.com/mohammadpnp/user-accounts/internal/domain/account"
	"github.com/mohammadpnp/user-accounts/internal/infrastructure/db/models"
)

type SchemaManager struct {
	db *gorm.DB
}

func NewSchemaManager(gdb *gorm.DB) *SchemaManager {
	return &SchemaManager{db: gdb}
}

// CreateSchema creates the registered tables. Existing tables are left alone.
func (m *SchemaManager) CreateSchema(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(models.Registry()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (m *SchemaManager) DropSchema(ctx context.Context) error {
	registry := models.Registry()
	slices.Reverse(registry)

	if err := m.db.WithContext(ctx).Migrator().DropTable(registry...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	return nil
}

func (m *SchemaManager) Inspect(ctx context.Context) (domain.SchemaInfo, error) {
	migrator := m.db.WithContext(ctx).Migrator()

	info := domain.SchemaInfo{Present: make(map[string]bool)}
	for _, table := range models.TableNames() {
		info.Present[table] = migrator.HasTable(table)
	}

	tables, err := migrator.GetTables()
	if err != nil {
		return domain.SchemaInfo{}, fmt.Errorf("list tables: %w", err)
	}
	info.Tables = make([]string, 0, len(tables))
	for _, table := range tables {
		if strings.HasPrefix(table, "sqlite_") {
			continue
		}
		info.Tables = append(info.Tables, table)
	}
	sort.Strings(info.Tables)

	schema, err := m.defaultSchema(ctx)
	if err != nil {
		return domain.SchemaInfo{}, err
	}
	info.DefaultSchema = schema

	return info, nil
}

func (m *SchemaManager) defaultSchema(ctx context.Context) (string, error) {
	switch m.db.Dialector.Name() {
	case DriverPostgres:
		var schema string
		if err := m.db.WithContext(ctx).Raw("SELECT CURRENT_SCHEMA()").Scan(&schema).Error; err != nil {
			return "", fmt.Errorf("read current schema: %w", err)
		}
		return schema, nil
	default:
		return m.db.WithContext(ctx).Migrator().CurrentDatabase(), nil
	}
}
