package migration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "migration_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func scriptsRoot(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs("scripts")
	require.NoError(t, err)
	return path
}

func TestGolangMigrateStrategy_SQLiteUp(t *testing.T) {
	db := openSQLiteDB(t)

	strategy := NewGolangMigrateStrategy(scriptsRoot(t), "sqlite")
	require.NoError(t, strategy.Migrate(db))

	tables := []string{"users", "projects", "project_members", "issues", "issue_comments", "audit_logs"}
	for _, table := range tables {
		assert.True(t, db.Migrator().HasTable(table), "table %s should exist after migration", table)
	}
}

func TestGolangMigrateStrategy_SQLiteUpIsIdempotent(t *testing.T) {
	db := openSQLiteDB(t)

	strategy := NewGolangMigrateStrategy(scriptsRoot(t), "sqlite")
	require.NoError(t, strategy.Migrate(db))
	require.NoError(t, strategy.Migrate(db))
}

func TestGolangMigrateStrategy_SQLiteDown(t *testing.T) {
	db := openSQLiteDB(t)

	strategy := NewGolangMigrateStrategy(scriptsRoot(t), "sqlite")
	require.NoError(t, strategy.Migrate(db))

	migrateStrategy, ok := strategy.(*GolangMigrateStrategy)
	require.True(t, ok)
	require.NoError(t, migrateStrategy.MigrateDown(db, 1))

	assert.False(t, db.Migrator().HasTable("issues"))
	assert.False(t, db.Migrator().HasTable("users"))
}

func TestGolangMigrateStrategy_UnsupportedDriver(t *testing.T) {
	db := openSQLiteDB(t)

	strategy := NewGolangMigrateStrategy(scriptsRoot(t), "postgres")
	err := strategy.Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration driver")
}
