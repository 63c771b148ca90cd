package database

import (
	"path/filepath"
	"skill_manager_backend/internal/config"
	"skill_manager_backend/internal/model"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_MigratesOutsideRelease(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "app.db")}

	db, err := InitDB(cfg, "debug", false)
	require.NoError(t, err)
	for _, table := range []any{&model.User{}, &model.Skill{}, &model.Certification{}, &model.Achievement{}, &model.Role{}, &model.Course{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
}

func TestInitDB_ReleaseSkipsMigration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDB(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, "release", false)
	require.NoError(t, err)
	assert.False(t, db.Migrator().HasTable(&model.User{}))

	db, err = InitDB(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: path}, "release", true)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&model.User{}))
}

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	host := mr.Host()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	rdb, err := InitRedis(&config.RedisConfig{Host: host, Port: port})
	require.NoError(t, err)
	defer rdb.Close()

	// 关闭后 miniredis 不能再取地址，使用关闭前保存的 host
	mr.Close()
	_, err = InitRedis(&config.RedisConfig{Host: host, Port: port})
	assert.Error(t, err)
}
