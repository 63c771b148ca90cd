package service

import (
	"os"
	"path/filepath"
	"skill_manager_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
default_user:
  email: user@mail.com
  name: Demo User
roles:
  - name: Backend Developer
    requirements:
      Python: 4
      SQL: 4
  - name: Data Scientist
    requirements:
      Statistics: 4
courses:
  - title: Docker Mastery
    provider: Udemy
    level: intermediate
    related_skill: Docker
`

func TestSeedService_Idempotent(t *testing.T) {
	db := newTestDB(t)
	file := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(file, []byte(seedYAML), 0o644))

	svc := NewSeedService(db)

	report, err := svc.SeedFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, &SeedReport{UserCreated: true, RolesCreated: 2, CoursesCreated: 1}, report)

	report, err = svc.SeedFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, &SeedReport{}, report)

	var role model.Role
	require.NoError(t, db.Where("name = ?", "Backend Developer").First(&role).Error)
	assert.Equal(t, map[string]int{"Python": 4, "SQL": 4}, role.Requirements)

	var users int64
	require.NoError(t, db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestSeedService_BadFile(t *testing.T) {
	svc := NewSeedService(newTestDB(t))

	_, err := svc.SeedFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(file, []byte("roles: [unterminated"), 0o644))
	_, err = svc.SeedFromFile(file)
	assert.Error(t, err)
}

func TestSeedService_RepositoryConfigFile(t *testing.T) {
	data, err := LoadSeedFile(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	require.NotNil(t, data.DefaultUser)
	assert.Equal(t, "user@mail.com", data.DefaultUser.Email)
	assert.NotEmpty(t, data.Roles)
	assert.NotEmpty(t, data.Courses)

	for _, r := range data.Roles {
		assert.NoError(t, RoleRequest{Name: r.Name, Requirements: r.Requirements}.Validate(), r.Name)
	}
}
