package database_test

import (
	"errors"
	"fmt"
	"testing"

	"vegfeedback/internal/config"
	"vegfeedback/internal/database"
	"vegfeedback/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpen_SQLiteMigratesSchema(t *testing.T) {
	db, err := database.Open(config.Database{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	})
	require.NoError(t, err)
	defer database.Close(db)

	for _, table := range []string{"users", "vegetables", "feedback"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}

	require.NoError(t, db.Create(&models.User{Username: "asha", Email: "asha@bitwardha.ac.in", Password: "x", PRNNumber: "1"}).Error)
	err = db.Create(&models.User{Username: "asha", Email: "other@bitwardha.ac.in", Password: "x", PRNNumber: "2"}).Error
	assert.True(t, database.IsUniqueViolation(err), "expected unique violation, got %v", err)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.Database{Driver: "oracle"})
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, database.IsUniqueViolation(nil))
	assert.False(t, database.IsUniqueViolation(errors.New("connection refused")))
	assert.True(t, database.IsUniqueViolation(fmt.Errorf("create: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, database.IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, database.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.True(t, database.IsUniqueViolation(&mysqldriver.MySQLError{Number: 1062}))
}
