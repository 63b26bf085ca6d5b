package migration

import (
	"errors"
	"testing"

	"carelink/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct {
	upErr    error
	closed   bool
	closeSrc error
	closeDB  error
}

func (f *fakeMigrator) Up() error {
	return f.upErr
}

func (f *fakeMigrator) Close() (error, error) {
	f.closed = true
	return f.closeSrc, f.closeDB
}

func testConfig() *config.Config {
	return &config.Config{
		DB: config.DB{
			DatabaseURI: "postgres://localhost:5432/carelink",
			Migrations:  "migrations",
		},
	}
}

func TestUp(t *testing.T) {
	fake := &fakeMigrator{}
	var gotSource, gotDatabase string

	mg := New(testConfig(), func(sourceURL, databaseURL string) (Migrator, error) {
		gotSource = sourceURL
		gotDatabase = databaseURL
		return fake, nil
	})

	err := mg.Up()
	require.NoError(t, err)
	assert.Equal(t, "file://migrations", gotSource)
	assert.Equal(t, "postgres://localhost:5432/carelink", gotDatabase)
	assert.True(t, fake.closed)
}

func TestUp_NoChangeIsNotAnError(t *testing.T) {
	fake := &fakeMigrator{upErr: migrate.ErrNoChange}

	mg := New(testConfig(), func(_, _ string) (Migrator, error) {
		return fake, nil
	})

	assert.NoError(t, mg.Up())
}

func TestUp_EngineError(t *testing.T) {
	engineErr := errors.New("bad source")

	mg := New(testConfig(), func(_, _ string) (Migrator, error) {
		return nil, engineErr
	})

	assert.ErrorIs(t, mg.Up(), engineErr)
}

func TestUp_UpError(t *testing.T) {
	upErr := errors.New("dirty database")
	fake := &fakeMigrator{upErr: upErr}

	mg := New(testConfig(), func(_, _ string) (Migrator, error) {
		return fake, nil
	})

	err := mg.Up()
	assert.ErrorIs(t, err, upErr)
	assert.True(t, fake.closed)
}

func TestUp_CloseErrorsSurface(t *testing.T) {
	fake := &fakeMigrator{closeDB: errors.New("connection lost")}

	mg := New(testConfig(), func(_, _ string) (Migrator, error) {
		return fake, nil
	})

	assert.Error(t, mg.Up())
}
