package repository

import (
	"GrowAGram/internal/model"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "growagram.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "x", Name: username}
	require.NoError(t, NewUserRepo(db).CreateUser(context.Background(), user))
	return user
}

func seedReport(t *testing.T, db *gorm.DB, authorID uint64, start time.Time) *model.Report {
	t.Helper()
	report := &model.Report{
		AuthorID:    authorID,
		Title:       "Northern Lights indoor run",
		Description: "first attempt",
		Environment: model.EnvironmentIndoor,
		StartDate:   start,
	}
	require.NoError(t, NewReportRepo(db).CreateReport(context.Background(), report, nil))
	return report
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
