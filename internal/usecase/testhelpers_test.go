package usecase

import (
	"io"
	"testing"

	domainRepo "lab-supply-ledger/internal/domain/repository"
	"lab-supply-ledger/internal/infrastructure/database"
	"lab-supply-ledger/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testRepos struct {
	doctors   domainRepo.DoctorRepository
	materials domainRepo.MaterialRepository
	requests  domainRepo.RequestRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection to :memory: would get its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	return testRepos{
		doctors:   repository.NewDoctorRepository(db),
		materials: repository.NewMaterialRepository(db),
		requests:  repository.NewRequestRepository(db),
	}
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
