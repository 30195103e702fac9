package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/pkg/database"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB("test_" + uuid.New().String())
	require.NoError(t, err)
	return db
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		Seed:         42,
		Students:     20,
		Items:        40,
		HorizonDays:  10,
		LookbackDays: 7,
		Domains:      append([]string{}, config.DefaultDomains...),
	}
}

// seedLearner 手工插入一名受控参数的学习者
func seedLearner(t *testing.T, db *gorm.DB, learner model.Learner) {
	t.Helper()
	if learner.Affinities == nil {
		learner.Affinities = map[string]float64{}
	}
	require.NoError(t, db.Create(&learner).Error)
}

func seedItem(t *testing.T, db *gorm.DB, item model.Item) {
	t.Helper()
	require.NoError(t, db.Create(&item).Error)
}

// seedTrajectory 在 asOf 前 daysAgo 天插入一条固定微分的轨迹记录
func seedTrajectory(t *testing.T, db *gorm.DB, learnerID int, domain string, daysAgo int, minutes int, micro float64, asOf time.Time) {
	t.Helper()
	rec := model.TrajectoryRecord{
		LearnerID:  learnerID,
		Domain:     domain,
		Date:       asOf.AddDate(0, 0, -daysAgo),
		Minutes:    minutes,
		MicroScore: micro,
	}
	require.NoError(t, db.Create(&rec).Error)
}

func newTestRepos(t *testing.T) (*gorm.DB, *repository.CohortRepository, *repository.TrajectoryRepository) {
	t.Helper()
	db := newTestDB(t)
	return db, repository.NewCohortRepository(db), repository.NewTrajectoryRepository(db)
}
