package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"time"
)

type AnalyticsService struct {
	CohortRepo     *repository.CohortRepository
	TrajectoryRepo *repository.TrajectoryRepository
	Engine         config.EngineConfig
}

func NewAnalyticsService(
	cohortRepo *repository.CohortRepository,
	trajectoryRepo *repository.TrajectoryRepository,
	engine config.EngineConfig,
) *AnalyticsService {
	return &AnalyticsService{
		CohortRepo:     cohortRepo,
		TrajectoryRepo: trajectoryRepo,
		Engine:         engine,
	}
}

// LearningOverview 总览KPI：窗口期总分钟数、平均微分、群体平均周目标
type LearningOverview struct {
	WindowDays    int     `json:"windowDays"`
	TotalMinutes  int64   `json:"totalMinutes"`
	MeanMicro     float64 `json:"meanMicroScore"`
	MeanGoalHours float64 `json:"meanGoalHours"`
	Learners      int     `json:"learners"`
}

func (s *AnalyticsService) GetOverview(asOf time.Time) (*LearningOverview, error) {
	days := s.Engine.LookbackDays

	totalMinutes, meanMicro, err := s.TrajectoryRepo.TotalsSince(asOf, days)
	if err != nil {
		return nil, err
	}

	learners, err := s.CohortRepo.ListLearners()
	if err != nil {
		return nil, err
	}

	var meanGoal float64
	for _, l := range learners {
		meanGoal += l.GoalHoursPerWeek
	}
	if len(learners) > 0 {
		meanGoal /= float64(len(learners))
	}

	return &LearningOverview{
		WindowDays:    days,
		TotalMinutes:  totalMinutes,
		MeanMicro:     meanMicro,
		MeanGoalHours: meanGoal,
		Learners:      len(learners),
	}, nil
}

// RecentProgress 回看窗口内的(学习者, 领域)聚合；窗口内无记录的组合不补零
func (s *AnalyticsService) RecentProgress(asOf time.Time, days int) ([]model.DomainAggregate, error) {
	if days <= 0 {
		days = s.Engine.LookbackDays
	}
	return s.TrajectoryRepo.RecentAggregates(asOf, days)
}

// TrajectorySeries 某学习者在某领域的逐日轨迹（图表数据源）
func (s *AnalyticsService) TrajectorySeries(learnerID int, domain string) ([]model.TrajectoryRecord, error) {
	if _, err := s.CohortRepo.GetLearner(learnerID); err != nil {
		return nil, err
	}
	return s.TrajectoryRepo.SeriesFor(learnerID, domain)
}
