package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type SimulationService struct {
	TrajectoryRepo *repository.TrajectoryRepository
	Engine         config.EngineConfig
}

func NewSimulationService(trajectoryRepo *repository.TrajectoryRepository, engine config.EngineConfig) *SimulationService {
	return &SimulationService{
		TrajectoryRepo: trajectoryRepo,
		Engine:         engine,
	}
}

// Run 为每个(学习者, 领域, 天)生成一条轨迹记录并入库。
// 分钟数服从与节奏、领域亲和度相关的泊松分布；微分是能力与亲和度的
// 带噪线性函数，截断到 [0.05, 0.98]
func (s *SimulationService) Run(learners []model.Learner, asOf time.Time) ([]model.TrajectoryRecord, error) {
	src := rand.NewSource(s.Engine.Seed + 1)
	noise := distuv.Normal{Mu: 0, Sigma: 0.08, Src: src}

	days := s.Engine.HorizonDays
	today := truncateToDay(asOf)

	records := make([]model.TrajectoryRecord, 0, len(learners)*len(s.Engine.Domains)*days)
	for _, learner := range learners {
		for _, d := range s.Engine.Domains {
			affinity := learner.Affinity(d)
			lam := math.Max(5, learner.PaceMinPerDay*(0.5+0.5*(affinity+2)/4))
			minutesDist := distuv.Poisson{Lambda: lam / 4.5, Src: src}

			for k := 0; k < days; k++ {
				date := today.AddDate(0, 0, -(days - k))
				mu := 0.55 + 0.18*learner.Ability + 0.12*affinity + noise.Rand()

				records = append(records, model.TrajectoryRecord{
					LearnerID:  learner.ID,
					Domain:     d,
					Date:       date,
					Minutes:    int(minutesDist.Rand()),
					MicroScore: clamp(mu, 0.05, 0.98),
				})
			}
		}
	}

	if err := s.TrajectoryRepo.SaveRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
