package service

import (
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type CohortService struct {
	CohortRepo *repository.CohortRepository
	Engine     config.EngineConfig
}

func NewCohortService(cohortRepo *repository.CohortRepository, engine config.EngineConfig) *CohortService {
	return &CohortService{
		CohortRepo: cohortRepo,
		Engine:     engine,
	}
}

// Generate 生成学习者群体与题库并入库。同一 seed 下结果完全可复现，
// 抽样顺序固定：能力→投入度→节奏→周目标→逐领域亲和度→题库
func (s *CohortService) Generate() ([]model.Learner, []model.Item, error) {
	src := rand.NewSource(s.Engine.Seed)

	learners := s.generateLearners(src)
	items := s.generateItems(src)

	if err := s.CohortRepo.SaveLearners(learners); err != nil {
		return nil, nil, err
	}
	if err := s.CohortRepo.SaveItems(items); err != nil {
		return nil, nil, err
	}

	return learners, items, nil
}

func (s *CohortService) generateLearners(src rand.Source) []model.Learner {
	n := s.Engine.Students

	ability := drawN(distuv.Normal{Mu: 0, Sigma: 1, Src: src}, n)
	engagement := drawN(distuv.Beta{Alpha: 3, Beta: 2, Src: src}, n)
	pace := drawN(distuv.Normal{Mu: 45, Sigma: 15, Src: src}, n)
	goalHours := drawN(distuv.Normal{Mu: 3.6, Sigma: 1.2, Src: src}, n)

	learners := make([]model.Learner, n)
	for i := 0; i < n; i++ {
		learners[i] = model.Learner{
			ID:               i,
			Ability:          ability[i],
			Engagement:       clamp(engagement[i], 0, 1),
			PaceMinPerDay:    clamp(pace[i], 5, 120),
			GoalHoursPerWeek: clamp(goalHours[i], 1.0, 8.0),
			Affinities:       make(map[string]float64, len(s.Engine.Domains)),
		}
	}

	affinityDist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for _, d := range s.Engine.Domains {
		for i := 0; i < n; i++ {
			learners[i].Affinities[d] = clamp(affinityDist.Rand(), -2, 2)
		}
	}

	return learners
}

func (s *CohortService) generateItems(src rand.Source) []model.Item {
	m := s.Engine.Items
	rng := rand.New(src)

	domains := make([]string, m)
	for i := 0; i < m; i++ {
		domains[i] = s.Engine.Domains[rng.Intn(len(s.Engine.Domains))]
	}

	difficulty := drawN(distuv.Normal{Mu: 0, Sigma: 1.0, Src: src}, m)
	discrimination := drawN(distuv.Normal{Mu: 1.0, Sigma: 0.3, Src: src}, m)
	expectedMinutes := drawN(distuv.Normal{Mu: 8, Sigma: 3, Src: src}, m)

	items := make([]model.Item, m)
	for i := 0; i < m; i++ {
		items[i] = model.Item{
			ID:              i,
			Domain:          domains[i],
			Discrimination:  clamp(discrimination[i], 0.6, 1.8),
			Difficulty:      difficulty[i],
			ExpectedMinutes: clamp(expectedMinutes[i], 3, 20),
		}
	}

	return items
}

type rander interface {
	Rand() float64
}

func drawN(dist rander, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}
