package service

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/repository"
	"adaptive_learning_backend/internal/util"
	"adaptive_learning_backend/pkg/monitoring"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// defaultAutonomyPct 缺失自主性百分比时的缺省值
const defaultAutonomyPct = 40

// resourcesByLevel 按自主性区间的规则化资源建议
var resourcesByLevel = map[string][]string{
	"very_low": {
		"5-minute introductory video about the topic.",
		"Infographic with basic steps.",
		"Guided activity with solved examples.",
	},
	"low": {
		"Short reading with examples.",
		"Immediate self-assessment quiz.",
		"Visual summary with key terms.",
	},
	"medium": {
		"Case applied to a real-world context.",
		"Problems of medium complexity.",
		"Collaborative activity with feedback.",
	},
	"high": {
		"Open project where the student defines the problem.",
		"Advanced academic reading.",
		"Self-assessment and metacognition rubric.",
	},
}

// MentorService 数字导师面板：固定的被辅导学生群体、定时自主性漂移
// 模拟（单写者）与有界事件日志
type MentorService struct {
	mu      sync.RWMutex
	mentees []model.Mentee

	LogRepo *repository.AutonomyLogRepository
	rng     *rand.Rand
}

func NewMentorService(logRepo *repository.AutonomyLogRepository) *MentorService {
	return &MentorService{
		mentees: seedMentees(),
		LogRepo: logRepo,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func seedMentees() []model.Mentee {
	return []model.Mentee{
		{ID: 1, Name: "Student A", Module: "Linear Algebra", Progress: 0.35, Autonomy: 0.40, Difficulty: "medium"},
		{ID: 2, Name: "Student B", Module: "Programming I", Progress: 0.70, Autonomy: 0.65, Difficulty: "low"},
		{ID: 3, Name: "Student C", Module: "Differential Calculus", Progress: 0.50, Autonomy: 0.45, Difficulty: "high"},
		{ID: 4, Name: "Student D", Module: "Educational Statistics", Progress: 0.85, Autonomy: 0.80, Difficulty: "low"},
	}
}

func (s *MentorService) ListMentees() []model.Mentee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Mentee, len(s.mentees))
	copy(out, s.mentees)
	return out
}

func (s *MentorService) GetMentee(id int) (*model.Mentee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.mentees {
		if m.ID == id {
			mentee := m
			return &mentee, nil
		}
	}
	return nil, util.ErrMenteeNotFound
}

// Averages 群体均值（百分比）
func (s *MentorService) Averages() model.MenteeAverages {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.mentees) == 0 {
		return model.MenteeAverages{}
	}

	var autonomy, progress float64
	for _, m := range s.mentees {
		autonomy += m.Autonomy
		progress += m.Progress
	}
	n := float64(len(s.mentees))
	return model.MenteeAverages{
		AutonomyPct: autonomy / n * 100,
		ProgressPct: progress / n * 100,
		Count:       len(s.mentees),
	}
}

// Tick 模拟非线性学习动态：随机挑一名学生，小幅提升进度与自主性
//（上限1.0），并向有界日志追加一条事件。仅由后台定时器调用（单写者）
func (s *MentorService) Tick(now time.Time) model.AutonomyEvent {
	s.mu.Lock()

	idx := s.rng.Intn(len(s.mentees))
	m := &s.mentees[idx]

	m.Progress = minFloat(m.Progress+s.rng.Float64()*0.03, 1.0)
	m.Autonomy = minFloat(m.Autonomy+s.rng.Float64()*0.015, 1.0)

	event := model.AutonomyEvent{
		ID:          uuid.New().String(),
		MenteeName:  m.Name,
		Timestamp:   now.Format("15:04:05"),
		AutonomyPct: roundPct(m.Autonomy * 100),
	}
	s.mu.Unlock()

	s.LogRepo.Append(event)
	monitoring.AutonomyEventCounter.Inc()
	return event
}

// SuggestResources 自主性百分比映射到离散档位并给出规则化资源建议。
// nil 按缺省 40 处理，越界值收敛到 [0,100]
func (s *MentorService) SuggestResources(autonomyPct *float64) (string, []string) {
	pct := float64(defaultAutonomyPct)
	if autonomyPct != nil {
		pct = clamp(*autonomyPct, 0, 100)
	}

	var level string
	switch {
	case pct < 25:
		level = "very_low"
	case pct < 50:
		level = "low"
	case pct < 75:
		level = "medium"
	default:
		level = "high"
	}
	return level, resourcesByLevel[level]
}

// AutonomyLog 最新在前的事件快照
func (s *MentorService) AutonomyLog() []model.AutonomyEvent {
	return s.LogRepo.Snapshot()
}

// AutonomyHistory 最近 window 条事件，按时间先后排列。
// 已知缺陷（保留原始行为）：按"姓名以数字ID结尾"过滤从不匹配，
// 因为姓名不编码ID；命中为空时回退为完整日志
func (s *MentorService) AutonomyHistory(window int, menteeID int) []model.AutonomyEvent {
	if window <= 0 {
		window = 10
	}

	log := s.LogRepo.Snapshot()

	suffix := strconv.Itoa(menteeID)
	filtered := make([]model.AutonomyEvent, 0, len(log))
	for _, e := range log {
		if strings.HasSuffix(e.MenteeName, suffix) {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		filtered = log
	}

	if len(filtered) > window {
		filtered = filtered[:window]
	}

	// 反转为时间先后顺序
	out := make([]model.AutonomyEvent, 0, len(filtered))
	for i := len(filtered) - 1; i >= 0; i-- {
		out = append(out, filtered[i])
	}
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func roundPct(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
