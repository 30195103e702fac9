package model

// Learner 模拟学习者。Affinities 的键为领域名，启动时生成后不再变更
type Learner struct {
	ID               int                `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Ability          float64            `json:"ability"`
	Engagement       float64            `json:"engagement"`
	PaceMinPerDay    float64            `json:"paceMinPerDay"`
	GoalHoursPerWeek float64            `json:"goalHoursPerWeek"`
	Affinities       map[string]float64 `gorm:"serializer:json" json:"affinities"`
}

func (Learner) TableName() string {
	return "learners"
}

// Affinity 未知领域按 0 处理（中性亲和度）
func (l *Learner) Affinity(domain string) float64 {
	return l.Affinities[domain]
}
