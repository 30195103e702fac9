package model

import "time"

// TrajectoryRecord 每个(学习者, 领域, 日期)一条，生成后只追加不修改
type TrajectoryRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	LearnerID  int       `gorm:"index:idx_traj_learner_domain" json:"learnerId"`
	Domain     string    `gorm:"index:idx_traj_learner_domain" json:"domain"`
	Date       time.Time `gorm:"index" json:"date"`
	Minutes    int       `json:"minutes"`
	MicroScore float64   `json:"microScore"`
}

func (TrajectoryRecord) TableName() string {
	return "trajectory_records"
}

// DomainAggregate 回看窗口内按(学习者, 领域)聚合的分钟总和与微分均值
type DomainAggregate struct {
	LearnerID int     `json:"learnerId"`
	Domain    string  `json:"domain"`
	Minutes   int     `json:"minutes"`
	MicroMean float64 `json:"microMean"`
}
