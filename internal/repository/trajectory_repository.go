package repository

import (
	"adaptive_learning_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type TrajectoryRepository struct {
	DB *gorm.DB
}

func NewTrajectoryRepository(db *gorm.DB) *TrajectoryRepository {
	return &TrajectoryRepository{DB: db}
}

// SaveRecords 批量写入轨迹记录，只追加
func (r *TrajectoryRepository) SaveRecords(records []model.TrajectoryRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(records, 500).Error
}

// SeriesFor 某学习者在某领域按日期升序的完整轨迹
func (r *TrajectoryRepository) SeriesFor(learnerID int, domain string) ([]model.TrajectoryRecord, error) {
	var records []model.TrajectoryRecord
	err := r.DB.
		Where("learner_id = ? AND domain = ?", learnerID, domain).
		Order("date").
		Find(&records).Error
	return records, err
}

// RecentAggregates 回看窗口内按(学习者, 领域)聚合；窗口内无记录的组合不出现在结果中
func (r *TrajectoryRepository) RecentAggregates(asOf time.Time, days int) ([]model.DomainAggregate, error) {
	cutoff := asOf.AddDate(0, 0, -days)

	var rows []model.DomainAggregate
	err := r.DB.Model(&model.TrajectoryRecord{}).
		Select("learner_id, domain, SUM(minutes) AS minutes, AVG(micro_score) AS micro_mean").
		Where("date >= ?", cutoff).
		Group("learner_id").
		Group("domain").
		Order("learner_id, domain").
		Scan(&rows).Error
	return rows, err
}

// RecentAggregatesFor 单个学习者的窗口聚合
func (r *TrajectoryRepository) RecentAggregatesFor(learnerID int, asOf time.Time, days int) ([]model.DomainAggregate, error) {
	cutoff := asOf.AddDate(0, 0, -days)

	var rows []model.DomainAggregate
	err := r.DB.Model(&model.TrajectoryRecord{}).
		Select("learner_id, domain, SUM(minutes) AS minutes, AVG(micro_score) AS micro_mean").
		Where("learner_id = ? AND date >= ?", learnerID, cutoff).
		Group("learner_id").
		Group("domain").
		Order("domain").
		Scan(&rows).Error
	return rows, err
}

// ScoreHistoryByDomain 某学习者全部历史的微分均值，键为领域名
func (r *TrajectoryRepository) ScoreHistoryByDomain(learnerID int) (map[string]float64, error) {
	var rows []model.DomainAggregate
	err := r.DB.Model(&model.TrajectoryRecord{}).
		Select("learner_id, domain, SUM(minutes) AS minutes, AVG(micro_score) AS micro_mean").
		Where("learner_id = ?", learnerID).
		Group("learner_id").
		Group("domain").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	means := make(map[string]float64, len(rows))
	for _, row := range rows {
		means[row.Domain] = row.MicroMean
	}
	return means, nil
}

func (r *TrajectoryRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&model.TrajectoryRecord{}).Count(&n).Error
	return n, err
}

// TotalsSince 窗口内全体学习者的分钟总和与微分均值（总览KPI）
func (r *TrajectoryRepository) TotalsSince(asOf time.Time, days int) (int64, float64, error) {
	cutoff := asOf.AddDate(0, 0, -days)

	var row struct {
		Minutes   int64
		MicroMean float64
	}
	err := r.DB.Model(&model.TrajectoryRecord{}).
		Select("COALESCE(SUM(minutes),0) AS minutes, COALESCE(AVG(micro_score),0) AS micro_mean").
		Where("date >= ?", cutoff).
		Scan(&row).Error
	return row.Minutes, row.MicroMean, err
}
