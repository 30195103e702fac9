package repository

import (
	"adaptive_learning_backend/internal/model"
	"adaptive_learning_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CohortRepository struct {
	DB *gorm.DB
}

func NewCohortRepository(db *gorm.DB) *CohortRepository {
	return &CohortRepository{DB: db}
}

// SaveLearners 批量写入学习者（启动时一次性生成）
func (r *CohortRepository) SaveLearners(learners []model.Learner) error {
	if len(learners) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(learners, 200).Error
}

func (r *CohortRepository) SaveItems(items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.CreateInBatches(items, 200).Error
}

func (r *CohortRepository) ListLearners() ([]model.Learner, error) {
	var learners []model.Learner
	err := r.DB.Order("id").Find(&learners).Error
	return learners, err
}

func (r *CohortRepository) GetLearner(id int) (*model.Learner, error) {
	var learner model.Learner
	err := r.DB.First(&learner, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLearnerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (r *CohortRepository) ListItems() ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

// ListItemsByDomain 按题目原始顺序(id)返回，排序并列时以此为稳定次序
func (r *CohortRepository) ListItemsByDomain(domain string) ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Where("domain = ?", domain).Order("id").Find(&items).Error
	return items, err
}

func (r *CohortRepository) CountLearners() (int64, error) {
	var n int64
	err := r.DB.Model(&model.Learner{}).Count(&n).Error
	return n, err
}
