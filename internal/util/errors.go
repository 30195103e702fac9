package util

import "errors"

var (
	ErrLearnerNotFound = errors.New("学习者不存在")
	ErrMenteeNotFound  = errors.New("被辅导学生不存在")
	ErrItemNotFound    = errors.New("item not found")
	ErrEmptyDomainSet  = errors.New("empty domain set")
)
