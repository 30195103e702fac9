package database

import (
	"adaptive_learning_backend/internal/model"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开一个进程内的内存库。所有实体只在进程生命周期内存在，
// 每个实例用独立的命名内存库，互不共享。
func InitDB(name string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// 内存库随连接销毁，保持单连接
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Learner{},
		&model.Item{},
		&model.TrajectoryRecord{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
