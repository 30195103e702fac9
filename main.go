// @title 自适应学习引擎 API
// @version 1.0
// @description 自适应学习数据模拟、推荐与周计划引擎的后端服务器。

// @host localhost:8080
// @BasePath /api

package main

import (
	"adaptive_learning_backend/internal/app"
	"adaptive_learning_backend/internal/config"
	"adaptive_learning_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, *configPath)
	defer logger.Log.Sync()

	application.Run()
}
