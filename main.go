// @title Courseware 后端 API
// @version 1.0
// @description 课程、单元与学习进度服务。
// @host localhost:8080
// @BasePath /api

package main

import (
	"courseware_backend/internal/app"
	"courseware_backend/internal/config"
	"courseware_backend/pkg/logger"
	"flag"
	"log"
)

func main() {
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
