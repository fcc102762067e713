package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"AuraGo/config"
	"AuraGo/middleware"
	"AuraGo/routes"
	"AuraGo/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	if err := config.InitLogger(); err != nil {
		log.Fatalf("无法初始化日志: %v", err)
	}
	defer config.Logger.Sync()

	// 加载配置
	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
		return
	}

	// 厂商密钥缺失直接启动失败
	if err := conf.RequireVendorKeys(); err != nil {
		log.Fatalf("配置校验失败: %v", err)
	}

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		log.Fatalf("无法初始化数据库: %v", err)
		return
	}

	// 初始化Redis
	if err := config.InitRedis(conf); err != nil {
		log.Fatalf("无法初始化Redis: %v", err)
		return
	}

	// 初始化大模型客户端
	llmClient, err := services.NewLLMClient(conf.LLMAPIKey, conf.LLMAPIEndpoint, conf.LLMModel)
	if err != nil {
		log.Fatalf("无法初始化大模型客户端: %v", err)
	}

	// 初始化厂商客户端与领域服务
	storageClient := services.NewStorageClient(conf.StorageAPIKey, conf.StorageEndpoint)
	speechService := services.NewSpeechService(conf.SpeechAPIKey, conf.SpeechAPIEndpoint, conf.SpeechVoiceID, storageClient)
	videoService := services.NewVideoService(conf.VideoAPIKey, conf.VideoAPIEndpoint, conf.VideoReplicaID)
	critiqueService := services.NewCritiqueService(llmClient)
	insightService := services.NewInsightService(llmClient)
	recapService := services.NewRecapService(llmClient, videoService)
	recapPoller := services.NewRecapPoller(videoService)

	// 启动定时清理任务
	janitor := services.NewJanitor()
	if err := janitor.Start(); err != nil {
		log.Fatalf("无法启动定时任务: %v", err)
	}

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建Gin引擎
	r := gin.Default()

	// 设置中间件
	middleware.SetupMiddleware(r)

	// 注册路由
	routes.RegisterRoutes(r, routes.Deps{
		Speech:   speechService,
		Critique: critiqueService,
		Insight:  insightService,
		Recap:    recapService,
		Poller:   recapPoller,
		Video:    videoService,
		Storage:  storageClient,
	})

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	// 在goroutine中启动服务器
	go func() {
		log.Printf("启动服务器，监听端口: %s", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 创建超时上下文
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 优雅关闭服务器
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务器关闭失败: %v", err)
	}

	// 取消在途的视频轮询并等待后台任务结束
	log.Println("正在等待所有后台任务完成...")
	recapPoller.Shutdown()
	janitor.Stop()
	log.Println("所有后台任务已完成")
}
