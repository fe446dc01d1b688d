package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alisa_ai_server/internal/config"
	"alisa_ai_server/internal/dao/memory"
	"alisa_ai_server/internal/gateway/websocket"
	"alisa_ai_server/internal/handler"
	"alisa_ai_server/internal/https_server"
	"alisa_ai_server/internal/infrastructure/logger"
	"alisa_ai_server/internal/infrastructure/task"
	"alisa_ai_server/internal/service"
	"alisa_ai_server/pkg/constants"
	"alisa_ai_server/pkg/util/clock"
	"alisa_ai_server/pkg/util/snowflake"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default: search configs/)")
	flag.Parse()

	// 1. 加载配置
	conf := config.GetConfig()
	if *configPath != "" {
		c, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config failed: %v", err)
		}
		config.SetConfig(c)
		conf = c
	}
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("load .env failed: %v", err)
	}
	if err := config.ApplyEnv(conf); err != nil {
		log.Fatalf("apply env failed: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	// 3. ID 生成与参数校验翻译
	snowflake.Init(conf.SnowflakeConfig.MachineID)
	if err := handler.InitTrans(conf.UIConfig.Locale); err != nil {
		zap.L().Fatal("init validator translator failed", zap.Error(err))
	}

	// 4. 内存存储：工作区 + 通讯录
	store := memory.NewStore(memory.SeedTickets())
	directory := memory.NewDirectory(memory.SeedDirectory())

	// 5. 延时任务（自动回复、提示条消失、工作区回收）
	pool := task.NewPool(constants.TASK_WORKER_NUM, constants.TASK_BUFFER_SIZE)
	scheduler := task.NewTimerScheduler(pool)

	// 6. WebSocket 事件推送
	hub := websocket.NewHub()
	go hub.Start()

	// 7. Service 与 Handler (依赖注入)
	svc := service.NewServices(service.Deps{
		Workspaces: store,
		Directory:  directory,
		Scheduler:  scheduler,
		Publisher:  hub,
		Clock:      clock.New(conf.UIConfig.Location()),
		Config:     conf,
	})

	// 8. 工作区回收：空闲超时，或 WebSocket 断开后未重连
	wsConf := conf.WorkspaceConfig
	svc.Workspace.StartEviction(wsConf.IdleTTL.Duration, wsConf.SweepInterval.Duration)
	hub.SetLeaveHook(func(workspaceID string) {
		svc.Workspace.CloseLater(workspaceID, wsConf.LeaveGrace.Duration, hub.Online)
	})

	engine := https_server.Init(handler.NewHandlers(svc, hub), conf)
	zap.L().Info("HTTP 服务器初始化成功")

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}
	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server shutdown", zap.Error(err))
	}
	hub.Close()
	pool.Close()
	zap.L().Info("服务器已关闭")
	_ = zap.L().Sync()
}
