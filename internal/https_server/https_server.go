// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"alisa_ai_server/internal/config"
	"alisa_ai_server/internal/handler"
	"alisa_ai_server/internal/infrastructure/logger"
	"alisa_ai_server/internal/infrastructure/middleware"
	"alisa_ai_server/internal/router"
	"alisa_ai_server/pkg/constants"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 初始化 HTTP/HTTPS 服务器并返回 Gin 引擎实例
// 配置顺序：
//  1. 创建 Gin 引擎（空白，不含默认中间件）
//  2. 注册日志和恢复中间件
//  3. 配置 CORS 跨域规则与安全头
//  4. 注册业务路由
func Init(handlers *handler.Handlers, conf *config.Config) *gin.Engine {
	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	// 页面与服务可能不同源，工作区 ID 通过自定义 Header 传递
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", constants.WORKSPACE_ID_HEADER}
	engine.Use(cors.New(corsConfig))
	engine.Use(middleware.SecureHeaders())

	// 由 Nginx 处理 SSL 时保持关闭
	if conf.TLSConfig.Redirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine)

	return engine
}
