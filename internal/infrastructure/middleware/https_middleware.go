package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler 把 HTTP 请求重定向到 HTTPS
// 由 Nginx 终止 TLS 时不需要注册
func TlsHandler(host string, port int) gin.HandlerFunc {
	// 只创建一次
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			// 重定向时也会返回 err，不能 Fatal，只终止当前请求
			zap.L().Error("TLS redirection failed", zap.Error(err))
			c.Abort()
			return
		}

		c.Next()
	}
}

// SecureHeaders 为页面响应加上常用的安全头
func SecureHeaders() gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	return func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			zap.L().Error("secure headers failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
