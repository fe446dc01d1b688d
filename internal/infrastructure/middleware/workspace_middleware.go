package middleware

import (
	"net/http"

	"alisa_ai_server/pkg/constants"
	"alisa_ai_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// WorkspaceChecker 判断工作区是否存在
type WorkspaceChecker interface {
	Exists(workspaceID string) bool
}

// Workspace 工作区中间件
// 从 Header 或 Query 中取出工作区 ID 并存入上下文
func Workspace(checker WorkspaceChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 优先读 Header，WebSocket 握手时浏览器无法自定义 Header，退回 Query
		id := c.GetHeader(constants.WORKSPACE_ID_HEADER)
		if id == "" {
			id = c.Query(constants.WORKSPACE_ID_QUERY)
		}
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeUnauthorized,
				"msg":  "Не передан идентификатор сессии",
			})
			return
		}

		// 2. 工作区只在内存中，服务重启或页面刷新前的 ID 会失效
		if !checker.Exists(id) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code": errorx.CodeNotFound,
				"msg":  "Сессия не найдена, обновите страницу",
			})
			return
		}

		c.Set(constants.WORKSPACE_CTX_KEY, id)
		c.Next()
	}
}

// WorkspaceID 读取中间件写入的工作区 ID
func WorkspaceID(c *gin.Context) string {
	return c.GetString(constants.WORKSPACE_CTX_KEY)
}
