package constants

const (
	CHANNEL_SIZE        = 100 // 通道大小
	TASK_WORKER_NUM     = 4   // 后台任务协程数
	TASK_BUFFER_SIZE    = 256 // 后台任务缓冲区大小
	AVATAR_MAX_LEN      = 2   // 头像（emoji）最大字符数
	WORKSPACE_ID_HEADER = "X-Workspace-Id"
	WORKSPACE_ID_QUERY  = "workspace_id"
	WORKSPACE_CTX_KEY   = "workspace_id"
	USER_ID_PREFIX      = "U"
	USER_ID_RAND_LEN    = 11
	CLOCK_LAYOUT        = "15:04" // ru-RU 的 HH:MM
)
