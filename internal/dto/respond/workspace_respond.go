package respond

// WorkspaceRespond 新建工作区响应
type WorkspaceRespond struct {
	WorkspaceId string `json:"workspace_id"`
	Screen      string `json:"screen"`
}

// ScreenRespond 当前界面
type ScreenRespond struct {
	Screen string `json:"screen"`
}
