package request

// SetBackgroundRequest 切换背景
type SetBackgroundRequest struct {
	Name string `json:"name" binding:"required"`
}
