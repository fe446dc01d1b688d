package request

// AdminLoginRequest 管理后台登录
type AdminLoginRequest struct {
	Password string `json:"password"`
}
