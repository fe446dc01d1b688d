package request

// RegisterRequest 用户注册请求
// 使用位置:
//   - handler/user_handler.go: Register
//   - service/profile/service.go: Register
type RegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar" binding:"omitempty,max=2"`
}
