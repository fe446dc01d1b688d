package request

// EditProfileRequest 编辑资料弹窗提交的内容
// 使用位置:
//   - handler/user_handler.go: EditProfile
type EditProfileRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" binding:"omitempty,email"`
	Avatar string `json:"avatar" binding:"omitempty,max=2"`
}
