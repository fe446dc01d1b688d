package respond

// UserInfoRespond 注册 / 资料页返回的用户信息
// 使用位置:
//   - service/profile/service.go: Register, GetProfile, EditProfile
type UserInfoRespond struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}
