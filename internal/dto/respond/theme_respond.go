package respond

// ThemeRespond 背景主题
type ThemeRespond struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
