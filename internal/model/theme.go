package model

// Theme 背景主题
type Theme struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// BackgroundPalette 设置页可选的背景色，第一项为默认值
var BackgroundPalette = []Theme{
	{Name: "Лаванда", Color: "hsl(270, 50%, 98%)"},
	{Name: "Персик", Color: "hsl(20, 100%, 95%)"},
	{Name: "Мята", Color: "hsl(150, 60%, 95%)"},
	{Name: "Небо", Color: "hsl(200, 80%, 95%)"},
	{Name: "Роза", Color: "hsl(340, 70%, 95%)"},
}

// FindTheme 按名称查找主题
func FindTheme(name string) (Theme, bool) {
	for _, t := range BackgroundPalette {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}
