package respond

// NoticeRespond 提示条
type NoticeRespond struct {
	Id    string `json:"id"`
	Level string `json:"level"`
	Text  string `json:"text"`
}
