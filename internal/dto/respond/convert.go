package respond

import "alisa_ai_server/internal/model"

// FromUser 转换用户信息
func FromUser(u model.User) UserInfoRespond {
	return UserInfoRespond{Id: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email, Avatar: u.Avatar}
}

// FromFriend 转换好友
func FromFriend(f model.Friend) FriendRespond {
	return FriendRespond{FriendId: f.ID, Name: f.Name, Avatar: f.Avatar, Status: string(f.Status)}
}

// FromMessages 转换消息列表，nil 转为空数组
func FromMessages(msgs []model.Message) []MessageRespond {
	out := make([]MessageRespond, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, MessageRespond{Id: m.ID, Text: m.Text, Sender: string(m.Sender), Time: m.Time})
	}
	return out
}

// FromNotice 转换提示条
func FromNotice(n model.Notice) NoticeRespond {
	return NoticeRespond{Id: n.ID, Level: string(n.Level), Text: n.Text}
}

// FromTheme 转换背景主题
func FromTheme(t model.Theme) ThemeRespond {
	return ThemeRespond{Name: t.Name, Color: t.Color}
}
