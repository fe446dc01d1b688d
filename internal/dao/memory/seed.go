package memory

import "alisa_ai_server/internal/model"

// SeedDirectory 初始通讯录
func SeedDirectory() []model.DirectoryEntry {
	return []model.DirectoryEntry{
		{User: model.User{ID: "1", Name: "Мария Иванова", Phone: "+7 (901) 111-11-11", Email: "maria@mail.ru", Avatar: "👩"}, Presence: model.PresenceOnline},
		{User: model.User{ID: "2", Name: "Алексей Петров", Phone: "+7 (902) 222-22-22", Email: "alexey@mail.ru", Avatar: "👨"}, Presence: model.PresenceOffline},
		{User: model.User{ID: "3", Name: "Екатерина Смирнова", Phone: "+7 (903) 333-33-33", Email: "katya@mail.ru", Avatar: "👧"}, Presence: model.PresenceOnline},
		{User: model.User{ID: "4", Name: "Дмитрий Козлов", Phone: "+7 (904) 444-44-44", Email: "dmitry@mail.ru", Avatar: "🧑"}, Presence: model.PresenceOnline},
	}
}

// SeedTickets 管理后台的示例工单
func SeedTickets() []model.Ticket {
	return []model.Ticket{
		{
			ID:         "1",
			UserID:     "1",
			UserName:   "Анна Петрова",
			UserAvatar: "👧",
			Messages: []model.SupportMessage{
				{ID: "1", Text: "Здравствуйте! Не могу добавить друга в список", Sender: model.SenderUser, Time: "14:23"},
			},
			Status:    model.TicketOpen,
			CreatedAt: "2024-12-27",
		},
		{
			ID:         "2",
			UserID:     "2",
			UserName:   "Иван Сидоров",
			UserAvatar: "👨",
			Messages: []model.SupportMessage{
				{ID: "1", Text: "Как изменить аватарку?", Sender: model.SenderUser, Time: "15:10"},
				{ID: "2", Text: "Перейдите в раздел \"Профиль\" и нажмите \"Редактировать профиль\"", Sender: model.SenderAdmin, Time: "15:12"},
				{ID: "3", Text: "Спасибо, разобрался!", Sender: model.SenderUser, Time: "15:15"},
			},
			Status:    model.TicketClosed,
			CreatedAt: "2024-12-27",
		},
	}
}
