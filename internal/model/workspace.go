package model

import "time"

// Screen 用户页面当前所处的界面
type Screen string

const (
	ScreenRegistration Screen = "registration"
	ScreenProfile      Screen = "profile"
)

// AdminState 管理后台页面状态
type AdminState struct {
	Authenticated    bool     `json:"authenticated"`
	Tickets          []Ticket `json:"-"`
	SelectedTicketID string   `json:"selected_ticket_id"`
}

// SelectedTicket 返回当前选中的工单
func (a *AdminState) SelectedTicket() (*Ticket, bool) {
	return a.FindTicket(a.SelectedTicketID)
}

// FindTicket 按 ID 查找工单
func (a *AdminState) FindTicket(id string) (*Ticket, bool) {
	if id == "" {
		return nil, false
	}
	for i := range a.Tickets {
		if a.Tickets[i].ID == id {
			return &a.Tickets[i], true
		}
	}
	return nil, false
}

// Workspace 一个浏览器标签页持有的全部状态
// 只存在于内存中，新建工作区即回到初始状态
type Workspace struct {
	ID          string
	CreatedAt   time.Time
	User        *User
	Friends     []Friend
	Counterpart *Friend
	Messages    []Message
	Support     []SupportMessage
	Background  Theme
	Notices     []Notice
	Admin       AdminState
}

// NewWorkspace 创建初始状态的工作区
func NewWorkspace(id string, tickets []Ticket) *Workspace {
	cloned := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		cloned = append(cloned, t.Clone())
	}
	return &Workspace{
		ID:         id,
		CreatedAt:  time.Now(),
		Background: BackgroundPalette[0],
		Admin:      AdminState{Tickets: cloned},
	}
}

// Screen 当前界面：未注册时停留在注册页
func (w *Workspace) Screen() Screen {
	if w.User == nil {
		return ScreenRegistration
	}
	return ScreenProfile
}

// HasFriend 判断是否已添加该好友
func (w *Workspace) HasFriend(id string) bool {
	_, ok := w.FindFriend(id)
	return ok
}

// FindFriend 在好友列表中查找
func (w *Workspace) FindFriend(id string) (Friend, bool) {
	for _, f := range w.Friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}
