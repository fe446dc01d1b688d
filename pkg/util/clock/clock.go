package clock

import (
	"time"

	"alisa_ai_server/pkg/constants"
)

// Clock 返回当前时间并按界面时区格式化为 HH:MM
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

// New 创建 Clock，loc 为 nil 时使用本地时区
func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Loc: loc}
}

// Stamp 当前时间的 HH:MM 字符串
func (c Clock) Stamp() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Loc
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc).Format(constants.CLOCK_LAYOUT)
}
