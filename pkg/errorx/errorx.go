package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息（直接展示给前端）
	cause error  // 被包装的底层错误
}

// Error 实现 error 接口
// 存在底层错误时返回 "消息: 底层错误"，否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// Is 按业务码比较，使预定义实例可以用 errors.Is 判断
func (e *CodeError) Is(target error) bool {
	var t *CodeError
	if errors.As(target, &t) {
		return t.Code == e.Code
	}
	return false
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeNotFound, "Пользователь не найден")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// 业务状态码常量定义
const (
	CodeSuccess         = 1000 // 成功
	CodeInvalidParam    = 1001 // 请求参数错误
	CodeUserExist       = 1002 // 用户已存在
	CodeUserNotExist    = 1003 // 用户不存在
	CodeInvalidPassword = 1004 // 密码错误
	CodeServerBusy      = 1005 // 服务繁忙
	CodeUnauthorized    = 1006 // 未授权
	CodeNotFound        = 1008 // 资源不存在

	CodeNotRegistered     = 1020 // 当前工作区尚未注册
	CodeAlreadyRegistered = 1021 // 当前工作区已注册
	CodeFriendExist       = 1022 // 已经是好友
	CodeNoCounterpart     = 1023 // 未选择聊天对象
	CodeEmptyMessage      = 1024 // 消息为空
	CodeTicketClosed      = 1025 // 工单已关闭
	CodeUnknownTheme      = 1026 // 未知的背景主题
	CodeNoTicketSelected  = 1027 // 未选择工单
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam      = New(CodeInvalidParam, "Неверные параметры запроса")
	ErrServerBusy        = New(CodeServerBusy, "Сервис занят, попробуйте позже")
	ErrUnauthorized      = New(CodeUnauthorized, "Доступ только для администратора")
	ErrInvalidPassword   = New(CodeInvalidPassword, "Неверный пароль")
	ErrNotRegistered     = New(CodeNotRegistered, "Сначала зарегистрируйтесь")
	ErrAlreadyRegistered = New(CodeAlreadyRegistered, "Вы уже зарегистрированы")
	ErrFriendExist       = New(CodeFriendExist, "Пользователь уже в друзьях")
	ErrNoCounterpart     = New(CodeNoCounterpart, "Выберите друга для переписки")
	ErrEmptyMessage      = New(CodeEmptyMessage, "Сообщение не может быть пустым")
	ErrTicketClosed      = New(CodeTicketClosed, "Обращение уже закрыто")
	ErrUnknownTheme      = New(CodeUnknownTheme, "Неизвестный фон")
	ErrNoTicketSelected  = New(CodeNoTicketSelected, "Выберите обращение")
)

// IsNotFound 检查错误是否为"未找到"类型
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}
