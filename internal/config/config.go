// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"` // 应用名称
	Host    string `toml:"host"`    // 监听地址，如 "0.0.0.0"
	Port    int    `toml:"port"`    // 监听端口，如 8000
	Mode    string `toml:"mode"`    // 运行模式：dev / release
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// TLSConfig HTTPS 重定向配置（由 Nginx 处理 SSL 时保持关闭）
type TLSConfig struct {
	Redirect bool `toml:"redirect"`
}

// AdminConfig 管理后台配置
type AdminConfig struct {
	Password string `toml:"password"` // 管理后台静态口令
}

// ChatConfig 聊天面板配置
type ChatConfig struct {
	AutoReply      bool     `toml:"autoReply"`      // 是否开启自动回复
	AutoReplyText  string   `toml:"autoReplyText"`  // 自动回复内容
	AutoReplyDelay Duration `toml:"autoReplyDelay"` // 自动回复延迟，如 "1s"
	CallNumber     string   `toml:"callNumber"`     // 拨号按钮对应的号码
}

// NoticeConfig 提示条配置
type NoticeConfig struct {
	TTL Duration `toml:"ttl"` // 提示条自动消失的时间
}

// WorkspaceConfig 标签页工作区配置
type WorkspaceConfig struct {
	IdleTTL       Duration `toml:"idleTtl"`       // 超过该时间无请求的工作区被删除
	SweepInterval Duration `toml:"sweepInterval"` // 空闲检查间隔
	LeaveGrace    Duration `toml:"leaveGrace"`    // WebSocket 断开后等待重连的时间，超时删除工作区
}

// UIConfig 界面相关配置
type UIConfig struct {
	Locale        string `toml:"locale"`        // 参数校验提示语言：ru / en / zh
	TimeZone      string `toml:"timeZone"`      // 消息时间显示时区
	DefaultAvatar string `toml:"defaultAvatar"` // 未填写头像时使用的 emoji
}

// SnowflakeConfig 雪花算法配置
type SnowflakeConfig struct {
	MachineID int64 `toml:"machineId"` // 节点 ID，范围 0-1023
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig      `toml:"mainConfig"`
	LogConfig       `toml:"logConfig"`
	TLSConfig       `toml:"tlsConfig"`
	AdminConfig     `toml:"adminConfig"`
	ChatConfig      `toml:"chatConfig"`
	NoticeConfig    `toml:"noticeConfig"`
	WorkspaceConfig `toml:"workspaceConfig"`
	UIConfig        `toml:"uiConfig"`
	SnowflakeConfig `toml:"snowflakeConfig"`
}

// Duration 支持在 TOML 中以 "1s"、"500ms" 形式书写的时间段
type Duration struct {
	time.Duration
}

// UnmarshalText 实现 encoding.TextUnmarshaler，供 toml 解码使用
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default 返回带默认值的配置
// 配置文件中未出现的字段保持这里的默认值
func Default() *Config {
	return &Config{
		MainConfig: MainConfig{
			AppName: "alisa_ai_server",
			Host:    "0.0.0.0",
			Port:    8000,
			Mode:    "dev",
		},
		LogConfig: LogConfig{
			LogPath:    "./logs",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Level:      "info",
		},
		AdminConfig: AdminConfig{
			Password: "admin2024",
		},
		ChatConfig: ChatConfig{
			AutoReply:      true,
			AutoReplyText:  "Спасибо за сообщение! 💜",
			AutoReplyDelay: Duration{time.Second},
			CallNumber:     "+79999999999",
		},
		NoticeConfig: NoticeConfig{
			TTL: Duration{3 * time.Second},
		},
		WorkspaceConfig: WorkspaceConfig{
			IdleTTL:       Duration{30 * time.Minute},
			SweepInterval: Duration{time.Minute},
			LeaveGrace:    Duration{10 * time.Second},
		},
		UIConfig: UIConfig{
			Locale:        "ru",
			TimeZone:      "Europe/Moscow",
			DefaultAvatar: "😊",
		},
		SnowflakeConfig: SnowflakeConfig{
			MachineID: 1,
		},
	}
}

// Location 解析 TimeZone，失败时回退到本地时区
func (c UIConfig) Location() *time.Location {
	if c.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml",
	"../../configs/config.toml",
}

// LoadFile 在默认值基础上加载指定配置文件
func LoadFile(path string) (*Config, error) {
	conf := Default()
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return conf, nil
}

// LoadConfig 从多个候选路径加载配置文件
// 找到第一个可用的配置文件即停止；都不可用时返回默认配置和错误
func LoadConfig() (*Config, error) {
	for _, path := range searchPaths {
		if conf, err := LoadFile(path); err == nil {
			return conf, nil
		}
	}
	return Default(), fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，找不到文件时使用默认值
func GetConfig() *Config {
	if config == nil {
		config, _ = LoadConfig()
	}
	return config
}

// SetConfig 替换全局配置，用于测试或命令行覆盖
func SetConfig(c *Config) {
	config = c
}
