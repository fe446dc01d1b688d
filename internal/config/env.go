package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// 环境变量覆盖项，部署时不必改动 TOML 文件
const (
	EnvHost          = "ALISA_HOST"
	EnvPort          = "ALISA_PORT"
	EnvMode          = "ALISA_MODE"
	EnvLogLevel      = "ALISA_LOG_LEVEL"
	EnvAdminPassword = "ALISA_ADMIN_PASSWORD"
)

// LoadDotEnv 读取 .env 文件到进程环境，文件不存在时忽略
// 已存在的环境变量不会被覆盖
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv 用环境变量覆盖配置
func ApplyEnv(c *Config) error {
	c.MainConfig.Host = getEnv(EnvHost, c.MainConfig.Host)
	c.MainConfig.Mode = getEnv(EnvMode, c.MainConfig.Mode)
	c.LogConfig.Level = getEnv(EnvLogLevel, c.LogConfig.Level)
	c.AdminConfig.Password = getEnv(EnvAdminPassword, c.AdminConfig.Password)

	if v, ok := os.LookupEnv(EnvPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.MainConfig.Port = port
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
