package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mgdigi/portfolio/backend/internal/i18n"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Chat    ChatConfig
	Contact ContactConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	addr, err := normalizeAddr(cfg.Server.Port)
	if err != nil {
		return nil, err
	}
	cfg.Server.Addr = addr

	lang, ok := i18n.Parse(cfg.Server.DefaultLanguage)
	if !ok {
		return nil, fmt.Errorf("unsupported DEFAULT_LANGUAGE value %q", cfg.Server.DefaultLanguage)
	}
	cfg.Server.DefaultLanguage = string(lang)

	if err := cfg.Chat.validate(); err != nil {
		return nil, err
	}
	if cfg.Contact.SubmitDelay < 0 {
		return nil, fmt.Errorf("invalid CONTACT_SUBMIT_DELAY value %s", cfg.Contact.SubmitDelay)
	}

	return &cfg, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Port            string   `env:"PORT" env-default:"8080"`
	AllowedOrigins  []string `env:"CORS_ALLOWED_ORIGINS" env-separator:","`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" env-default:"fr"`

	// Addr 由 Port 推导而来。
	Addr string
}

// ChatConfig controls the simulated assistant latency.
type ChatConfig struct {
	MinReplyDelay time.Duration `env:"CHAT_REPLY_MIN_DELAY" env-default:"1s"`
	MaxReplyDelay time.Duration `env:"CHAT_REPLY_MAX_DELAY" env-default:"2s"`
	EventBuffer   int           `env:"CHAT_EVENT_BUFFER" env-default:"16"`
}

func (c ChatConfig) validate() error {
	if c.MinReplyDelay < 0 || c.MaxReplyDelay < 0 {
		return fmt.Errorf("chat reply delays must not be negative")
	}
	if c.MaxReplyDelay < c.MinReplyDelay {
		return fmt.Errorf("CHAT_REPLY_MAX_DELAY (%s) is lower than CHAT_REPLY_MIN_DELAY (%s)", c.MaxReplyDelay, c.MinReplyDelay)
	}
	if c.EventBuffer < 1 {
		return fmt.Errorf("invalid CHAT_EVENT_BUFFER value %d", c.EventBuffer)
	}
	return nil
}

// ContactConfig 描述联系表单的模拟提交。
type ContactConfig struct {
	SubmitDelay time.Duration `env:"CONTACT_SUBMIT_DELAY" env-default:"2s"`
}

// normalizeAddr 解析服务器监听地址。
func normalizeAddr(port string) (string, error) {
	port = strings.TrimSpace(port)
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return port, nil
	}

	if strings.Contains(port, " ") {
		return "", fmt.Errorf("invalid PORT value: %q", port)
	}

	return ":" + port, nil
}
