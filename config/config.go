package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	HTTP     HTTPConfig
	Session  SessionConfig
	WhatsApp WhatsAppConfig
	Telegram TelegramConfig
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type HTTPConfig struct {
	Port string
}

type SessionConfig struct {
	Secret     string // HMAC key for the session cookie token
	CookieName string
	MaxAgeSec  int
}

type WhatsAppConfig struct {
	// OrderRecipients are the staff phones for the regular order flow;
	// checkout rotates through them. FitMealRecipient is the single
	// number used by the marmitas fit flow.
	OrderRecipients  []string
	FitMealRecipient string
}

type TelegramConfig struct {
	MessageToken string // bot token for pushing new orders to the barista chat
	AdminChatID  int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxAge, _ := strconv.Atoi(getEnv("SESSION_MAX_AGE", "86400"))
	adminChat, _ := strconv.ParseInt(getEnv("TELEGRAM_ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "cafejulio"),
		},
		HTTP: HTTPConfig{
			Port: getEnv("PORT", "8080"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			CookieName: getEnv("SESSION_COOKIE", "barista_session"),
			MaxAgeSec:  maxAge,
		},
		WhatsApp: WhatsAppConfig{
			OrderRecipients:  splitList(getEnv("WHATSAPP_ORDER_PHONES", "5554996027120")),
			FitMealRecipient: getEnv("WHATSAPP_FIT_PHONE", "5554999999999"),
		},
		Telegram: TelegramConfig{
			MessageToken: getEnv("MESSAGE_TOKEN", ""),
			AdminChatID:  adminChat,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
