package utils

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	SMS      SMSConfig
	Telegram TelegramConfig
	Kafka    KafkaConfig
	Relay    RelayConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host        string
	Port        string
	Name        string
	User        string
	Password    string
	MaxConns    int32
	AutoMigrate bool
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
}

type TelegramConfig struct {
	Token  string
	ChatID int64
}

type KafkaConfig struct {
	Brokers       []string
	LocationTopic string
	PushTopic     string
	GroupID       string
}

// RelayConfig tunes the in-process location hub.
type RelayConfig struct {
	SubscriberBuffer int
}

type NotifyConfig struct {
	Timeout time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "cab-dispatch")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("KAFKA_LOCATION_TOPIC", "location-updates")
	viper.SetDefault("KAFKA_PUSH_TOPIC", "location-push")
	viper.SetDefault("KAFKA_GROUP_ID", "cab-dispatch")
	viper.SetDefault("RELAY_SUBSCRIBER_BUFFER", 16)
	viper.SetDefault("NOTIFY_TIMEOUT", "5s")

	viper.AutomaticEnv()

	// .env is optional, plain environment variables are enough in containers
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			Name:        viper.GetString("DB_NAME"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASS"),
			MaxConns:    viper.GetInt32("DB_MAX_CONNS"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		SMS: SMSConfig{
			GatewayURL: viper.GetString("SMS_GATEWAY_URL"),
			APIKey:     viper.GetString("SMS_API_KEY"),
			Sender:     viper.GetString("SMS_SENDER"),
		},
		Telegram: TelegramConfig{
			Token:  viper.GetString("TELEGRAM_TOKEN"),
			ChatID: viper.GetInt64("TELEGRAM_CHAT_ID"),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(viper.GetString("KAFKA_BROKERS")),
			LocationTopic: viper.GetString("KAFKA_LOCATION_TOPIC"),
			PushTopic:     viper.GetString("KAFKA_PUSH_TOPIC"),
			GroupID:       viper.GetString("KAFKA_GROUP_ID"),
		},
		Relay: RelayConfig{
			SubscriberBuffer: viper.GetInt("RELAY_SUBSCRIBER_BUFFER"),
		},
		Notify: NotifyConfig{
			Timeout: viper.GetDuration("NOTIFY_TIMEOUT"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
