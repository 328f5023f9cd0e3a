// internal/infra/config/config.go
package config

import "os"

// Config はアプリケーション全体の環境変数設定を保持します。
type Config struct {
	Port string

	// DATABASE_URL はストア接続の設定値。存在チェックのみ行い、
	// 中身の検証はしない（firestoreinfra.ResolveDatabase が緩くパースする）。
	DatabaseURL              string
	FirestoreCredentialsFile string

	// SendGrid（購読のウェルカムメール用。未設定なら送信はスキップ）
	SendGridAPIKey string
	SendGridFrom   string
	ShopBaseURL    string
}

// Load は環境変数を読み込み Config を返します。
func Load() *Config {
	cfg := &Config{
		Port:                     getenvDefault("PORT", "8000"),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		SendGridFrom:   os.Getenv("SENDGRID_FROM"),
		ShopBaseURL:    os.Getenv("SHOP_BASE_URL"),
	}

	return cfg
}

// HasDatabaseURL は DATABASE_URL が設定されているかを返します（presence check のみ）。
func (c *Config) HasDatabaseURL() bool {
	return c != nil && c.DatabaseURL != ""
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
