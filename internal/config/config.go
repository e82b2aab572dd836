package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	AdminIDs       []int64
	SupportContact string
	Database       DatabaseConfig
	Sheets         SheetsConfig
	Phone          PhoneConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// SheetsConfig holds Google Sheets mirror settings.
// Either CredentialsFile or CredentialsJSON is enough; with neither set
// the mirror is disabled and requests are only stored locally.
type SheetsConfig struct {
	CredentialsFile string
	CredentialsJSON string
	SpreadsheetID   string
	SheetName       string
}

// Enabled reports whether the mirror is configured at all
func (s SheetsConfig) Enabled() bool {
	return s.CredentialsFile != "" || s.CredentialsJSON != ""
}

// PhoneConfig holds phone number normalization settings
type PhoneConfig struct {
	CountryCode  string
	TrunkPrefix  string
	RewriteTrunk bool
	Length       int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		AdminIDs:       parseAdminIDs(os.Getenv("ADMIN_IDS")),
		SupportContact: getEnv("SUPPORT_CONTACT", "@drigmma"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "zabugorn"),
			User:     getEnv("DB_USER", "zabugorn"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Sheets: SheetsConfig{
			CredentialsFile: os.Getenv("GOOGLE_CREDS_JSON_PATH"),
			CredentialsJSON: os.Getenv("GOOGLE_CREDS_JSON_CONTENT"),
			SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
			SheetName:       getEnv("GOOGLE_SHEET_NAME", "Telegram Car Requests"),
		},
		Phone: PhoneConfig{
			CountryCode:  getEnv("PHONE_COUNTRY_CODE", "7"),
			TrunkPrefix:  getEnv("PHONE_TRUNK_PREFIX", "8"),
			RewriteTrunk: getEnvBool("PHONE_REWRITE_TRUNK", true),
			Length:       getEnvInt("PHONE_LENGTH", 12),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// IsAdmin reports whether userID is on the operator allow-list
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// parseAdminIDs parses a comma-separated list of Telegram user ids.
// Invalid entries are skipped rather than failing startup.
func parseAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
