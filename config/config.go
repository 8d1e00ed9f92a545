package config

import (
	"os"
	"strings"

	"washwear-backend/storage"
	"washwear-backend/store"
)

type Config struct {
	WorkbookPath      string
	ServerPort        string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AllowedOrigins    []string
}

// App holds the loaded configuration; Records is the shared record store.
var (
	App     *Config
	Records *store.RecordStore
)

func Load() *Config {
	App = &Config{
		WorkbookPath:      getEnv("WORKBOOK_PATH", "cms_data.xlsx"),
		ServerPort:        getEnv("PORT", "8080"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigins:    splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}
	return App
}

// InitStore opens the workbook, creating it with empty collections on
// first run, and wires the shared record store.
func InitStore() {
	wb := storage.NewWorkbook(App.WorkbookPath)
	if err := wb.Initialize(); err != nil {
		panic("Failed to initialize workbook: " + err.Error())
	}
	Records = store.New(wb)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
