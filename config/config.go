package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

const defaultPort = 5000

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("EJ_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("EJ_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("EJ_LISTEN")
}

func GetPort() int {
	portStr := os.Getenv("EJ_PORT")
	if portStr == "" {
		return defaultPort
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return defaultPort
	}
	return port
}

// GetAllowedOrigins returns the origins permitted to make credentialed
// cross-origin requests. Defaults cover the two local frontend dev servers.
func GetAllowedOrigins() []string {
	origins := os.Getenv("EJ_ALLOWED_ORIGINS")
	if origins == "" {
		return []string{"http://localhost:5173", "http://localhost:5174"}
	}
	parts := strings.Split(origins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func GetTokenSecret() string {
	return os.Getenv("EJ_ACCESS_TOKEN_SECRET")
}

func GetStripeSecretKey() string {
	return os.Getenv("EJ_STRIPE_SECRET_KEY")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("EJ_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/echo-journal"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("EJ_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}
