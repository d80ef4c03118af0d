// Package config provides build metadata and environment-driven configuration
// for the full-service panel.
package config

import (
	_ "embed"
	"fmt"
	"os"
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
	logLevel := os.Getenv("OFS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("OFS_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("OFS_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/ofs-panel"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("OFS_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetIPLookupURL returns the endpoint used to resolve the caller's public IP
// during session tracking. The default mirrors the hosted service the panel
// has always used.
func GetIPLookupURL() string {
	url := os.Getenv("OFS_IP_LOOKUP_URL")
	if url == "" {
		url = "https://api.ipify.org?format=json"
	}
	return url
}

// GetGeoLookupURL returns the endpoint used for best-effort IP geolocation
// during session tracking. %s is replaced by the client IP.
func GetGeoLookupURL() string {
	url := os.Getenv("OFS_GEO_LOOKUP_URL")
	if url == "" {
		url = "http://ip-api.com/json/%s"
	}
	return url
}
