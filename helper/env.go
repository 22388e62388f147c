package helper

import (
	"os"
	"strings"
)

// GetEnvOrDefault returns environment variable value or default if not set
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvListOrDefault splits a comma separated environment variable,
// dropping empty entries.
func GetEnvListOrDefault(key, defaultValue string) []string {
	list := []string{}
	for _, item := range strings.Split(GetEnvOrDefault(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
