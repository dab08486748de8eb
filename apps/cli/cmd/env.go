package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// explicitlySet reports whether a flag was given on the command line or
// through its environment variable.
func explicitlySet(cmd *cobra.Command, flag, envKey string) bool {
	return cmd.Flags().Changed(flag) || os.Getenv(envKey) != ""
}
