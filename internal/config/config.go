package config

import (
	"encoding/json"
	"os"
	"runtime"
)

const (
	defaultServerPort   = "0.0.0.0:3000"
	defaultInstanceName = "default"

	envServerPort          = "SERVER_PORT"
	envInstanceName        = "INSTANCE_NAME"
	envEnforceWindowsNames = "ENFORCE_WINDOWS_FILENAMES"
)

type Config struct {
	ServerPort          string
	InstanceName        string
	EnforceWindowsNames bool
}

func Load() *Config {
	return &Config{
		ServerPort:          getEnvOrDefault(envServerPort, defaultServerPort),
		InstanceName:        getEnvOrDefault(envInstanceName, defaultInstanceName),
		EnforceWindowsNames: enforceWindowsNames(),
	}
}

// enforceWindowsNames reads the override variable as a JSON boolean and
// falls back to the running platform when it is unset or unparsable.
func enforceWindowsNames() bool {
	text, ok := os.LookupEnv(envEnforceWindowsNames)
	if !ok {
		return runtime.GOOS == "windows"
	}

	var value bool
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return runtime.GOOS == "windows"
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
