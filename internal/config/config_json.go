package config

import (
	"encoding/json"
	"os"
)

type trackerJSON struct {
	PackagesFile *string `json:"packages_file"`
	Output       *string `json:"output"`
	Strict       *bool   `json:"strict"`
	LogLevel     *string `json:"log_level"`
	LogFile      *string `json:"log_file"`
}

func loadTrackerJSON(path string) (*trackerJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg trackerJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
