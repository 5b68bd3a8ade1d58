package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type, so a config file can spell timeouts as
// "250ms" or "15s".
type StructuredJSONConfig struct {
	App struct {
		DefaultShell string `json:"default_shell"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Provider struct {
		KeyPath string `json:"key_path"`
	} `json:"provider,omitempty"`

	Storage struct {
		StoreFile string `json:"store_file"`
	} `json:"storage,omitempty"`

	Daemon struct {
		SocketPath     string   `json:"socket"`
		PIDFile        string   `json:"pid_file"`
		LogFile        string   `json:"log_file"`
		ProbeTimeout   Duration `json:"probe_timeout"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"daemon,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DefaultShell: jsonCfg.App.DefaultShell,
			Version:      jsonCfg.App.Version,
		},
		Provider: Provider{
			KeyPath: jsonCfg.Provider.KeyPath,
		},
		Storage: Storage{
			StoreFile: jsonCfg.Storage.StoreFile,
		},
		Daemon: Daemon{
			SocketPath:     jsonCfg.Daemon.SocketPath,
			PIDFile:        jsonCfg.Daemon.PIDFile,
			LogFile:        jsonCfg.Daemon.LogFile,
			ProbeTimeout:   time.Duration(jsonCfg.Daemon.ProbeTimeout),
			RequestTimeout: time.Duration(jsonCfg.Daemon.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
