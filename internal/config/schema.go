package config

// Config holds salaryscope configuration.
// Stored at: ./config.yaml or ~/.salaryscope/config.yaml
type Config struct {
	Provider ProviderCfg `mapstructure:"provider" yaml:"provider"`
	Analysis AnalysisCfg `mapstructure:"analysis" yaml:"analysis"`
	Calls    CallsCfg    `mapstructure:"calls" yaml:"calls"`
}

// ProviderCfg configures the chat completion provider.
type ProviderCfg struct {
	Model          string  `mapstructure:"model" yaml:"model"`                     // Model name
	APIKey         string  `mapstructure:"api_key" yaml:"api_key"`                 // API key (supports ${ENV_VAR} syntax)
	BaseURL        string  `mapstructure:"base_url" yaml:"base_url"`               // Optional API base URL override
	TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"` // HTTP timeout
	Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens" yaml:"max_tokens"`
}

// AnalysisCfg configures the salary analysis run.
type AnalysisCfg struct {
	DataFile string `mapstructure:"data_file" yaml:"data_file"` // Employee records JSON file
	ShowRaw  bool   `mapstructure:"show_raw" yaml:"show_raw"`   // Echo the raw model payload
}

// CallsCfg configures LLM call recording.
type CallsCfg struct {
	LogFile string `mapstructure:"log_file" yaml:"log_file"` // JSONL call log ("" disables)
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderCfg{
			Model:          "gpt-4o-mini",
			APIKey:         "${OPENAI_API_KEY}",
			TimeoutSeconds: 120,
		},
		Analysis: AnalysisCfg{
			DataFile: "data/employees.json",
			ShowRaw:  true,
		},
		Calls: CallsCfg{
			LogFile: "",
		},
	}
}
