// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by backends that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "consultor/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// Provider identifies a chat-completion backend implementation.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// ModelConfig describes one configured analyst model.
type ModelConfig struct {
	// Name is the key under which results and report directories are filed
	// (e.g. "openai", "claude").
	Name string `json:"name" yaml:"name"`

	// Provider selects the backend implementation.
	Provider Provider `json:"provider" yaml:"provider"`

	// Model is the provider-side model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// Temperature is the sampling temperature passed to the provider.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// MaxTokens caps the completion length (default 4000).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// AgentConfig holds shared settings for packages that call a chat-completion API.
type AgentConfig struct {
	HTTPConfig `yaml:",inline"`

	// ChatModel is the model used for the interview conversation.
	ChatModel ModelConfig `json:"chat_model" yaml:"chat_model"`

	// AnalystModels are the models fanned out to during report generation,
	// processed in slice order.
	AnalystModels []ModelConfig `json:"analyst_models" yaml:"analyst_models"`

	// OllamaHost is the base URL of a local Ollama server
	// (default "http://localhost:11434").
	OllamaHost string `json:"ollama_host,omitempty" yaml:"ollama_host,omitempty"`
}

// QuestionerConfig holds settings for the interview-script components.
type QuestionerConfig struct {
	// QuestionerPath is the Markdown interview script (default "data/questioner.md").
	QuestionerPath string `json:"questioner_path" yaml:"questioner_path"`

	// PersonaPath is the consultor persona text file (default "data/interviewer.txt").
	PersonaPath string `json:"persona_path" yaml:"persona_path"`
}

// CostConfig holds settings for the cost-estimation components.
type CostConfig struct {
	// RatesPath is the plain-text hourly rate table (default "data/pays.txt").
	RatesPath string `json:"rates_path" yaml:"rates_path"`
}

// ReportConfig holds settings for report assembly.
type ReportConfig struct {
	// ReportsDir is the root under which per-model report directories are
	// created (default "data/reports").
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`
}

// LedgerConfig holds settings for the report-run ledger.
type LedgerConfig struct {
	// LedgerDir is the directory holding the SQLite database
	// (default "data/ledger").
	LedgerDir string `json:"ledger_dir" yaml:"ledger_dir"`
}

// ConsultorConfig groups all component configurations.
type ConsultorConfig struct {
	Agent      AgentConfig      `json:"agent" yaml:"agent"`
	Questioner QuestionerConfig `json:"questioner" yaml:"questioner"`
	Cost       CostConfig       `json:"cost" yaml:"cost"`
	Report     ReportConfig     `json:"report" yaml:"report"`
	Ledger     LedgerConfig     `json:"ledger" yaml:"ledger"`
}
