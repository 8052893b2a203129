// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the consultor CLI: a scripted project
// interview driven by a chat delegate, fanned out to multiple analyst models
// to produce technical and financial report documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MuhammadDevX/ngen-consultor/internal/agent"
	"github.com/MuhammadDevX/ngen-consultor/internal/secrets"
	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds provider credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the consultor CLI.
var rootCmd = &cobra.Command{
	Use:   "consultor",
	Short: "Scripted project interviews with multi-model report generation",
	Long: `consultor drives a scripted project interview from a Markdown question
document, delegates the conversation to a hosted chat model, and fans the
finished transcript out to multiple analyst models to produce technical and
financial report documents (with derived PDFs).

The cost subcommands price project tasks against a plain-text hourly rate
table; the runs subcommand lists past report-generation outcomes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; a missing file is not an error.
		godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./consultor.yaml or ~/.config/consultor/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("consultor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "consultor"))
		}
	}

	viper.SetEnvPrefix("CONSULTOR")
	viper.AutomaticEnv()

	viper.SetDefault("questioner.script", "data/questioner.md")
	viper.SetDefault("questioner.persona", "data/interviewer.txt")
	viper.SetDefault("cost.rates", "data/pays.txt")
	viper.SetDefault("report.dir", "data/reports")
	viper.SetDefault("ledger.dir", "data/ledger")
	viper.SetDefault("agent.chat_model", "gpt-4o")
	viper.SetDefault("agent.ollama_host", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// consultorConfig assembles the component configuration from viper.
func consultorConfig() types.ConsultorConfig {
	return types.ConsultorConfig{
		Agent: types.AgentConfig{
			ChatModel: types.ModelConfig{
				Name:        "chat",
				Provider:    types.ProviderOpenAI,
				Model:       viper.GetString("agent.chat_model"),
				Temperature: 0.7,
				MaxTokens:   4000,
			},
			AnalystModels: analystModels(),
			OllamaHost:    viper.GetString("agent.ollama_host"),
		},
		Questioner: types.QuestionerConfig{
			QuestionerPath: viper.GetString("questioner.script"),
			PersonaPath:    viper.GetString("questioner.persona"),
		},
		Cost:   types.CostConfig{RatesPath: viper.GetString("cost.rates")},
		Report: types.ReportConfig{ReportsDir: viper.GetString("report.dir")},
		Ledger: types.LedgerConfig{LedgerDir: viper.GetString("ledger.dir")},
	}
}

// defaultAnalysts is the fixed analyst set, processed in this order.
var defaultAnalysts = []types.ModelConfig{
	{Name: "openai", Provider: types.ProviderOpenAI, Model: "gpt-4o-mini", Temperature: 0.7, MaxTokens: 4000},
	{Name: "claude", Provider: types.ProviderAnthropic, Model: "claude-3-7-sonnet-latest", Temperature: 0.7, MaxTokens: 4000},
	{Name: "llama", Provider: types.ProviderOllama, Model: "llama3.2", Temperature: 0.7, MaxTokens: 4000},
}

// analystModels returns the configured analyst set. The analysts config key
// narrows the default set by name (e.g. "openai,claude").
func analystModels() []types.ModelConfig {
	selected := viper.GetStringSlice("agent.analysts")
	if len(selected) == 0 {
		return defaultAnalysts
	}

	wanted := make(map[string]bool, len(selected))
	for _, name := range selected {
		wanted[name] = true
	}

	var models []types.ModelConfig
	for _, m := range defaultAnalysts {
		if wanted[m.Name] {
			models = append(models, m)
		}
	}
	return models
}

// backendOptions builds provider credentials from secrets and environment.
func backendOptions(cfg types.ConsultorConfig) agent.Options {
	host := cfg.Agent.OllamaHost
	if host == "" {
		host = secrets.Get(loadedSecrets, "ollama-host", "OLLAMA_HOST")
	}
	return agent.Options{
		OpenAIKey:    secrets.Get(loadedSecrets, "openai-api-key", "OPENAI_API_KEY"),
		AnthropicKey: secrets.Get(loadedSecrets, "anthropic-api-key", "ANTHROPIC_API_KEY"),
		OllamaHost:   host,
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
