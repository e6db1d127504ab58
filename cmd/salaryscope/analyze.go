package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/schroedermarius/salaryscope/internal/cli"
	"github.com/schroedermarius/salaryscope/internal/config"
	"github.com/schroedermarius/salaryscope/internal/credentials"
	"github.com/schroedermarius/salaryscope/internal/llmcall"
	"github.com/schroedermarius/salaryscope/internal/prompts/salary"
	"github.com/schroedermarius/salaryscope/internal/providers"
	"github.com/schroedermarius/salaryscope/internal/report"
)

const analyzePromptKey = "analyze.salary_by_department"

var (
	analyzeModel   string
	analyzeShowRaw bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [data-file]",
	Short: "Ask the model for the average salary per department",
	Long: `Analyze reads an employee records JSON file, embeds it verbatim into the
prompt, and requests a salary-by-department aggregation constrained by a
strict JSON schema. The decoded result is rendered as a table; a response
that cannot be decoded is reported as a single failure message.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "model override (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeShowRaw, "show-raw", true, "echo the raw model payload")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return err
	}
	cfg := cm.Get()

	dataFile := cfg.Analysis.DataFile
	if len(args) > 0 {
		dataFile = args[0]
	}
	employeeData, err := os.ReadFile(dataFile)
	if err != nil {
		return fmt.Errorf("failed to read employee data file: %w", err)
	}

	apiKey, err := credentials.Resolve(config.ResolveEnvVars(cfg.Provider.APIKey))
	if err != nil {
		return err
	}

	client := providers.NewOpenAIClient(providers.OpenAIConfig{
		APIKey:       apiKey,
		DefaultModel: cfg.Provider.Model,
		BaseURL:      cfg.Provider.BaseURL,
		Timeout:      time.Duration(cfg.Provider.TimeoutSeconds) * time.Second,
	})

	req := &providers.ChatRequest{
		Messages: []providers.Message{
			{Role: "system", Content: salary.SystemPrompt()},
			{Role: "user", Content: salary.UserPrompt(string(employeeData))},
		},
		Model:       analyzeModel,
		Temperature: cfg.Provider.Temperature,
		MaxTokens:   cfg.Provider.MaxTokens,
		ResponseFormat: &providers.ResponseFormat{
			Name:        salary.SchemaName,
			Description: salary.SchemaDescription,
			Schema:      salary.SchemaJSON(),
			Strict:      true,
		},
	}

	result, err := client.Chat(cmd.Context(), req)
	recordCall(result, cfg.Calls.LogFile)
	if err != nil {
		return fmt.Errorf("model call failed: %w", err)
	}

	showRaw := cfg.Analysis.ShowRaw
	if cmd.Flags().Changed("show-raw") {
		showRaw = analyzeShowRaw
	}
	if showRaw {
		fmt.Println(result.Content)
		fmt.Println()
	}

	decoded, ok := salary.ParseReport(result.Content)
	if !ok || len(decoded.Items) == 0 {
		// A response we cannot decode is reported, not fatal.
		fmt.Println("The model did not return a usable salary table.")
		report.RenderMetrics(os.Stdout, result.PromptTokens, result.CompletionTokens,
			result.TotalTokens, int(result.ExecutionTime.Milliseconds()))
		return nil
	}

	switch cli.GetOutputFormat() {
	case cli.OutputFormatTable:
		report.RenderTable(os.Stdout, decoded.Items)
	default:
		sorted := *decoded
		sorted.Items = make([]salary.DepartmentSalary, len(decoded.Items))
		copy(sorted.Items, decoded.Items)
		report.Sort(sorted.Items)
		if err := cli.Output(sorted); err != nil {
			return err
		}
	}

	report.RenderMetrics(os.Stdout, result.PromptTokens, result.CompletionTokens,
		result.TotalTokens, int(result.ExecutionTime.Milliseconds()))
	return nil
}

// recordCall appends the call record to the configured log file.
func recordCall(result *providers.ChatResult, logFile string) {
	if logFile == "" {
		return
	}
	call := llmcall.FromChatResult(result, analyzePromptKey)
	if call == nil {
		return
	}
	if err := call.Append(logFile); err != nil {
		slog.Warn("failed to record LLM call", "error", err, "log_file", logFile)
	}
}
