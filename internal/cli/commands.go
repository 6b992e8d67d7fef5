package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mihikajadhav02/NiraCare/internal/config"
	"github.com/mihikajadhav02/NiraCare/internal/debug"
	"github.com/mihikajadhav02/NiraCare/internal/llm"
	"github.com/mihikajadhav02/NiraCare/internal/logging"
	"github.com/mihikajadhav02/NiraCare/internal/pipeline"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(config.DefaultConfig())
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "niracare",
		Short: "NiraCare - Symptom intake to doctor-ready visit notes",
		Long: `NiraCare turns a free-text symptom description into a doctor-ready visit note
through a fixed pipeline of LLM stages: intake, clarifier, summary, routing and eval.
It documents what the patient reported and never provides diagnosis or treatment advice.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start interactive mode
			return runInteractiveMode(cfg)
		},
	}

	rootCmd.AddCommand(newRunCmd(cfg))
	rootCmd.AddCommand(newDemoCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(cfg))

	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug mode")

	return rootCmd
}

// newRunCmd starts one interactive session without the restart loop.
func newRunCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one interactive intake session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := runSession(cmd.Context(), cfg, "")
			if err != nil {
				return err
			}
			RenderSession(sess)
			return nil
		},
	}
}

// newDemoCmd runs the pipeline end to end with auto-generated answers.
func newDemoCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [symptom description]",
		Short: "Run the full pipeline with auto-answered questions",
		Long: `Run the complete pipeline on the given symptom description without pausing
for input: clarifying questions are answered with placeholders.
Example: niracare demo "I've had headaches every morning for two weeks"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawText := strings.Join(args, " ")
			asJSON, _ := cmd.Flags().GetBool("json")
			return runDemoCommand(cmd.Context(), cfg, rawText, asJSON)
		},
	}

	cmd.Flags().Bool("json", false, "Print the final session record as JSON")

	return cmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("NiraCare v1.0.0")
			fmt.Println("Symptom intake and visit-note pipeline")
		},
	}
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage NiraCare configuration settings",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a configuration setting",
		Long: `Persist a non-secret setting to the config file.
Keys: provider, model, backend_url, max_tokens, timeout_seconds, debug,
eino_debug_enabled, eino_debug_port. API keys stay in the environment.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setConfigValue(cfg, args[0], args[1])
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the config file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := config.NewManager(config.WithInitialConfig(cfg))
			if err != nil {
				return err
			}
			fmt.Println(mgr.Path())
			return nil
		},
	})

	return configCmd
}

// newRunner wires the model, logger and optional debug server for one run.
func newRunner(ctx context.Context, cfg *config.Config) (*pipeline.Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := debug.NewEinoDebugger(cfg).Initialize(); err != nil {
		return nil, err
	}

	cm, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, err
	}

	return pipeline.NewRunner(cm, log), nil
}

// runSession executes one pipeline run, prompting for the symptom text when
// rawText is empty and collecting answers interactively.
func runSession(ctx context.Context, cfg *config.Config, rawText string) (sess *sessionResult, err error) {
	runner, err := newRunner(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if rawText == "" {
		rawText, err = PromptForSymptoms()
		if err != nil {
			return nil, err
		}
	}

	fmt.Println()
	fmt.Println(stepStyle.Render("Extracting symptoms and preparing follow-up questions..."))

	record, err := runner.Run(ctx, rawText, CollectAnswers)
	if err != nil {
		return &sessionResult{Session: record}, fmt.Errorf("pipeline failed: %w", err)
	}
	return &sessionResult{Session: record}, nil
}

// runDemoCommand runs the pipeline without a user present.
func runDemoCommand(ctx context.Context, cfg *config.Config, rawText string, asJSON bool) error {
	runner, err := newRunner(ctx, cfg)
	if err != nil {
		return err
	}

	record, err := runner.Run(ctx, rawText, pipeline.AutoAnswers)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(record.Snapshot(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	RenderSession(&sessionResult{Session: record})
	return nil
}

// showConfig displays the current configuration
func showConfig(cfg *config.Config) {
	fmt.Println("Current NiraCare Configuration:")
	fmt.Println(strings.Repeat("─", 40))
	fmt.Printf("LLM Provider:      %s\n", cfg.LLMProvider)
	fmt.Printf("Model:             %s\n", cfg.Model)
	if cfg.BackendURL != "" {
		fmt.Printf("Backend URL:       %s\n", cfg.BackendURL)
	}
	fmt.Printf("Max Tokens:        %d\n", cfg.MaxTokens)
	fmt.Printf("Timeout:           %ds\n", cfg.TimeoutSecs)
	fmt.Printf("Debug Mode:        %t\n", cfg.Debug)
	fmt.Printf("Eino Debug:        %t\n", cfg.EinoDebugEnabled)
	if cfg.EinoDebugEnabled {
		fmt.Printf("Eino Debug Port:   %d\n", cfg.EinoDebugPort)
	}
	fmt.Println()

	fmt.Println("API Credentials:")
	fmt.Println(strings.Repeat("─", 40))
	printKeyStatus("Google API key", cfg.GoogleAPIKey)
	printKeyStatus("OpenAI API key", cfg.OpenAIAPIKey)
	printKeyStatus("DeepSeek API key", cfg.DeepSeekAPIKey)
}

func printKeyStatus(name, key string) {
	if key != "" {
		fmt.Printf("%-18s configured\n", name+":")
	} else {
		fmt.Printf("%-18s not configured\n", name+":")
	}
}

// setConfigValue applies one key change through the manager so it lands in
// the config file atomically and survives restarts.
func setConfigValue(cfg *config.Config, key, value string) error {
	mgr, err := config.NewManager(config.WithInitialConfig(cfg))
	if err != nil {
		return err
	}

	updated := mgr.Get()
	if err := applyConfigValue(&updated, key, value); err != nil {
		return err
	}
	if err := mgr.Update(updated); err != nil {
		return err
	}

	*cfg = mgr.Get()
	fmt.Printf("%s set to %s (saved to %s)\n", key, value, mgr.Path())
	return nil
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "provider":
		cfg.LLMProvider = value
	case "model":
		cfg.Model = value
	case "backend_url":
		cfg.BackendURL = value
	case "max_tokens":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_tokens must be an integer: %q", value)
		}
		cfg.MaxTokens = v
	case "timeout_seconds":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("timeout_seconds must be an integer: %q", value)
		}
		cfg.TimeoutSecs = v
	case "debug":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("debug must be true or false: %q", value)
		}
		cfg.Debug = v
	case "eino_debug_enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("eino_debug_enabled must be true or false: %q", value)
		}
		cfg.EinoDebugEnabled = v
	case "eino_debug_port":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("eino_debug_port must be an integer: %q", value)
		}
		cfg.EinoDebugPort = v
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

// validateConfig validates the configuration and credentials
func validateConfig(cfg *config.Config) error {
	fmt.Println("Validating NiraCare configuration...")

	if err := cfg.Validate(); err != nil {
		fmt.Println(errStyle.Render("  ✗ " + err.Error()))
		fmt.Println()
		fmt.Println("Tips:")
		fmt.Println("  • Set GOOGLE_API_KEY for the default gemini provider")
		fmt.Println("  • Or switch providers with NIRACARE_PROVIDER=openai|deepseek")
		return err
	}

	fmt.Println(okStyle.Render("  ✓ Configuration is valid"))
	fmt.Printf("  Provider %s with model %s is ready to use.\n", cfg.LLMProvider, cfg.Model)
	return nil
}

// runInteractiveMode loops intake sessions until the user exits.
func runInteractiveMode(cfg *config.Config) error {
	DisplayWelcomeBanner()

	ctx := context.Background()
	for {
		sess, err := runSession(ctx, cfg, "")
		if err != nil {
			fmt.Println(errStyle.Render("✗ " + err.Error()))
		} else {
			RenderSession(sess)
		}

		again, err := PromptForRestartOrExit()
		if err != nil {
			return err
		}
		if !again {
			fmt.Println("Thanks for using NiraCare. Take care!")
			return nil
		}
		fmt.Println()
	}
}
