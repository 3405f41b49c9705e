package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/verso/internal/config"
	"github.com/zjrosen/verso/internal/editor"
	"github.com/zjrosen/verso/internal/log"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "verso [file]",
	Short:   "A modal terminal text editor",
	Long:    `A vi-style modal text editor for the terminal, with crash recovery via swap files, literal search, and repeatable motions.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/verso/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write debug logs to the log file")
	rootCmd.Flags().BoolP("line-numbers", "n", false,
		"show the line-number gutter")

	// Bind flags to viper
	_ = viper.BindPFlag("show_line_numbers", rootCmd.Flags().Lookup("line-numbers"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("show_line_numbers", defaults.ShowLineNumbers)
	viper.SetDefault("show_stats", defaults.ShowStats)
	viper.SetDefault("swap_save_every", defaults.SwapSaveEvery)
	viper.SetDefault("log_file", defaults.LogFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .verso/config.yaml (current directory)
		// 2. ~/.config/verso/config.yaml (user config)
		if _, err := os.Stat(".verso/config.yaml"); err == nil {
			viper.SetConfigFile(".verso/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "verso"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the default user config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "verso", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug || os.Getenv("VERSO_DEBUG") != "" {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
	}

	var doc *editor.Document
	if len(args) == 1 {
		var err error
		doc, err = editor.OpenDocument(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
	} else {
		doc = editor.NewEmptyDocument("")
	}

	model := editor.New(doc, &cfg)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
	editor.Version = v
}
