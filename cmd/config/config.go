package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-mindmap/pkg/autosave"
	"github.com/mattsolo1/grove-mindmap/pkg/history"
	"github.com/mattsolo1/grove-mindmap/pkg/layout"
	"github.com/mattsolo1/grove-mindmap/pkg/service"
)

var (
	cfgFile   string
	dataDir   string
	ephemeral bool
	verbose   bool
)

// InitConfig reads the config file and environment. cmd is the command
// being run; its flags override the file.
func InitConfig(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		cfgFile = f.Value.String()
	}
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "mm")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("MM")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "mm"))
	viper.SetDefault("history_size", history.DefaultMaxSize)
	viper.SetDefault("save_delay", autosave.DefaultDelay)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("ephemeral", false)
	def := layout.DefaultConfig()
	viper.SetDefault("layout.root_x", def.RootX)
	viper.SetDefault("layout.horizontal_spacing", def.HorizontalSpacing)
	viper.SetDefault("layout.vertical_spacing", def.VerticalSpacing)
	viper.SetDefault("layout.node_width", def.NodeWidth)
	viper.SetDefault("layout.node_height", def.NodeHeight)

	if f := cmd.Flags().Lookup("data-dir"); f != nil && f.Changed {
		viper.Set("data_dir", dataDir)
	}
	if f := cmd.Flags().Lookup("ephemeral"); f != nil && f.Changed {
		viper.Set("ephemeral", ephemeral)
	}
	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Value.String() == "true" {
		viper.Set("log_level", "debug")
	}

	// A missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()
}

// Load decodes the configuration into a service config.
func Load() (*service.Config, error) {
	cfg := &service.Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.SaveDelay <= 0 {
		cfg.SaveDelay = autosave.DefaultDelay
	}
	return cfg, nil
}

// NewLogger builds the process logger at the configured level.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// InitService builds the service from the loaded configuration.
func InitService(cmd *cobra.Command) (*service.Service, error) {
	InitConfig(cmd)
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg.LogLevel)
	logger.WithField("data_dir", cfg.DataDir).Debug("Opening mindmap store")

	svc, err := service.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// AddGlobalFlags registers the persistent flags every command shares.
// Flags already provided by the root command are left alone.
func AddGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	if flags.Lookup("config") == nil {
		flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mm/config.yaml)")
	}
	if flags.Lookup("verbose") == nil {
		flags.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	}
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the mindmap database")
	flags.BoolVar(&ephemeral, "ephemeral", false, "Keep the mindmap in memory only")
}
