package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-assessor/internal/assessment"
	"github.com/spigell/hh-assessor/internal/catalog"
	"github.com/spigell/hh-assessor/internal/logger"
	"github.com/spigell/hh-assessor/internal/scoring"
)

const (
	app = "hh-assessor"
)

type Config struct {
	Catalog      string             `mapstructure:"catalog"`
	Language     string             `mapstructure:"language"`
	Thresholds   scoring.Thresholds `mapstructure:"thresholds"`
	Limits       assessment.Limits  `mapstructure:"limits"`
	Organization string             `mapstructure:"organization"`
	AI           *AIConfig          `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hh-assessor runs the behavioral assessment for frontline healthcare roles and prints coaching recommendations",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hh-assessor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog", "", "path to a content catalog (default is the built-in catalog)")
	rootCmd.PersistentFlags().StringP("language", "l", "", "presentation language: en or es")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("language", rootCmd.PersistentFlags().Lookup("language"))

	viper.SetDefault("thresholds.strength", scoring.DefaultStrengthThreshold)
	viper.SetDefault("thresholds.developing", scoring.DefaultDevelopingThreshold)
	viper.SetDefault("limits.actions", assessment.DefaultActionLimit)
	viper.SetDefault("limits.structures", assessment.DefaultStructureLimit)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Every setting has a default, so a missing implicit config file is fine.
	// An explicit or broken one is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}

	return config, nil
}

// bootstrap builds what every assessment command needs. Failures here are
// fatal: nothing is shown to the user before the catalog is known to be sound.
func bootstrap() (*zap.Logger, *Config, *assessment.Engine) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	c, err := catalog.Load(config.Catalog)
	if err != nil {
		logger.Fatal("loading the catalog", zap.String("catalog", config.Catalog), zap.Error(err))
	}

	engine, err := assessment.New(c, assessment.Config{
		Thresholds: config.Thresholds,
		Limits:     config.Limits,
	}, logger)
	if err != nil {
		logger.Fatal("creating the assessment engine", zap.Error(err))
	}

	return logger, config, engine
}
