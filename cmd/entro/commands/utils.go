/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Entro commands. Provides configuration loading,
logging setup, and construction of the category source and mask engine used by every
command implementation.
*/

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kleascm/entro/pkg/charclass"
	"github.com/kleascm/entro/pkg/digest"
	"github.com/kleascm/entro/pkg/interfaces"
	"github.com/kleascm/entro/pkg/lexical"
	"github.com/kleascm/entro/pkg/logging"
	"github.com/kleascm/entro/pkg/mask"
	"github.com/kleascm/entro/pkg/utils"
	"github.com/spf13/viper"
)

// Exit codes returned by the entro binary
const (
	ExitFailure    = 1
	ExitBadMask    = 2
	ExitDictionary = 3
)

// session bundles everything a command needs after setup
type session struct {
	config  *interfaces.AnalyzerConfig
	logger  *logging.Logger
	source  interfaces.CategorySource
	lexicon *lexical.Source // nil for the charclass source
	engine  *mask.Engine
}

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("ENTRO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging(config *interfaces.AnalyzerConfig) (*logging.Logger, error) {
	logConfig := logging.DefaultLoggerConfig()
	logConfig.Level = logging.LogLevel(config.LogLevel)
	logConfig.Format = logging.LogFormat(config.LogFormat)
	logConfig.OutputDir = config.LogDir
	if config.JSONLogs {
		logConfig.Format = logging.LogFormatJSON
		logConfig.Colors = false
	}

	logger, err := logging.NewLogger(logConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// createAnalyzerConfig creates an analyzer configuration from viper settings
func createAnalyzerConfig() *interfaces.AnalyzerConfig {
	config := interfaces.DefaultAnalyzerConfig()
	config.Source = strings.ToLower(viper.GetString("source"))
	config.DictionaryPath = viper.GetString("dictionary")
	config.Filters = viper.GetStringSlice("filters")
	config.HashAlgorithm = viper.GetString("hash_algorithm")
	config.HashRate = viper.GetFloat64("hash_rate")
	config.Timeout = viper.GetDuration("timeout")
	config.MaxAttempts = viper.GetInt64("max_attempts")
	config.Seed = viper.GetUint64("seed")
	config.ReportDir = viper.GetString("report_dir")
	config.LogLevel = viper.GetString("log_level")
	config.LogDir = viper.GetString("log_dir")
	config.LogFormat = viper.GetString("log_format")
	config.JSONLogs = viper.GetBool("json_logs")
	return config
}

// buildSource creates the configured category source. The lexical source is
// culled with the configured filters before it is returned.
func buildSource(config *interfaces.AnalyzerConfig, logger *logging.Logger) (interfaces.CategorySource, *lexical.Source, error) {
	switch config.Source {
	case interfaces.SourceCharClass:
		return charclass.NewSource(), nil, nil
	case interfaces.SourceLexical:
		src, err := lexical.NewSourceFromFile(config.DictionaryPath, logger.GetLogger())
		if err != nil {
			return nil, nil, err
		}
		if err := src.Cull(config.Filters...); err != nil {
			return nil, nil, err
		}
		logger.LogDictionaryLoaded(config.DictionaryPath, src.Len(), config.Filters)
		return src, src, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source: %s", config.Source)
	}
}

// buildEngine creates a mask engine over source with the configured digest, rate and seed
func buildEngine(config *interfaces.AnalyzerConfig, source interfaces.CategorySource, logger *logging.Logger) (*mask.Engine, error) {
	hasher, err := digest.Lookup(config.HashAlgorithm)
	if err != nil {
		return nil, err
	}

	opts := []mask.Option{
		mask.WithHasher(hasher),
		mask.WithHashRate(config.HashRate),
		mask.WithLogger(logger.GetLogger()),
	}
	if config.Seed != 0 {
		opts = append(opts, mask.WithSeed(config.Seed))
	}
	return mask.NewEngine(source, opts...), nil
}

// newSession runs the common setup: config, logging, source and engine
func newSession() (*session, error) {
	if err := LoadConfig(); err != nil {
		return nil, err
	}

	config := createAnalyzerConfig()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := SetupLogging(config)
	if err != nil {
		return nil, err
	}

	source, lexicon, err := buildSource(config, logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	engine, err := buildEngine(config, source, logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	return &session{
		config:  config,
		logger:  logger,
		source:  source,
		lexicon: lexicon,
		engine:  engine,
	}, nil
}

// Close releases the session logger
func (s *session) Close() {
	if err := s.logger.Close(); err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
}

// writeReport saves result when a report directory is configured
func (s *session) writeReport(kind string, suffix string, result interface{}) {
	if s.config.ReportDir == "" {
		return
	}
	path, err := utils.WriteReport(s.config.ReportDir, kind, suffix, result)
	if err != nil {
		s.logger.Warning("Failed to write report", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info("Report written", map[string]interface{}{"path": path})
}

// requireLexicon fails for commands that only make sense over a dictionary
func (s *session) requireLexicon(command string) error {
	if s.lexicon == nil {
		return fmt.Errorf("%s requires the %s source", command, interfaces.SourceLexical)
	}
	return nil
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	var empty *interfaces.EmptyCategoryError
	var unknown *interfaces.UnknownTokenError
	var load *interfaces.DictionaryLoadError

	switch {
	case errors.Is(err, interfaces.ErrEmptyMask), errors.As(err, &empty), errors.As(err, &unknown):
		return ExitBadMask
	case errors.As(err, &load):
		return ExitDictionary
	default:
		return ExitFailure
	}
}
