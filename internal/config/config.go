package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DataDir string
	Ollama  OllamaConfig
	Quiz    QuizConfig
	CV      CVConfig
	Logger  LoggerConfig
}

type OllamaConfig struct {
	Server  string
	Model   string
	Timeout time.Duration
}

type QuizConfig struct {
	Questions  int
	Difficulty string
}

type CVConfig struct {
	Template string
	Accent   string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LoadConfig reads the optional YAML config file and applies environment
// overrides. A missing config file is not an error; every key has a
// usable default for a fresh installation.
func LoadConfig(configFile string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".cartable"))
		}
	}

	viper.SetDefault("data_dir", defaultDataDir())
	viper.SetDefault("ollama.server", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3.1")
	viper.SetDefault("ollama.timeout", 120)
	viper.SetDefault("quiz.questions", 5)
	viper.SetDefault("quiz.difficulty", "medium")
	viper.SetDefault("cv.template", "classic")
	viper.SetDefault("cv.accent", "#2C3E50")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		DataDir: viper.GetString("data_dir"),
		Ollama: OllamaConfig{
			Server:  viper.GetString("ollama.server"),
			Model:   viper.GetString("ollama.model"),
			Timeout: viper.GetDuration("ollama.timeout") * time.Second,
		},
		Quiz: QuizConfig{
			Questions:  viper.GetInt("quiz.questions"),
			Difficulty: viper.GetString("quiz.difficulty"),
		},
		CV: CVConfig{
			Template: viper.GetString("cv.template"),
			Accent:   viper.GetString("cv.accent"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if dataDir := os.Getenv("CARTABLE_DATA_DIR"); dataDir != "" {
		config.DataDir = dataDir
	}
	if server := os.Getenv("OLLAMA_SERVER"); server != "" {
		config.Ollama.Server = server
	}
	if model := os.Getenv("OLLAMA_MODEL"); model != "" {
		config.Ollama.Model = model
	}
	if level := os.Getenv("CARTABLE_LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}

	return config, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".cartable", "data")
}
