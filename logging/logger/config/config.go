package config

import (
	"github.com/spf13/viper"
)

// Config logger configuration struct
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Default logger settings
const (
	DefaultLevel  = 4 // logrus.InfoLevel
	DefaultFormat = "json"
	DefaultOutput = "stdout"
)

// SetDefaults registers the logger defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLevel)
	v.SetDefault("logger.format", DefaultFormat)
	v.SetDefault("logger.output", DefaultOutput)
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Level:      v.GetInt("logger.level"),
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
	}
}
