package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    LogFile `yaml:"log-file"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8081"`
	Redis      Redis   `yaml:"redis"`
	Socket     Socket  `yaml:"socket"`
}

// LogFile - rotating log file; logging stays on stdout only when Path is empty.
type LogFile struct {
	Path       string `yaml:"path" env:"LOG_FILE_PATH"`
	MaxSizeMB  int    `yaml:"max-size-mb" env-default:"50"`
	MaxBackups int    `yaml:"max-backups" env-default:"3"`
	MaxAgeDays int    `yaml:"max-age-days" env-default:"14"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Socket struct {
	SendBuffer     int           `yaml:"send-buffer" env-default:"32"`
	WriteWait      time.Duration `yaml:"write-wait" env-default:"10s"`
	PongWait       time.Duration `yaml:"pong-wait" env-default:"60s"`
	MaxMessageSize int64         `yaml:"max-message-size" env-default:"4096"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yaml file at path; environment variables override it.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// PingPeriod - must be shorter than PongWait.
func (that *Socket) PingPeriod() time.Duration {
	return that.PongWait * 9 / 10
}
