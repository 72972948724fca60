package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB

	Prod_env bool

	StaticDir string `toml:"static_dir"` // prebuilt SPA, served as-is

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}
	Nats struct {
		Servers     string
		TomlServers []string `toml:"servers"`
	}
	Api struct {
		Ipv4  string
		Proto string
	} `toml:"watchdog_web"`

	Meerkat struct {
		Url     string
		ApiKey  string        `toml:"-"` // read from SECRETS
		Timeout time.Duration `toml:"timeout"`
		Retries int           `toml:"retries"`
	} `toml:"meerkat"`

	Sweep struct {
		Interval time.Duration `toml:"interval"`
	} `toml:"sweep"`
}

const (
	DEFAULT_MEERKAT_TIMEOUT = 10 * time.Second
	DEFAULT_MEERKAT_RETRIES = 3
	DEFAULT_SWEEP_INTERVAL  = 5 * time.Minute
)

func ReadConfig() *Config {
	byte_config, err := os.ReadFile(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		panic(err)
	}

	apiKey, err := os.ReadFile(os.Getenv("SECRETS") + "/meerkat-api-key.txt")
	if err != nil {
		panic(err)
	}
	config.Meerkat.ApiKey = string(apiKey)

	user, err := os.ReadFile(os.Getenv("SECRETS") + "/nats-user.txt")
	if err != nil {
		panic(err)
	}

	pass, err := os.ReadFile(os.Getenv("SECRETS") + "/nats-password.txt")
	if err != nil {
		panic(err)
	}

	var formatedServers string
	for _, x := range config.Nats.TomlServers {
		connectUrl := fmt.Sprintf("nats://%s:%s@%s,", user, pass, string(x))
		formatedServers += connectUrl
	}

	config.Nats.Servers = formatedServers

	if config.Meerkat.Timeout == 0 {
		config.Meerkat.Timeout = DEFAULT_MEERKAT_TIMEOUT
	}
	if config.Meerkat.Retries == 0 {
		config.Meerkat.Retries = DEFAULT_MEERKAT_RETRIES
	}
	if config.Sweep.Interval == 0 {
		config.Sweep.Interval = DEFAULT_SWEEP_INTERVAL
	}

	return &config
}
