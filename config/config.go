package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Server *Server `json:"server" yaml:"server"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
	Store  *Store  `json:"store" yaml:"store"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
}

type Server struct {
	Http            int `json:"http" yaml:"http"`
	ReadTimeoutSec  int `json:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec int `json:"write_timeout_sec" yaml:"write_timeout_sec"`
}

// New 读取配置文件，失败直接 panic
func New(filename string) *Config {
	conf, err := Load(filename)
	if err != nil {
		panic(err)
	}
	return conf
}

// Load 依次加载 .env、yaml 文件、环境变量覆盖，最后补默认值并校验
func Load(filename string) (*Config, error) {
	// .env 可选
	_ = godotenv.Load()

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, fmt.Errorf("解析 %s 读取错误: %w", filename, err)
	}

	conf.applyEnv()
	conf.applyDefaults()
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("BLOG_JWT_SECRET")); v != "" {
		if c.Jwt == nil {
			c.Jwt = &Jwt{}
		}
		c.Jwt.Secret = v
	}
	if v := os.Getenv("BLOG_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			if c.Server == nil {
				c.Server = &Server{}
			}
			c.Server.Http = port
		}
	}
	if v := os.Getenv("BLOG_STORE_DRIVER"); v != "" {
		if c.Store == nil {
			c.Store = &Store{}
		}
		c.Store.Driver = v
	}
	if v := os.Getenv("BLOG_STORE_DSN"); v != "" {
		if c.Store == nil {
			c.Store = &Store{}
		}
		c.Store.DSN = v
	}
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	c.Jwt.applyDefaults()
	if c.Store == nil {
		c.Store = &Store{}
	}
	if c.Store.Driver == "" {
		c.Store.Driver = StoreMemory
	}
}

func (c *Config) Validate() error {
	if err := c.Jwt.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.Jwt.Revocation == RevocationRedis && c.Redis == nil {
		return fmt.Errorf("jwt.revocation=redis requires a redis section")
	}
	return nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
