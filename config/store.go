package config

import "fmt"

const (
	StoreMemory   = "memory"
	StoreSqlite   = "sqlite"
	StoreMySQL    = "mysql"
	StorePostgres = "postgres"
)

// Store 数据存储配置，默认进程内存
type Store struct {
	Driver string `json:"driver" yaml:"driver"`
	DSN    string `json:"dsn" yaml:"dsn"`
	Seed   bool   `json:"seed" yaml:"seed"`
	MySQL  *MySQL `json:"mysql" yaml:"mysql"`
}

func (s *Store) Validate() error {
	switch s.Driver {
	case StoreMemory, StoreSqlite:
	case StoreMySQL:
		if s.DSN == "" && s.MySQL == nil {
			return fmt.Errorf("store.driver=mysql requires store.dsn or store.mysql")
		}
	case StorePostgres:
		if s.DSN == "" {
			return fmt.Errorf("store.driver=postgres requires store.dsn")
		}
	default:
		return fmt.Errorf("unknown store.driver %q", s.Driver)
	}
	return nil
}

type MySQL struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	UserName string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"`
	Charset  string `json:"charset" yaml:"charset"`
}

func (m *MySQL) Dsn() string {
	charset := m.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=UTC",
		m.UserName, m.Password, m.Host, m.Port, m.Database, charset)
}
