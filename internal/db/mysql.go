package db

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"portfolio/internal/config"
)

const tlsConfigName = "portfolio"

// NewMariaDB returns a connected GORM DB instance built from config.
// A full MARIADB_URL DSN wins over the individual connection parts.
func NewMariaDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.MariaDBURL
	if dsn == "" {
		var err error
		dsn, err = buildDSN(cfg)
		if err != nil {
			return nil, err
		}
	}
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mariadb: %w", err)
	}
	return gormDB, nil
}

func buildDSN(cfg *config.Config) (string, error) {
	mc := sqldriver.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.MariaDBHost, cfg.MariaDBPort)
	mc.User = cfg.MariaDBUser
	mc.Passwd = cfg.MariaDBPassword
	mc.DBName = cfg.MariaDBDatabase
	mc.ParseTime = true
	mc.Collation = "utf8mb4_unicode_ci"

	if cfg.MariaDBSSL || cfg.MariaDBCAPath != "" {
		if err := registerTLS(cfg.MariaDBCAPath); err != nil {
			return "", err
		}
		mc.TLSConfig = tlsConfigName
	}
	return mc.FormatDSN(), nil
}

func registerTLS(caPath string) error {
	tlsCfg := &tls.Config{}
	if caPath != "" {
		pem, err := os.ReadFile(caPath)
		if err != nil {
			return fmt.Errorf("read CA file %s: %w", caPath, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return fmt.Errorf("parse CA file %s", caPath)
		}
		tlsCfg.RootCAs = pool
	}
	if err := sqldriver.RegisterTLSConfig(tlsConfigName, tlsCfg); err != nil {
		return fmt.Errorf("register tls config: %w", err)
	}
	return nil
}
