package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/testrail/logger"
	"github.com/kbukum/testrail/security"
	"github.com/kbukum/testrail/util"
	"github.com/kbukum/testrail/validation"
)

// DefaultAPIPath is the API root of a stock TestRail installation.
const DefaultAPIPath = "index.php?/api/v2/"

// DefaultTimeout bounds a single HTTP round-trip.
const DefaultTimeout = 30 * time.Second

// ClientConfig holds everything needed to talk to one TestRail instance.
//
// Example config.yml:
//
//	endpoint: https://example.testrail.io/
//	username: qa@example.com
//	password: ${TESTRAIL_PASSWORD}
//	timeout: 10s
//	tls:
//	  ca_file: /etc/ssl/testrail-ca.pem
//	logging:
//	  level: debug
type ClientConfig struct {
	Endpoint        string              `yaml:"endpoint" mapstructure:"endpoint" validate:"required,url"`
	Username        string              `yaml:"username" mapstructure:"username" validate:"required"`
	Password        string              `yaml:"password" mapstructure:"password" validate:"required"`
	APIPath         string              `yaml:"api_path" mapstructure:"api_path"`
	ApplicationName string              `yaml:"application_name" mapstructure:"application_name"`
	Timeout         time.Duration       `yaml:"timeout" mapstructure:"timeout"`
	Logging         logger.Config       `yaml:"logging" mapstructure:"logging"`
	TLS             *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults normalizes the endpoint and API path and fills in defaults.
func (c *ClientConfig) ApplyDefaults() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Endpoint != "" && !strings.HasSuffix(c.Endpoint, "/") {
		c.Endpoint += "/"
	}

	c.APIPath = strings.TrimSpace(c.APIPath)
	if c.APIPath == "" {
		c.APIPath = DefaultAPIPath
	}
	c.APIPath = strings.TrimLeft(c.APIPath, "/")
	if !strings.HasSuffix(c.APIPath, "/") {
		c.APIPath += "/"
	}

	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration.
func (c *ClientConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.TLS.Validate(); err != nil {
		return fmt.Errorf("config.tls: %w", err)
	}
	return nil
}

// BaseURL is the prefix every request path is appended to.
func (c *ClientConfig) BaseURL() string {
	return c.Endpoint + c.APIPath
}

// APISegment is the part of the API path that appears in pagination links,
// e.g. "/api/v2/" for "index.php?/api/v2/".
func (c *ClientConfig) APISegment() string {
	if i := strings.Index(c.APIPath, "?"); i >= 0 {
		return c.APIPath[i+1:]
	}
	return c.APIPath
}

// String masks the password.
func (c ClientConfig) String() string {
	return fmt.Sprintf("ClientConfig{Endpoint: %s, Username: %s, Password: %s, APIPath: %s}",
		c.Endpoint, c.Username, util.MaskSecret(c.Password, 0), c.APIPath)
}
