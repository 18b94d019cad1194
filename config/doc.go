// Package config loads the TestRail client configuration.
//
// Values come from an optional config.yml, an optional .env file and
// TESTRAIL_* environment variables, in increasing precedence:
//
//	var cfg config.ClientConfig
//	if err := config.Load("trctl", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
