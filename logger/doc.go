// Package logger provides structured logging for the TestRail client using
// zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields. The client logs every
// exchange at debug level.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "trctl").WithComponent("httpclient")
//	log.Debug("Response Code : 200", logger.Fields(logger.FieldRequestID, id))
package logger
