// Package security builds the TLS settings used to reach self-hosted
// TestRail instances, e.g. behind a private CA or requiring client
// certificates.
//
//	tls:
//	  ca_file: /etc/ssl/testrail-ca.pem
//	  min_version: "1.3"
package security
