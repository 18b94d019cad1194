package security

import (
	"crypto/tls"
	"testing"

	"github.com/kbukum/testrail/errors"
	"github.com/kbukum/testrail/security/tlstest"
)

func TestTLSConfig_BuildDisabled(t *testing.T) {
	for _, cfg := range []*TLSConfig{nil, {}} {
		got, err := cfg.Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil tls.Config for %+v", cfg)
		}
	}
}

func TestTLSConfig_BuildVersions(t *testing.T) {
	tests := []struct {
		min  string
		want uint16
	}{
		{"", tls.VersionTLS12},
		{"1.2", tls.VersionTLS12},
		{"1.3", tls.VersionTLS13},
	}
	for _, tt := range tests {
		got, err := (&TLSConfig{SkipVerify: true, ServerName: "testrail.local", MinVersion: tt.min}).Build()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MinVersion != tt.want || !got.InsecureSkipVerify || got.ServerName != "testrail.local" {
			t.Errorf("%q: unexpected config min=%d skip=%v name=%s", tt.min, got.MinVersion, got.InsecureSkipVerify, got.ServerName)
		}
	}
}

func TestTLSConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  *TLSConfig
		ok   bool
	}{
		{"nil", nil, true},
		{"cert and key", &TLSConfig{CertFile: "c.pem", KeyFile: "k.pem"}, true},
		{"cert without key", &TLSConfig{CertFile: "c.pem"}, false},
		{"key without cert", &TLSConfig{KeyFile: "k.pem"}, false},
		{"unknown version", &TLSConfig{MinVersion: "1.1"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, err)
			}
			if err != nil && !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestTLSConfig_BuildWithCerts(t *testing.T) {
	certs := tlstest.Generate(t)
	got, err := (&TLSConfig{CAFile: certs.CAFile, CertFile: certs.CertFile, KeyFile: certs.KeyFile}).Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RootCAs == nil {
		t.Error("expected RootCAs from the CA file")
	}
	if len(got.Certificates) != 1 {
		t.Errorf("expected one client certificate, got %d", len(got.Certificates))
	}
}

func TestTLSConfig_BuildBadFiles(t *testing.T) {
	tests := []struct {
		name string
		cfg  *TLSConfig
	}{
		{"missing CA", &TLSConfig{CAFile: "/nonexistent/ca.pem"}},
		{"invalid CA", &TLSConfig{CAFile: tlstest.WriteInvalidPEM(t)}},
		{"missing key pair", &TLSConfig{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.cfg.Build(); !errors.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}
