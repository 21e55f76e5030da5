package config

import (
	"errors"
	"fmt"
)

// Authentication material errors.
var (
	// ErrPartialAuth is returned when only some of the three TLS paths are set.
	ErrPartialAuth = errors.New("auth requires cert_file, key_file and ca_cert_file together")
)

// AuthMaterial names the PEM files used for mutual TLS: the local
// certificate chain, its RSA private key and the CA bundle used to validate
// the peer. A nil *AuthMaterial means no authentication is configured.
//
// The zero value is not usable; construct with NewAuthMaterial.
type AuthMaterial struct {
	certFile   string
	keyFile    string
	caCertFile string
}

// NewAuthMaterial returns AuthMaterial for the given paths.
// All three paths are required.
func NewAuthMaterial(certFile, keyFile, caCertFile string) (*AuthMaterial, error) {
	if certFile == "" || keyFile == "" || caCertFile == "" {
		return nil, fmt.Errorf("%w (cert=%q key=%q ca=%q)", ErrPartialAuth, certFile, keyFile, caCertFile)
	}
	return &AuthMaterial{
		certFile:   certFile,
		keyFile:    keyFile,
		caCertFile: caCertFile,
	}, nil
}

// CertFile returns the certificate chain path.
func (a *AuthMaterial) CertFile() string { return a.certFile }

// KeyFile returns the private key path.
func (a *AuthMaterial) KeyFile() string { return a.keyFile }

// CACertFile returns the CA bundle path.
func (a *AuthMaterial) CACertFile() string { return a.caCertFile }

// String implements fmt.Stringer.
func (a *AuthMaterial) String() string {
	if a == nil {
		return "auth(none)"
	}
	return fmt.Sprintf("auth(cert=%s key=%s ca=%s)", a.certFile, a.keyFile, a.caCertFile)
}

// authFile is the YAML shape of the auth section.
type authFile struct {
	CertFile   string `yaml:"cert_file"`
	KeyFile    string `yaml:"key_file"`
	CACertFile string `yaml:"ca_cert_file"`
}

func (f *authFile) material() (*AuthMaterial, error) {
	if f == nil {
		return nil, nil
	}
	if f.CertFile == "" && f.KeyFile == "" && f.CACertFile == "" {
		return nil, nil
	}
	return NewAuthMaterial(f.CertFile, f.KeyFile, f.CACertFile)
}
