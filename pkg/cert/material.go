package cert

import (
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/mqoq/mqoq-go/pkg/config"
)

// TLS material errors.
var (
	// ErrTLSMaterial is the parent of every missing/invalid material error.
	ErrTLSMaterial = errors.New("missing or invalid TLS material")

	// ErrNoAuthMaterial is returned when no authentication is configured.
	ErrNoAuthMaterial = fmt.Errorf("%w: no authentication configured", ErrTLSMaterial)

	// ErrNoCertificate is returned when the chain file holds no certificates.
	ErrNoCertificate = fmt.Errorf("%w: no certificate found", ErrTLSMaterial)

	// ErrNoPrivateKey is returned when the key file holds no usable RSA key.
	ErrNoPrivateKey = fmt.Errorf("%w: no RSA private key found", ErrTLSMaterial)

	// ErrTLSConfig is returned when crypto/tls rejects the chain and key.
	ErrTLSConfig = errors.New("TLS configuration rejected")
)

// Material is the parsed form of config.AuthMaterial, ready to be bound
// into a handshake configuration. It is never modified after LoadMaterial
// returns and may be shared between endpoints.
type Material struct {
	// Certificate is the local chain (file order) with the selected key.
	Certificate tls.Certificate

	// PrivateKey is the first RSA key found in the key file.
	PrivateKey *rsa.PrivateKey

	// TrustPool validates the peer's presented chain.
	TrustPool *x509.CertPool

	// CACerts lists the CA certificates added to TrustPool.
	CACerts []*x509.Certificate

	// SkippedCAs counts CA blocks that failed to parse.
	SkippedCAs int
}

// Leaf returns the parsed leaf certificate of the local chain.
func (m *Material) Leaf() *x509.Certificate {
	return m.Certificate.Leaf
}

// LoadMaterial reads the PEM files named by auth and assembles them.
//
// The first RSA PRIVATE KEY block that parses is used; any further keys are
// ignored. CA blocks that fail to parse are skipped, but the CA file itself
// must be readable. A nil auth fails with ErrNoAuthMaterial: there is no
// unauthenticated mode.
func LoadMaterial(auth *config.AuthMaterial) (*Material, error) {
	if auth == nil {
		return nil, ErrNoAuthMaterial
	}

	certData, err := readFile(auth.CertFile())
	if err != nil {
		return nil, err
	}
	chain := DecodeCertChainPEM(certData)
	if len(chain) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCertificate, auth.CertFile())
	}

	keyData, err := readFile(auth.KeyFile())
	if err != nil {
		return nil, err
	}
	keys, _ := DecodeRSAKeysPEM(keyData)
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoPrivateKey, auth.KeyFile())
	}
	key := keys[0]

	caData, err := readFile(auth.CACertFile())
	if err != nil {
		return nil, err
	}
	pool, cas, skipped := DecodeCAPoolPEM(caData)

	// Let crypto/tls check that the leaf parses and matches the key.
	pair, err := tls.X509KeyPair(encodeDERChainPEM(chain), EncodeRSAKeyPEM(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTLSConfig, err)
	}
	if pair.Leaf == nil {
		leaf, err := x509.ParseCertificate(pair.Certificate[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTLSConfig, err)
		}
		pair.Leaf = leaf
	}

	return &Material{
		Certificate: pair,
		PrivateKey:  key,
		TrustPool:   pool,
		CACerts:     cas,
		SkippedCAs:  skipped,
	}, nil
}
