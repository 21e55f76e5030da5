package cert

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"fmt"
	"math/big"
	"net"
	"time"
)

// Development certificate defaults.
const (
	// DefaultKeyBits is the RSA modulus size for generated keys.
	DefaultKeyBits = 2048

	// CAValidity is the validity period for generated CA certificates.
	CAValidity = 10 * 365 * 24 * time.Hour // 10 years

	// LeafValidity is the validity period for generated leaf certificates.
	LeafValidity = 365 * 24 * time.Hour // 1 year
)

// Authority is a certificate authority able to issue leaf certificates.
// Intended for development and tests; production deployments bring their
// own PKI.
type Authority struct {
	Certificate *x509.Certificate
	PrivateKey  *rsa.PrivateKey
}

// Issued is a leaf certificate with its key and issuing CA.
type Issued struct {
	Certificate *x509.Certificate
	PrivateKey  *rsa.PrivateKey
	Issuer      *x509.Certificate
}

// GenerateCA creates a self-signed RSA certificate authority.
func GenerateCA(commonName string) (*Authority, error) {
	key, err := rsa.GenerateKey(rand.Reader, DefaultKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate CA key: %w", err)
	}
	ski := computeSKI(&key.PublicKey)
	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: commonName},
		NotBefore:             now.Add(-time.Minute),
		NotAfter:              now.Add(CAValidity),
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLenZero:        true,
		SubjectKeyId:          ski,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("create CA certificate: %w", err)
	}
	c, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return &Authority{Certificate: c, PrivateKey: key}, nil
}

// Issue signs a leaf certificate usable for both server and client
// authentication. The common name is always included as a DNS SAN;
// hosts that parse as IP addresses become IP SANs.
func (a *Authority) Issue(commonName string, hosts ...string) (*Issued, error) {
	key, err := rsa.GenerateKey(rand.Reader, DefaultKeyBits)
	if err != nil {
		return nil, fmt.Errorf("generate leaf key: %w", err)
	}
	ski := computeSKI(&key.PublicKey)
	serial, err := randomSerial()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template := &x509.Certificate{
		SerialNumber:   serial,
		Subject:        pkix.Name{CommonName: commonName},
		NotBefore:      now.Add(-time.Minute),
		NotAfter:       now.Add(LeafValidity),
		KeyUsage:       x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:    []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		SubjectKeyId:   ski,
		AuthorityKeyId: a.Certificate.SubjectKeyId,
		DNSNames:       []string{commonName},
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
		} else if h != commonName {
			template.DNSNames = append(template.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, template, a.Certificate, &key.PublicKey, a.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("create leaf certificate: %w", err)
	}
	c, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}
	return &Issued{Certificate: c, PrivateKey: key, Issuer: a.Certificate}, nil
}

// WriteFiles writes the leaf chain (leaf then issuer) and its key.
func (i *Issued) WriteFiles(certPath, keyPath string) error {
	if err := WriteCertFile(certPath, i.Certificate, i.Issuer); err != nil {
		return err
	}
	return WriteRSAKeyFile(keyPath, i.PrivateKey)
}

// computeSKI derives a subject key identifier (SHA-1 of the PKCS#1 key).
func computeSKI(pub *rsa.PublicKey) []byte {
	sum := sha1.Sum(x509.MarshalPKCS1PublicKey(pub))
	return sum[:]
}

func randomSerial() (*big.Int, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	serial, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return nil, fmt.Errorf("generate serial: %w", err)
	}
	return serial, nil
}
