package cert

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
)

// PEM block types understood by this package.
const (
	pemTypeCertificate   = "CERTIFICATE"
	pemTypeRSAPrivateKey = "RSA PRIVATE KEY"
)

// PEM encoding/decoding errors.
var (
	ErrInvalidPEM = errors.New("invalid PEM data")
	ErrReadFile   = errors.New("failed to read file")
	ErrWriteFile  = errors.New("failed to write file")
)

// DecodeCertChainPEM returns the DER bytes of every CERTIFICATE block in
// data, in file order. Blocks of other types are ignored. The certificates
// are not parsed; crypto/tls validates the chain when it is assembled.
func DecodeCertChainPEM(data []byte) [][]byte {
	var chain [][]byte
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return chain
		}
		if block.Type == pemTypeCertificate {
			chain = append(chain, block.Bytes)
		}
	}
}

// DecodeRSAKeysPEM parses every RSA PRIVATE KEY (PKCS#1) block in data.
// Blocks that do not parse are skipped and counted in skipped.
func DecodeRSAKeysPEM(data []byte) (keys []*rsa.PrivateKey, skipped int) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return keys, skipped
		}
		if block.Type != pemTypeRSAPrivateKey {
			continue
		}
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			skipped++
			continue
		}
		keys = append(keys, key)
	}
}

// DecodeCAPoolPEM parses every CERTIFICATE block in data into a pool.
// Certificates that fail to parse are skipped and counted; the returned
// slice lists the accepted certificates in file order.
func DecodeCAPoolPEM(data []byte) (pool *x509.CertPool, accepted []*x509.Certificate, skipped int) {
	pool = x509.NewCertPool()
	for _, der := range DecodeCertChainPEM(data) {
		c, err := x509.ParseCertificate(der)
		if err != nil {
			skipped++
			continue
		}
		pool.AddCert(c)
		accepted = append(accepted, c)
	}
	return pool, accepted, skipped
}

// EncodeCertPEM encodes X.509 certificates to PEM format, one block each.
func EncodeCertPEM(certs ...*x509.Certificate) []byte {
	var out []byte
	for _, c := range certs {
		out = append(out, pem.EncodeToMemory(&pem.Block{
			Type:  pemTypeCertificate,
			Bytes: c.Raw,
		})...)
	}
	return out
}

// encodeDERChainPEM encodes raw DER certificates to PEM.
func encodeDERChainPEM(chain [][]byte) []byte {
	var out []byte
	for _, der := range chain {
		out = append(out, pem.EncodeToMemory(&pem.Block{
			Type:  pemTypeCertificate,
			Bytes: der,
		})...)
	}
	return out
}

// EncodeRSAKeyPEM encodes RSA private keys as PKCS#1 PEM blocks.
func EncodeRSAKeyPEM(keys ...*rsa.PrivateKey) []byte {
	var out []byte
	for _, k := range keys {
		out = append(out, pem.EncodeToMemory(&pem.Block{
			Type:  pemTypeRSAPrivateKey,
			Bytes: x509.MarshalPKCS1PrivateKey(k),
		})...)
	}
	return out
}

// DecodeCertPEM decodes the first PEM-encoded X.509 certificate in data.
func DecodeCertPEM(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemTypeCertificate {
		return nil, ErrInvalidPEM
	}
	return x509.ParseCertificate(block.Bytes)
}

// WriteCertFile writes certificates to a PEM file.
func WriteCertFile(path string, certs ...*x509.Certificate) error {
	if err := os.WriteFile(path, EncodeCertPEM(certs...), 0644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
	}
	return nil
}

// WriteRSAKeyFile writes private keys to a PEM file with restricted permissions.
func WriteRSAKeyFile(path string, keys ...*rsa.PrivateKey) error {
	if err := os.WriteFile(path, EncodeRSAKeyPEM(keys...), 0600); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteFile, path, err)
	}
	return nil
}

// ReadCertFile reads the first certificate from a PEM file.
func ReadCertFile(path string) (*x509.Certificate, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeCertPEM(data)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadFile, path, err)
	}
	return data, nil
}
