package cert

import (
	"crypto/x509"
	"time"
)

// RenewalWindow is how long before expiry a certificate is reported as
// due for renewal.
const RenewalWindow = 30 * 24 * time.Hour // 30 days

// CertificateInfo contains human-readable certificate information.
type CertificateInfo struct {
	CommonName string
	DNSNames   []string
	Issuer     string
	NotBefore  time.Time
	NotAfter   time.Time
	IsCA       bool
	SKI        []byte
	AKI        []byte
}

// GetCertificateInfo extracts information from a certificate.
func GetCertificateInfo(cert *x509.Certificate) *CertificateInfo {
	if cert == nil {
		return nil
	}

	return &CertificateInfo{
		CommonName: cert.Subject.CommonName,
		DNSNames:   cert.DNSNames,
		Issuer:     cert.Issuer.CommonName,
		NotBefore:  cert.NotBefore,
		NotAfter:   cert.NotAfter,
		IsCA:       cert.IsCA,
		SKI:        cert.SubjectKeyId,
		AKI:        cert.AuthorityKeyId,
	}
}

// ExpiresAt returns when the local leaf certificate expires.
func (m *Material) ExpiresAt() time.Time {
	if m.Leaf() == nil {
		return time.Time{}
	}
	return m.Leaf().NotAfter
}

// NeedsRenewal returns true if the leaf expires within RenewalWindow.
func (m *Material) NeedsRenewal() bool {
	if m.Leaf() == nil {
		return true
	}
	return time.Now().Add(RenewalWindow).After(m.Leaf().NotAfter)
}

// IsExpired returns true if the leaf certificate has expired or is not yet
// valid.
func (m *Material) IsExpired() bool {
	leaf := m.Leaf()
	if leaf == nil {
		return true
	}
	now := time.Now()
	return now.After(leaf.NotAfter) || now.Before(leaf.NotBefore)
}
