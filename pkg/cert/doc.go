// Package cert loads and generates the X.509 material used for mutual TLS.
//
// LoadMaterial turns a config.AuthMaterial (three PEM file paths) into a
// Material: the local certificate chain, the first RSA private key of the
// key file and a trust pool built from the CA bundle.
//
// # File Formats
//
//   - Certificate chain: one or more CERTIFICATE blocks, leaf first.
//   - Private key: one or more RSA PRIVATE KEY (PKCS#1) blocks; the first
//     block that parses is used.
//   - CA bundle: one or more CERTIFICATE blocks; blocks that fail to parse
//     are skipped.
//
// # Errors
//
// Every missing or unusable input wraps ErrTLSMaterial. Unreadable files
// wrap ErrReadFile together with the underlying os error. A chain and key
// that crypto/tls refuses to pair wraps ErrTLSConfig.
//
// GenerateCA and Authority.Issue create development PKIs with keys in the
// same PKCS#1 format the loader reads. GetCertificateInfo and the Material
// expiry helpers support operational checks.
package cert
