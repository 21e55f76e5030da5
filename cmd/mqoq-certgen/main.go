// Command mqoq-certgen writes a development PKI for mqoq nodes.
//
// It creates a CA, a server certificate named after the broker and one
// client certificate, all as PEM with PKCS#1 RSA keys. The files plug
// directly into the auth section of an mqoq-node configuration.
//
// Usage:
//
//	mqoq-certgen [flags]
//
// Flags:
//
//	-out string          Output directory (default "certs")
//	-server-name string  Server certificate name (default "broker.local")
//	-server-ip string    Comma-separated IP SANs for the server certificate
//	-client-name string  Client certificate name (default "client")
//	-ca-name string      CA common name (default "mqoq development CA")
//
// Output:
//
//	ca.pem, ca.key           Certificate authority
//	server.pem, server.key   Server chain (leaf, CA) and key
//	client.pem, client.key   Client chain (leaf, CA) and key
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mqoq/mqoq-go/pkg/cert"
)

var (
	outDir     = flag.String("out", "certs", "Output directory")
	serverName = flag.String("server-name", "broker.local", "Server certificate name")
	serverIPs  = flag.String("server-ip", "127.0.0.1", "Comma-separated IP SANs for the server certificate")
	clientName = flag.String("client-name", "client", "Client certificate name")
	caName     = flag.String("ca-name", "mqoq development CA", "CA common name")
)

func main() {
	flag.Parse()

	files, err := generate(*outDir, *caName, *serverName, splitList(*serverIPs), *clientName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Println(f)
	}
}

// generate writes the CA, server and client material into dir and returns
// the written paths.
func generate(dir, caName, serverName string, serverHosts []string, clientName string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	ca, err := cert.GenerateCA(caName)
	if err != nil {
		return nil, err
	}

	caCert := filepath.Join(dir, "ca.pem")
	caKey := filepath.Join(dir, "ca.key")
	if err := cert.WriteCertFile(caCert, ca.Certificate); err != nil {
		return nil, err
	}
	if err := cert.WriteRSAKeyFile(caKey, ca.PrivateKey); err != nil {
		return nil, err
	}
	files := []string{caCert, caKey}

	issue := func(name, base string, hosts ...string) error {
		issued, err := ca.Issue(name, hosts...)
		if err != nil {
			return fmt.Errorf("issue %s: %w", name, err)
		}
		certPath := filepath.Join(dir, base+".pem")
		keyPath := filepath.Join(dir, base+".key")
		if err := issued.WriteFiles(certPath, keyPath); err != nil {
			return err
		}
		files = append(files, certPath, keyPath)
		return nil
	}

	if err := issue(serverName, "server", serverHosts...); err != nil {
		return nil, err
	}
	if err := issue(clientName, "client"); err != nil {
		return nil, err
	}
	return files, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
