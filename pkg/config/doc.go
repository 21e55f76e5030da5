// Package config holds the configuration consumed by the mqoq transport core.
//
// A Config carries the optional mutual-TLS material, the listen and connect
// addresses and the QUIC tuning knobs. Configuration is loaded from YAML:
//
//	listen: "127.0.0.1:4433"
//	connect:
//	  bind: "127.0.0.1:0"
//	  peer: "127.0.0.1:4433"
//	  server_name: "broker.local"
//	auth:
//	  cert_file: /etc/mqoq/client.pem
//	  key_file: /etc/mqoq/client.key
//	  ca_cert_file: /etc/mqoq/ca.pem
//	transport:
//	  alpn: ["mqtt"]
//	  handshake_idle_timeout: 5s
//	  max_idle_timeout: 30s
//	  keep_alive_period: 10s
//	  max_incoming_streams: 1000
//	log:
//	  level: info
//	  protocol_file: /var/log/mqoq/node.mlog
//
// The auth section is all-or-nothing: either all three paths are given or
// the section is omitted entirely.
package config
