// Package server provides the listeners the gRPC server runs on.
package server

import (
	"crypto/tls"
	"fmt"
	"net"

	"github.com/dtroode/auth-service/internal/model"
)

var (
	_ model.SecurityLayer = (*TLSListener)(nil)
	_ model.SecurityLayer = (*PlainListener)(nil)
)

// TLSListener opens TLS listeners with a certificate loaded at construction.
type TLSListener struct {
	config *tls.Config
}

// NewTLSListener loads the key pair so a bad certificate fails at startup.
func NewTLSListener(certFile, keyFile string) (*TLSListener, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return &TLSListener{
		config: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
			NextProtos:   []string{"h2"},
		},
	}, nil
}

func (l *TLSListener) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := tls.Listen(protocol, addr, l.config)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}

// PlainListener opens unencrypted listeners.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(protocol, addr string) (net.Listener, error) {
	ln, err := net.Listen(protocol, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}
