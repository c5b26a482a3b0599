package store

import (
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/pkcs12"
)

// writeCredentialPEMs unpacks the base64 PKCS#12 client credential into
// certificate and key PEM files the database driver can read. The files
// are created private to the process user.
func writeCredentialPEMs(certB64, password string) (certPath, keyPath string, err error) {
	data, err := base64.StdEncoding.DecodeString(certB64)
	if err != nil {
		return "", "", fmt.Errorf("credential is not valid base64: %w", err)
	}

	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return "", "", fmt.Errorf("credential could not be unlocked: %w", err)
	}

	var certs, keys []byte
	for _, block := range blocks {
		encoded := pem.EncodeToMemory(block)
		if block.Type == "CERTIFICATE" {
			certs = append(certs, encoded...)
		} else if strings.Contains(block.Type, "PRIVATE KEY") {
			keys = append(keys, encoded...)
		}
	}
	if len(certs) == 0 || len(keys) == 0 {
		return "", "", fmt.Errorf("credential is missing a certificate or private key")
	}

	certPath, err = writePrivateFile("strife-cert-*.pem", certs)
	if err != nil {
		return "", "", err
	}
	keyPath, err = writePrivateFile("strife-key-*.pem", keys)
	if err != nil {
		return "", "", err
	}
	return certPath, keyPath, nil
}

func writePrivateFile(pattern string, data []byte) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := f.Chmod(0o600); err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return f.Name(), nil
}
