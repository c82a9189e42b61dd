// Package vault implements the credential-injecting reverse proxy. It holds
// the real provider keys so the gallery process never has to; callers reach
// providers through per-provider path prefixes and the vault rewrites the
// request and injects the credential on the way out.
package vault

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

// CredentialSet maps provider name to secret. Loaded once at startup and
// never mutated afterwards.
type CredentialSet map[string]string

// LoadCredentials reads the credential store. A missing file is first-run
// bootstrap, not a failure: the store is created with empty placeholders for
// every known provider so the operator can fill it in. Any other read or
// write error is fatal to the caller.
func LoadCredentials(path string, providers []Provider, log *zap.Logger) (CredentialSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read credential store %s: %w", path, err)
		}
		return bootstrapCredentials(path, providers, log)
	}

	var creds CredentialSet
	if err := sonic.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("parse credential store %s: %w", path, err)
	}
	return creds, nil
}

func bootstrapCredentials(path string, providers []Provider, log *zap.Logger) (CredentialSet, error) {
	creds := CredentialSet{}
	for _, p := range providers {
		creds[p.Name] = ""
	}

	out, err := sonic.MarshalIndent(creds, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal credential store: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return nil, fmt.Errorf("create credential store %s: %w", path, err)
	}

	log.Warn("credential store not found, created with empty placeholders",
		zap.String("path", path))
	return creds, nil
}

// Loaded reports which providers have a non-empty credential. Names only.
func (c CredentialSet) Loaded() map[string]bool {
	out := make(map[string]bool, len(c))
	for name, secret := range c {
		out[name] = secret != ""
	}
	return out
}
