package vault

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Credential injection schemes.
const (
	SchemeBearer = "bearer" // header value is "Bearer <secret>"
	SchemeRaw    = "raw"    // header value is the bare secret
)

// Provider describes one upstream: where requests under its prefix go and
// how its credential is attached. Adding a provider is a data change.
type Provider struct {
	Name             string `yaml:"name"`
	PathPrefix       string `yaml:"path_prefix"`
	UpstreamOrigin   string `yaml:"upstream_origin"`
	CredentialHeader string `yaml:"credential_header"`
	CredentialScheme string `yaml:"credential_scheme"`
}

// DefaultProviders returns the built-in descriptor table.
func DefaultProviders() []Provider {
	return []Provider{
		{
			Name:             "openai",
			PathPrefix:       "/openai",
			UpstreamOrigin:   "https://api.openai.com",
			CredentialHeader: "Authorization",
			CredentialScheme: SchemeBearer,
		},
		{
			Name:             "anthropic",
			PathPrefix:       "/anthropic",
			UpstreamOrigin:   "https://api.anthropic.com",
			CredentialHeader: "x-api-key",
			CredentialScheme: SchemeRaw,
		},
		{
			Name:             "gemini",
			PathPrefix:       "/gemini",
			UpstreamOrigin:   "https://generativelanguage.googleapis.com",
			CredentialHeader: "x-goog-api-key",
			CredentialScheme: SchemeRaw,
		},
	}
}

// LoadProviders merges an optional YAML override file into the defaults.
// An override with a known name replaces that descriptor; a new name is
// appended. An empty path returns the defaults unchanged.
func LoadProviders(path string) ([]Provider, error) {
	providers := DefaultProviders()
	if path == "" {
		return providers, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read providers file %s: %w", path, err)
	}

	var overrides []Provider
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("parse providers file %s: %w", path, err)
	}

	for _, o := range overrides {
		if err := validateProvider(o); err != nil {
			return nil, fmt.Errorf("providers file %s: %w", path, err)
		}
		replaced := false
		for i := range providers {
			if providers[i].Name == o.Name {
				providers[i] = o
				replaced = true
				break
			}
		}
		if !replaced {
			providers = append(providers, o)
		}
	}
	return providers, nil
}

func validateProvider(p Provider) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("provider with empty name")
	case p.PathPrefix == "" || p.PathPrefix[0] != '/':
		return fmt.Errorf("provider %s: path_prefix must start with /", p.Name)
	case p.UpstreamOrigin == "":
		return fmt.Errorf("provider %s: upstream_origin is required", p.Name)
	case p.CredentialHeader == "":
		return fmt.Errorf("provider %s: credential_header is required", p.Name)
	case p.CredentialScheme != SchemeBearer && p.CredentialScheme != SchemeRaw:
		return fmt.Errorf("provider %s: credential_scheme must be %s or %s", p.Name, SchemeBearer, SchemeRaw)
	}
	return nil
}
