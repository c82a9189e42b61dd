package vault

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gin-gonic/gin"
)

func TestLoadCredentials_BootstrapOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	creds, err := LoadCredentials(path, DefaultProviders(), zap.NewNop())
	require.NoError(t, err)

	// Placeholders for every known provider.
	assert.Equal(t, CredentialSet{"openai": "", "anthropic": "", "gemini": ""}, creds)

	// The store was written so the operator can fill it in.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]string
	require.NoError(t, sonic.Unmarshal(raw, &onDisk))
	assert.Len(t, onDisk, 3)
}

func TestLoadCredentials_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"openai":"sk-live","anthropic":""}`), 0o600))

	creds, err := LoadCredentials(path, DefaultProviders(), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "sk-live", creds["openai"])
	assert.Equal(t, map[string]bool{"openai": true, "anthropic": false}, creds.Loaded())
}

func TestLoadCredentials_UnreadableIsFatal(t *testing.T) {
	// A directory at the store path is unreadable as a file.
	dir := t.TempDir()
	_, err := LoadCredentials(dir, DefaultProviders(), zap.NewNop())
	assert.Error(t, err)
}

func TestLoadProviders_Defaults(t *testing.T) {
	providers, err := LoadProviders("")
	require.NoError(t, err)
	require.Len(t, providers, 3)

	byName := map[string]Provider{}
	for _, p := range providers {
		byName[p.Name] = p
	}
	assert.Equal(t, "Authorization", byName["openai"].CredentialHeader)
	assert.Equal(t, SchemeBearer, byName["openai"].CredentialScheme)
	assert.Equal(t, "x-api-key", byName["anthropic"].CredentialHeader)
	assert.Equal(t, "x-goog-api-key", byName["gemini"].CredentialHeader)
}

func TestLoadProviders_OverrideAndAppend(t *testing.T) {
	overrides := []Provider{
		{Name: "openai", PathPrefix: "/openai", UpstreamOrigin: "https://proxy.internal", CredentialHeader: "Authorization", CredentialScheme: SchemeBearer},
		{Name: "stability", PathPrefix: "/stability", UpstreamOrigin: "https://api.stability.ai", CredentialHeader: "Authorization", CredentialScheme: SchemeBearer},
	}
	raw, err := yaml.Marshal(overrides)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	providers, err := LoadProviders(path)
	require.NoError(t, err)
	require.Len(t, providers, 4)

	assert.Equal(t, "openai", providers[0].Name, "override must keep position")
	assert.Equal(t, "https://proxy.internal", providers[0].UpstreamOrigin)
	assert.Equal(t, "stability", providers[3].Name)
}

func TestLoadProviders_RejectsBadDescriptor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: broken\n  path_prefix: nope\n"), 0o644))

	_, err := LoadProviders(path)
	assert.Error(t, err)
}

type captured struct {
	path   string
	header http.Header
}

func newUpstream(t *testing.T) (*httptest.Server, *captured) {
	t.Helper()
	seen := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.path = r.URL.Path
		seen.header = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(ts.Close)
	return ts, seen
}

func TestProxy_InjectsBearerCredential(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts, seen := newUpstream(t)

	providers := []Provider{{
		Name: "openai", PathPrefix: "/openai", UpstreamOrigin: ts.URL,
		CredentialHeader: "Authorization", CredentialScheme: SchemeBearer,
	}}
	r, err := NewRouter(providers, CredentialSet{"openai": "sk-real"}, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/openai/v1/models", nil)
	req.Header.Set("Authorization", "Bearer vault-placeholder")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v1/models", seen.path, "provider prefix must be stripped")
	assert.Equal(t, "Bearer sk-real", seen.header.Get("Authorization"), "placeholder must be overwritten")
}

func TestProxy_InjectsRawHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts, seen := newUpstream(t)

	providers := []Provider{{
		Name: "anthropic", PathPrefix: "/anthropic", UpstreamOrigin: ts.URL,
		CredentialHeader: "x-api-key", CredentialScheme: SchemeRaw,
	}}
	r, err := NewRouter(providers, CredentialSet{"anthropic": "ant-real"}, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/anthropic/v1/messages", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "/v1/messages", seen.path)
	assert.Equal(t, "ant-real", seen.header.Get("x-api-key"))
}

func TestProxy_MissingCredentialStillForwards(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts, seen := newUpstream(t)

	providers := []Provider{{
		Name: "gemini", PathPrefix: "/gemini", UpstreamOrigin: ts.URL,
		CredentialHeader: "x-goog-api-key", CredentialScheme: SchemeRaw,
	}}
	r, err := NewRouter(providers, CredentialSet{}, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/gemini/v1beta/models")
	require.NoError(t, err)
	defer resp.Body.Close()

	// Forwarded, not rejected locally; the upstream decides the auth outcome.
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/v1beta/models", seen.path)
	assert.Empty(t, seen.header.Get("x-goog-api-key"))
}

func TestIntrospection_NamesOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, err := NewRouter(DefaultProviders(), CredentialSet{"openai": "sk-secret-value", "anthropic": ""}, zap.NewNop())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var status StatusResp
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.Providers["openai"])
	assert.False(t, status.Providers["anthropic"])
	assert.NotContains(t, w.Body.String(), "sk-secret-value")
}
