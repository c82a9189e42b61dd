package vault

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StatusResp struct {
	Status    string          `json:"status"`
	Providers map[string]bool `json:"providers"`
}

// NewRouter builds the vault's gin engine: one forwarding route per
// provider plus the root introspection endpoint.
func NewRouter(providers []Provider, creds CredentialSet, log *zap.Logger) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	for _, p := range providers {
		h, err := newForwarder(p, creds[p.Name], log)
		if err != nil {
			return nil, err
		}
		if creds[p.Name] == "" {
			log.Warn("no credential configured, requests will be forwarded without injection",
				zap.String("provider", p.Name))
		}
		r.Any(p.PathPrefix+"/*path", h)
	}

	// Introspection: which credentials are loaded. Names only, never values.
	loaded := creds.Loaded()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, StatusResp{Status: "ok", Providers: loaded})
	})

	return r, nil
}

// newForwarder builds the single generic forwarding routine for one
// descriptor: strip the prefix, point the request at the upstream origin,
// inject the credential if one is configured. No retry, no timeout
// override; upstream latency and errors pass through unchanged. A missing
// credential still forwards, so the caller sees the provider's own auth
// error instead of a local one.
func newForwarder(p Provider, secret string, log *zap.Logger) (gin.HandlerFunc, error) {
	target, err := url.Parse(p.UpstreamOrigin)
	if err != nil {
		return nil, fmt.Errorf("provider %s: parse upstream origin: %w", p.Name, err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Scheme = target.Scheme
			pr.Out.URL.Host = target.Host
			pr.Out.Host = target.Host
			pr.Out.URL.Path = strings.TrimPrefix(pr.In.URL.Path, p.PathPrefix)
			if pr.Out.URL.Path == "" {
				pr.Out.URL.Path = "/"
			}

			if secret != "" {
				switch p.CredentialScheme {
				case SchemeBearer:
					pr.Out.Header.Set(p.CredentialHeader, "Bearer "+secret)
				default:
					pr.Out.Header.Set(p.CredentialHeader, secret)
				}
			}
		},
		ErrorHandler: func(w http.ResponseWriter, _ *http.Request, err error) {
			log.Error("upstream unreachable",
				zap.String("provider", p.Name),
				zap.Error(err))
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}
