package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/digisolai/digisol.ai-sub002/internal/config"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization, X-Requested-With"
)

// Proxy repassa qualquer método sob o prefixo montado para a API remota
type Proxy struct {
	target    *url.URL
	mountPath string
	reverse   *httputil.ReverseProxy
}

func NewProxy(cfg *config.Config) (*Proxy, error) {
	return New(cfg.Backend.BaseURL, cfg.Proxy.MountPath, cfg.Backend.Timeout)
}

func New(baseURL, mountPath string, timeout time.Duration) (*Proxy, error) {
	target, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("proxy: invalid backend url %q: %w", baseURL, err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("proxy: backend url %q must be absolute", baseURL)
	}

	p := &Proxy{
		target:    target,
		mountPath: "/" + strings.Trim(mountPath, "/"),
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if timeout > 0 {
		transport.ResponseHeaderTimeout = timeout
	}

	p.reverse = &httputil.ReverseProxy{
		Rewrite:        p.rewrite,
		Transport:      transport,
		ModifyResponse: p.modifyResponse,
		ErrorHandler:   p.handleError,
	}

	return p, nil
}

func (p *Proxy) MountPath() string {
	return p.mountPath
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		setCORSHeaders(w.Header())
		w.WriteHeader(http.StatusOK)
		return
	}

	p.reverse.ServeHTTP(w, r)
}

// rewrite remove o prefixo montado e mantém a query; hop-by-hop já é removido pelo ReverseProxy
func (p *Proxy) rewrite(pr *httputil.ProxyRequest) {
	path := p.stripPrefix(pr.In.URL.Path)

	pr.Out.URL.Scheme = p.target.Scheme
	pr.Out.URL.Host = p.target.Host
	pr.Out.URL.Path = p.target.Path + path
	pr.Out.URL.RawPath = ""
	pr.Out.URL.RawQuery = pr.In.URL.RawQuery
	pr.Out.Host = p.target.Host

	logrus.WithFields(logrus.Fields{
		"method": pr.In.Method,
		"target": pr.Out.URL.String(),
	}).Debug("proxy: forwarding request")
}

func (p *Proxy) stripPrefix(path string) string {
	if p.mountPath != "/" {
		path = strings.TrimPrefix(path, p.mountPath)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (p *Proxy) modifyResponse(resp *http.Response) error {
	setCORSHeaders(resp.Header)
	return nil
}

func (p *Proxy) handleError(w http.ResponseWriter, r *http.Request, err error) {
	logrus.WithError(err).WithField("path", r.URL.Path).Error("proxy: backend unreachable")

	setCORSHeaders(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadGateway)

	body := map[string]string{
		"detail": "backend unavailable",
		"error":  err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(body); encodeErr != nil {
		logrus.WithError(encodeErr).Warn("proxy: failed to encode error response")
	}
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", corsAllowMethods)
	h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
}
