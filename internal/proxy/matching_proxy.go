package proxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"talentswipe_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// MatchingProxy forwards /candidates/* traffic to the external
// candidate-matching service, rewriting the path prefix. No retry, no
// circuit breaking: the upstream owns its own availability story.
type MatchingProxy struct {
	target *url.URL
	proxy  *httputil.ReverseProxy
}

func NewMatchingProxy(host string, port int) (*MatchingProxy, error) {
	target, err := url.Parse(fmt.Sprintf("http://%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("invalid matching service address: %w", err)
	}

	rp := httputil.NewSingleHostReverseProxy(target)

	director := rp.Director
	rp.Director = func(req *http.Request) {
		director(req)
		// Mounted under /candidates; upstream expects the same prefix, so
		// strip only the gin group segment duplication if present.
		if !strings.HasPrefix(req.URL.Path, "/candidates") {
			req.URL.Path = "/candidates" + req.URL.Path
		}
		req.Host = target.Host
	}

	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.CtxWithError(r.Context(), "matching service proxy error", err, "path", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error":{"code":"EXTERNAL_SERVICE_ERROR","domain":"matching","message":%q}}`, err.Error())
	}

	return &MatchingProxy{target: target, proxy: rp}, nil
}

// Handler adapts the proxy to a gin route. The route is registered as
// /candidates/*proxyPath so the wildcard carries the upstream path.
func (p *MatchingProxy) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.URL.Path = "/candidates" + c.Param("proxyPath")
		p.proxy.ServeHTTP(c.Writer, c.Request)
	}
}
