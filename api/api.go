// Package api implements the classification HTTP API server.
package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/netip"

	v1 "github.com/academe-go/academe/api/v1"
	"github.com/academe-go/academe/classifier"
	"github.com/academe-go/academe/dataset"
	"github.com/academe-go/academe/jsoncfg"
	"github.com/academe-go/academe/prefixset"
	"github.com/academe-go/academe/stats"
	"github.com/database64128/tfo-go/v2"
	"github.com/gofiber/contrib/fiberzap"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"go.uber.org/zap"
	"go4.org/netipx"
)

// Config stores the configuration for the classification API.
type Config struct {
	// Enabled controls whether the API server is enabled.
	Enabled bool `json:"enabled"`

	// Listen is the address to listen on.
	Listen string `json:"listen"`

	// FastOpen enables TCP Fast Open on the listener.
	FastOpen bool `json:"fastOpen"`

	// ReadTimeout is the amount of time allowed to read the full request.
	// If zero, reads do not time out.
	ReadTimeout jsoncfg.Duration `json:"readTimeout"`

	// WriteTimeout is the maximum duration before timing out response writes.
	// If zero, writes do not time out.
	WriteTimeout jsoncfg.Duration `json:"writeTimeout"`

	// IdleTimeout is how long a keep-alive connection may sit idle.
	// If zero, idle connections are kept open indefinitely.
	IdleTimeout jsoncfg.Duration `json:"idleTimeout"`

	// CertFile and KeyFile are the paths to the server certificate and
	// private key. TLS is enabled when CertFile is set.
	CertFile string `json:"certFile"`
	KeyFile  string `json:"keyFile"`

	// EnableTrustedProxyCheck enables trusted proxy checks.
	EnableTrustedProxyCheck bool `json:"enableTrustedProxyCheck"`

	// TrustedProxies is the list of trusted proxies.
	// This only takes effect if EnableTrustedProxyCheck is true.
	TrustedProxies []string `json:"trustedProxies"`

	// ProxyHeader is the header used to determine the client's IP address.
	// If empty, the remote peer's address is used.
	ProxyHeader string `json:"proxyHeader"`

	// ClientAllowlistPath is the path to a prefix list file restricting
	// client addresses. If empty, all clients are allowed.
	ClientAllowlistPath string `json:"clientAllowlistPath"`

	// DebugPprof enables pprof endpoints for debugging and profiling.
	DebugPprof bool `json:"debugPprof"`

	// SecretPath adds a secret path prefix to all endpoints.
	// If empty, no secret path is added.
	SecretPath string `json:"secretPath"`

	// StaticPath is the path where static files are served from.
	// If empty, static file serving is disabled.
	StaticPath string `json:"staticPath"`
}

// Server returns an API server from the config.
func (c *Config) Server(logger *zap.Logger, cl *classifier.Classifier, ds *dataset.Dataset, sc stats.Collector) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:                 "academed",
		DisableStartupMessage:   true,
		ReadTimeout:             c.ReadTimeout.Value(),
		WriteTimeout:            c.WriteTimeout.Value(),
		IdleTimeout:             c.IdleTimeout.Value(),
		EnableTrustedProxyCheck: c.EnableTrustedProxyCheck,
		TrustedProxies:          c.TrustedProxies,
		ProxyHeader:             c.ProxyHeader,
	})

	app.Use(fiberzap.New(fiberzap.Config{Logger: logger}))

	if c.ClientAllowlistPath != "" {
		allowedClients, err := prefixset.Config{Path: c.ClientAllowlistPath}.IPSet()
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded API client allowlist",
			zap.String("path", c.ClientAllowlistPath),
			zap.String("clients", prefixset.IPSetToText(allowedClients)),
		)
		app.Use(checkClientAddress(allowedClients))
	}

	if c.DebugPprof {
		app.Use(pprof.New(pprof.Config{Prefix: c.SecretPath}))
	}

	var router fiber.Router = app
	if c.SecretPath != "" {
		router = app.Group(c.SecretPath)
	}

	v1.Routes(router, cl, ds, sc)

	if c.StaticPath != "" {
		router.Static("/", c.StaticPath)
	}

	var tlsConfig *tls.Config
	if c.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(c.CertFile, c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load API server certificate: %w", err)
		}
		tlsConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
	}

	return &Server{
		logger:    logger,
		app:       app,
		listen:    c.Listen,
		fastOpen:  c.FastOpen,
		tlsConfig: tlsConfig,
	}, nil
}

// checkClientAddress rejects requests from clients outside the allowlist.
func checkClientAddress(allowedClients *netipx.IPSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clientAddr, err := netip.ParseAddr(c.IP())
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(&v1.StandardError{Message: "bad client address"})
		}
		if !allowedClients.Contains(clientAddr.Unmap()) {
			return c.Status(fiber.StatusForbidden).JSON(&v1.StandardError{Message: "client address not allowed"})
		}
		return c.Next()
	}
}

// Server is the classification API server.
type Server struct {
	logger    *zap.Logger
	app       *fiber.App
	listen    string
	fastOpen  bool
	tlsConfig *tls.Config
}

// String implements [service.Service.String].
func (s *Server) String() string {
	return "API server"
}

// Start starts the API server.
func (s *Server) Start(ctx context.Context) error {
	lc := tfo.ListenConfig{DisableTFO: !s.fastOpen}
	ln, err := lc.Listen(ctx, "tcp", s.listen)
	if err != nil {
		return err
	}

	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}

	go func() {
		if err := s.app.Listener(ln); err != nil {
			s.logger.Error("Failed to serve API", zap.Error(err))
		}
	}()

	s.logger.Info("Started API server", zap.Stringer("listenAddress", ln.Addr()))
	return nil
}

// Stop stops the API server.
func (s *Server) Stop() error {
	return s.app.Shutdown()
}
