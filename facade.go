// Package gateway is the composition root for the dispatch and translation
// layer: it resolves configuration, owns the backend client registry, and
// exposes one resolver set per backend domain.
package gateway

import (
	"context"

	"github.com/goliatone/go-gateway/authn"
	"github.com/goliatone/go-gateway/cards"
	"github.com/goliatone/go-gateway/chat"
	"github.com/goliatone/go-gateway/core"
	"github.com/goliatone/go-gateway/feedback"
	"github.com/goliatone/go-gateway/pharaohs"
	"github.com/goliatone/go-gateway/progress"
	"github.com/goliatone/go-gateway/quizzes"
	"github.com/goliatone/go-gateway/resolver"
	"github.com/goliatone/go-gateway/templates"
	"github.com/goliatone/go-gateway/transactions"
	"github.com/goliatone/go-gateway/transport"
	"github.com/goliatone/go-gateway/uploads"
	"github.com/goliatone/go-gateway/users"
	"github.com/goliatone/go-gateway/wallets"
)

// Resolvers is the full per-domain resolver set.
type Resolvers struct {
	Users        *users.Resolver
	Auth         *authn.Resolver
	Cards        *cards.Resolver
	Wallets      *wallets.Resolver
	Transactions *transactions.Resolver
	Chat         *chat.Resolver
	Pharaohs     *pharaohs.Resolver
	Templates    *templates.Resolver
	Quizzes      *quizzes.Resolver
	Feedback     *feedback.Resolver
	Progress     *progress.Resolver
	Uploads      *uploads.Resolver
}

// Facade owns the backend client registry and the domain resolvers built on
// top of it.
type Facade struct {
	config    core.Config
	registry  *core.ClientRegistry
	logger    core.Logger
	metrics   core.MetricsRecorder
	resolvers Resolvers
}

type FacadeOption func(*facadeOptions)

type facadeOptions struct {
	logger         core.Logger
	loggerProvider core.LoggerProvider
	metrics        core.MetricsRecorder
	httpClient     transport.HTTPDoer
	factory        core.ClientFactory
	provider       core.ConfigProvider
	optsResolver   core.OptionsResolver
	runtime        core.Config
}

func WithLogger(logger core.Logger) FacadeOption {
	return func(options *facadeOptions) {
		options.logger = logger
	}
}

func WithLoggerProvider(provider core.LoggerProvider) FacadeOption {
	return func(options *facadeOptions) {
		options.loggerProvider = provider
	}
}

func WithMetricsRecorder(metrics core.MetricsRecorder) FacadeOption {
	return func(options *facadeOptions) {
		options.metrics = metrics
	}
}

// WithHTTPClient sets the HTTP client used by the default backend client
// factory. Ignored when WithClientFactory is also supplied.
func WithHTTPClient(client transport.HTTPDoer) FacadeOption {
	return func(options *facadeOptions) {
		options.httpClient = client
	}
}

// WithClientFactory replaces how backend handles are built; tests use this
// to hand the registry fake clients.
func WithClientFactory(factory core.ClientFactory) FacadeOption {
	return func(options *facadeOptions) {
		options.factory = factory
	}
}

func WithConfigProvider(provider core.ConfigProvider) FacadeOption {
	return func(options *facadeOptions) {
		options.provider = provider
	}
}

func WithOptionsResolver(optsResolver core.OptionsResolver) FacadeOption {
	return func(options *facadeOptions) {
		options.optsResolver = optsResolver
	}
}

// WithRuntimeConfig supplies the highest-precedence configuration layer.
func WithRuntimeConfig(runtime core.Config) FacadeOption {
	return func(options *facadeOptions) {
		options.runtime = runtime
	}
}

// DefaultClientFactory dials domains with the JSON-over-HTTP transport
// client. A nil httpClient uses the transport default.
func DefaultClientFactory(httpClient transport.HTTPDoer) core.ClientFactory {
	return func(domain core.Domain, address string) (core.BackendClient, error) {
		var options []transport.Option
		if httpClient != nil {
			options = append(options, transport.WithHTTPClient(httpClient))
		}
		return transport.NewClient(domain, address, options...), nil
	}
}

// NewFacade resolves configuration through the defaults/config/env/runtime
// pipeline and wires every domain resolver against one shared registry.
func NewFacade(ctx context.Context, opts ...FacadeOption) (*Facade, error) {
	cfg := facadeOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	resolved, err := core.ResolveConfig(ctx, cfg.provider, cfg.optsResolver, cfg.runtime)
	if err != nil {
		return nil, err
	}

	_, logger := core.ResolveLogger("gateway", cfg.loggerProvider, cfg.logger)
	metrics := cfg.metrics
	if metrics == nil {
		metrics = core.NopMetricsRecorder{}
	}

	factory := cfg.factory
	if factory == nil {
		factory = DefaultClientFactory(cfg.httpClient)
	}
	registry := core.NewClientRegistry(resolved, factory)

	res := resolver.Resources{
		Registry: registry,
		Logger:   logger,
		Metrics:  metrics,
	}
	facade := &Facade{
		config:   resolved,
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		resolvers: Resolvers{
			Users:        users.NewResolver(res),
			Auth:         authn.NewResolver(res),
			Cards:        cards.NewResolver(res),
			Wallets:      wallets.NewResolver(res),
			Transactions: transactions.NewResolver(res),
			Chat:         chat.NewResolver(res),
			Pharaohs:     pharaohs.NewResolver(res),
			Templates:    templates.NewResolver(res),
			Quizzes:      quizzes.NewResolver(res),
			Feedback:     feedback.NewResolver(res),
			Progress:     progress.NewResolver(res),
			Uploads:      uploads.NewResolver(res),
		},
	}
	return facade, nil
}

func (f *Facade) Resolvers() Resolvers {
	if f == nil {
		return Resolvers{}
	}
	return f.resolvers
}

func (f *Facade) Registry() *core.ClientRegistry {
	if f == nil {
		return nil
	}
	return f.registry
}

func (f *Facade) Config() core.Config {
	if f == nil {
		return core.Config{}
	}
	return f.config
}
