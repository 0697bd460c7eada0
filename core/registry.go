package core

import (
	"fmt"
	"sync"

	goerrors "github.com/goliatone/go-errors"
)

// ClientRegistry owns one lazily-built backend client handle per domain.
// The first GetClient for a domain dials it through the injected factory;
// every later call returns the same handle for the process lifetime. A
// failed build is returned to the caller and never retried; the registry
// has no degraded mode and no cross-domain coupling.
type ClientRegistry struct {
	mu      sync.RWMutex
	config  Config
	factory ClientFactory
	clients map[Domain]BackendClient
}

func NewClientRegistry(cfg Config, factory ClientFactory) *ClientRegistry {
	return &ClientRegistry{
		config:  cfg,
		factory: factory,
		clients: map[Domain]BackendClient{},
	}
}

func (r *ClientRegistry) GetClient(domain Domain) (BackendClient, error) {
	if r == nil {
		return nil, registryError("core: client registry is nil", goerrors.CategoryInternal, GatewayErrorInternal)
	}
	domain = normalizeDomain(domain)
	if !domain.Known() {
		return nil, registryError(
			fmt.Sprintf("core: unknown backend domain %q", domain),
			goerrors.CategoryNotFound,
			GatewayErrorDomainUnknown,
		)
	}

	r.mu.RLock()
	client, ok := r.clients[domain]
	r.mu.RUnlock()
	if ok {
		return client, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if client, ok := r.clients[domain]; ok {
		return client, nil
	}
	if r.factory == nil {
		return nil, registryError("core: client factory is required", goerrors.CategoryInternal, GatewayErrorInternal)
	}
	client, err := r.factory(domain, r.config.AddressFor(domain))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal,
			fmt.Sprintf("core: client build failed for domain %q", domain)).
			WithTextCode(GatewayErrorClientBuild).
			WithMetadata(map[string]any{"domain": string(domain), "address": r.config.AddressFor(domain)})
	}
	if client == nil {
		return nil, registryError(
			fmt.Sprintf("core: client factory returned nil for domain %q", domain),
			goerrors.CategoryInternal,
			GatewayErrorClientBuild,
		)
	}
	r.clients[domain] = client
	return client, nil
}

// Domains lists the domains with an established handle, for introspection.
func (r *ClientRegistry) Domains() []Domain {
	if r == nil {
		return []Domain{}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Domain, 0, len(r.clients))
	for _, domain := range domainOrder {
		if _, ok := r.clients[domain]; ok {
			out = append(out, domain)
		}
	}
	return out
}

func registryError(message string, category goerrors.Category, textCode string) error {
	return ensureGatewayErrorEnvelope(
		goerrors.New(message, category).WithTextCode(textCode),
	)
}
