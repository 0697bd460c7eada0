package core

import (
	"fmt"
	"strings"
)

type Config struct {
	ServiceName string            `koanf:"service_name" mapstructure:"service_name"`
	Addresses   map[string]string `koanf:"addresses" mapstructure:"addresses"`
}

func DefaultConfig() Config {
	addresses := make(map[string]string, len(domainOrder))
	for _, domain := range domainOrder {
		addresses[string(domain)] = domain.DefaultAddress()
	}
	return Config{
		ServiceName: "gateway",
		Addresses:   addresses,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	for domain, address := range c.Addresses {
		if !Domain(domain).Known() {
			return fmt.Errorf("core: unknown domain %q in addresses", domain)
		}
		if strings.TrimSpace(address) == "" {
			return fmt.Errorf("core: address for domain %q is empty", domain)
		}
	}
	return nil
}

// AddressFor resolves the configured address for a domain, falling back to
// the hard-coded default when the configuration carries no entry.
func (c Config) AddressFor(domain Domain) string {
	domain = normalizeDomain(domain)
	if address := strings.TrimSpace(c.Addresses[string(domain)]); address != "" {
		return address
	}
	return domain.DefaultAddress()
}
