// Package provider manages the available content providers.
package provider

import (
	"github.com/zaisan-cli/zaisan/provider/zaimanhua"
	"github.com/zaisan-cli/zaisan/source"
)

// Provider represents a content source provider.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   zaimanhua.SourceID,
			Name: zaimanhua.Name,
			CreateSource: func() (source.Source, error) {
				return zaimanhua.New(), nil
			},
		},
	}
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Default returns the provider used when none is named explicitly.
func Default() *Provider {
	return Builtins()[0]
}
