// Package effects builds the configured backdrop for any host.
package effects

import (
	"fmt"

	"github.com/iburimskiy/folio/internal/backdrop"
	"github.com/iburimskiy/folio/internal/backdrop/network"
	"github.com/iburimskiy/folio/internal/backdrop/stars"
	"github.com/iburimskiy/folio/internal/config"
)

// New returns the effect named by cfg.Backdrop, seeded from cfg.Seed.
func New(cfg *config.Config) (backdrop.Effect, error) {
	src := backdrop.NewSource(cfg.Seed)
	switch cfg.Backdrop {
	case config.BackdropStars:
		return stars.New(stars.Options{
			Density:  cfg.Stars.Density,
			MinCount: cfg.Stars.Min,
			MaxCount: cfg.Stars.Max,
		}, src), nil
	case config.BackdropNetwork:
		return network.New(network.Options{
			Count:   cfg.Network.Count,
			Attract: cfg.Network.Attract,
		}, src), nil
	}
	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackdrop, cfg.Backdrop)
}
