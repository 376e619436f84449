package config

import (
	"sync"
	"sync/atomic"

	"github.com/benlindsay/gatsby-site/config/site"
)

var (
	global atomic.Pointer[site.SiteConfig]
	once   sync.Once
)

// SetGlobal installs the process-wide config. Only the first call has effect.
func SetGlobal(cfg site.SiteConfig) {
	once.Do(func() {
		c := cfg.Clone()
		global.Store(&c)
	})
}

// Global returns a copy of the process-wide config; mutating it does not
// affect other readers. Safe to call from any goroutine.
func Global() site.SiteConfig {
	cfg := global.Load()
	if cfg == nil {
		panic("config not initialized")
	}
	return cfg.Clone()
}
