package app

import (
	"github.com/nagy135/convex-game-of-life/internal/core"
	"github.com/nagy135/convex-game-of-life/internal/engine"
	_ "github.com/nagy135/convex-game-of-life/internal/store/memory"
	_ "github.com/nagy135/convex-game-of-life/internal/store/snapshot"
)

// OpenEngine opens the configured store and builds an engine over it. The
// -set overrides feed both the store and the engine.
func OpenEngine(cfg *Config) (*engine.Engine, error) {
	opts := cfg.Options()
	st, err := core.OpenStore(cfg.Store, opts)
	if err != nil {
		return nil, err
	}
	return engine.New(st, engine.FromMap(opts)), nil
}
