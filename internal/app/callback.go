package app

import (
	"context"
	"path/filepath"

	"github.com/hotpatchkit/dexopt/internal/core/domain"
	"github.com/hotpatchkit/dexopt/internal/core/ports"
	"go.trai.ch/zerr"
)

// progressCallback bridges optimizer lifecycle events onto the telemetry
// session and the logger. The optimizer runs modules strictly sequentially,
// so at most one vertex is open at a time and no locking is needed.
type progressCallback struct {
	ctx       context.Context
	telemetry ports.Telemetry
	logger    ports.Logger
	open      map[string]ports.Vertex
}

func newProgressCallback(ctx context.Context, tel ports.Telemetry, log ports.Logger) *progressCallback {
	return &progressCallback{
		ctx:       ctx,
		telemetry: tel,
		logger:    log,
		open:      map[string]ports.Vertex{},
	}
}

func (c *progressCallback) OnStart(module domain.CodeModule, targetDir string) {
	_, vertex := c.telemetry.Record(c.ctx, filepath.Base(module.Path))
	c.open[module.Path] = vertex
	c.logger.Info("optimizing " + module.Path + " into " + targetDir)
}

func (c *progressCallback) OnSuccess(module domain.CodeModule, _ string, outcome domain.Outcome) {
	if vertex, found := c.open[module.Path]; found {
		if outcome.Status == domain.StatusSkipped {
			vertex.Cached()
		}
		vertex.Complete(nil)
		delete(c.open, module.Path)
	}
	if outcome.Status == domain.StatusSkipped {
		c.logger.Info("skipped " + module.Path + ": " + outcome.Reason)
		return
	}
	c.logger.Info("optimized " + module.Path + " -> " + outcome.ArtifactPath)
}

func (c *progressCallback) OnFailed(module domain.CodeModule, _ string, cause error) {
	if vertex, found := c.open[module.Path]; found {
		vertex.Complete(cause)
		delete(c.open, module.Path)
	}
	c.logger.Error(zerr.With(cause, "module", module.Path))
}
