package cli

import (
	"github.com/charmbracelet/log"
)

// logHooks reports layout and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLayoutCreated(view string) {
	h.logger.Debug("layout created", "view", view)
}

func (h *logHooks) OnLayoutRemoved(view string, constraints int) {
	h.logger.Debug("layout removed", "view", view, "constraints", constraints)
}

func (h *logHooks) OnConstraintAdded(view, attribute string) {
	h.logger.Debug("constraint added", "view", view, "attribute", attribute)
}

func (h *logHooks) OnConstraintRebuilt(view, attribute, field string, active bool) {
	h.logger.Debug("constraint rebuilt", "view", view, "attribute", attribute, "field", field, "active", active)
}

func (h *logHooks) OnCacheHit(cache string)    { h.logger.Debug("cache hit", "cache", cache) }
func (h *logHooks) OnCacheMiss(cache string)   { h.logger.Debug("cache miss", "cache", cache) }
func (h *logHooks) OnCacheSet(cache string)    { h.logger.Debug("cache set", "cache", cache) }
func (h *logHooks) OnCacheRemove(cache string) { h.logger.Debug("cache remove", "cache", cache) }
