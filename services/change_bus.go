package services

import (
	"github.com/armetcal/Meal-Tracker/cache"
	"github.com/armetcal/Meal-Tracker/utils"

	"go.uber.org/zap"
)

// ChangeBus announces every successful write: subscribed websocket clients
// get a table.changed event, cached progress/calendar views are invalidated,
// and the per-table write counter is bumped. A nil bus or nil hub is a no-op.
type ChangeBus struct {
	hub    *RealtimeHub
	logger *zap.Logger
}

func NewChangeBus(hub *RealtimeHub, logger *zap.Logger) *ChangeBus {
	return &ChangeBus{hub: hub, logger: logger}
}

type ChangeEvent struct {
	Kind   string `json:"kind"` // always "table.changed"
	Table  string `json:"table"`
	Action string `json:"action"` // created|updated|deleted
	Record any    `json:"record,omitempty"`
}

func (b *ChangeBus) Notify(table, action string, record any) {
	if b == nil {
		return
	}
	utils.TableWrites.WithLabelValues(table, action).Inc()

	// Any write to any of the three tables can change any computed view.
	if cache.Enabled() {
		if err := cache.DeletePattern("view:*"); err != nil && b.logger != nil {
			b.logger.Warn("view_cache_invalidation_failed", zap.Error(err))
		}
	}

	if b.hub != nil {
		b.hub.Broadcast(table, ChangeEvent{
			Kind:   "table.changed",
			Table:  table,
			Action: action,
			Record: record,
		})
	}
	if b.logger != nil {
		b.logger.Info("table_changed",
			zap.String("table", table),
			zap.String("action", action),
		)
	}
}
