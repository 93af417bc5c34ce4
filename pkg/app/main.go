package app

import (
	"github.com/gorilla/sessions"

	"github.com/Lslreddy/surplus-to-success/pkg/cache"
	"github.com/Lslreddy/surplus-to-success/pkg/config"
	"github.com/Lslreddy/surplus-to-success/pkg/database"
	"github.com/Lslreddy/surplus-to-success/pkg/events"
	"github.com/Lslreddy/surplus-to-success/pkg/logger"
	"github.com/Lslreddy/surplus-to-success/pkg/storage"
	"github.com/Lslreddy/surplus-to-success/pkg/workflows"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route registration during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "donation claimed", "donation_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Cfg            *config.Config
	Db             *database.Database
	Logger         logger.Logger
	EventBus       *events.EventBus
	Redis          *cache.RedisClient
	Photos         *storage.PhotoStore     // nil in worker process
	TemporalClient *workflows.TemporalClient // nil when Temporal is not configured
	SessionStore   sessions.Store            // Redis-backed session store; nil in worker process
}
