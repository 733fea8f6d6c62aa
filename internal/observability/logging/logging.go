package logging

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Environment names the deployment environment logs are tagged with.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags log records with the subsystem that emitted them.
type Module string

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the service-wide JSON logger. Per-request attributes
// (request id, module) are pulled from the context by the handler, so
// call sites can use the plain slog.XxxContext functions.
func NewLogger(info ServiceInfo, env Environment, defaultModule Module, level slog.Level) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	handler := &contextHandler{
		Handler:       jsonHandler,
		defaultModule: defaultModule,
	}

	return slog.New(handler).With(
		slog.String("service", info.Name),
		slog.String("version", info.Version),
		slog.String("env", string(env)),
	)
}

type contextHandler struct {
	slog.Handler
	defaultModule Module
}

func (h *contextHandler) Handle(ctx context.Context, record slog.Record) error {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		record.AddAttrs(slog.String("request_id", requestID))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}
	if module != "" {
		record.AddAttrs(slog.String("module", string(module)))
	}

	return h.Handler.Handle(ctx, record)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), defaultModule: h.defaultModule}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), defaultModule: h.defaultModule}
}

// ValidateAndExtractRequestID returns the given id when it is a valid
// UUID, otherwise a freshly generated one. Inbound ids are never trusted
// blindly because they end up in logs and downstream request headers.
func ValidateAndExtractRequestID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return uuid.NewString()
	}
	return id
}
