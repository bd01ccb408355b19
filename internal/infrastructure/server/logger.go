package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/learnpath/internal/infrastructure/config"
)

// learnerScoped is implemented by request messages that act on behalf of a learner.
type learnerScoped interface {
	GetLearnerID() int64
}

// InterceptorLogger adapts slog logger to interceptor logger.
func InterceptorLogger(cfg *config.Config) logging.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// Logger logs one line per completed connect request.
func Logger(cfg *config.Config) connect.UnaryInterceptorFunc {
	return newRequestLogger(slog.New(newHandler(os.Stderr, cfg)))
}

func newRequestLogger(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := connect.CodeOf(err)
			attrs := requestAttributes(req, code, time.Since(start))
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.LogAttrs(ctx, determineLogLevel(code, err), "request completed", attrs...)

			return resp, err
		}
	}
}

func newHandler(w io.Writer, cfg *config.Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Log.Level)}
	if cfg.Log.Format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal", "panic":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func determineLogLevel(code connect.Code, err error) slog.Level {
	if err == nil {
		return slog.LevelInfo
	}
	switch code {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeNotFound,
		connect.CodeAlreadyExists, connect.CodePermissionDenied, connect.CodeUnauthenticated:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func requestAttributes(req connect.AnyRequest, code connect.Code, duration time.Duration) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("procedure", req.Spec().Procedure),
		slog.String("status", code.String()),
		slog.Duration("duration", duration),
	}
	if scoped, ok := req.Any().(learnerScoped); ok {
		attrs = append(attrs, slog.Int64("learner_id", scoped.GetLearnerID()))
	}

	appendStringAttr(&attrs, "http_method", req.HTTPMethod())
	peer := req.Peer()
	appendStringAttr(&attrs, "peer_addr", peer.Addr)
	appendStringAttr(&attrs, "protocol", peer.Protocol)

	header := req.Header()
	appendStringAttr(&attrs, "user_agent", header.Get("User-Agent"))
	appendStringAttr(&attrs, "request_id", header.Get("X-Request-Id"))
	appendStringAttr(&attrs, "client_ip", firstForwardedFor(header))
	return attrs
}

func appendStringAttr(attrs *[]slog.Attr, key, value string) {
	if value == "" {
		return
	}
	*attrs = append(*attrs, slog.String(key, value))
}

func firstForwardedFor(header http.Header) string {
	forwarded := header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	for _, part := range strings.Split(forwarded, ",") {
		if candidate := strings.TrimSpace(part); candidate != "" {
			return candidate
		}
	}
	return ""
}

// NewLogger builds a configured logrus logger from application config.
func NewLogger(cfg *config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger, nil
}
