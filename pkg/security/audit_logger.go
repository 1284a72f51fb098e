package security

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of account security event
type EventType string

const (
	EventRegistered     EventType = "user_registered"
	EventLoginSuccess   EventType = "login_success"
	EventLoginFailed    EventType = "login_failed"
	EventLogout         EventType = "logout"
	EventAccessDenied   EventType = "access_denied"
	EventUploadRejected EventType = "upload_rejected"
)

// AuditEvent is one line in the security audit trail.
type AuditEvent struct {
	Event     EventType
	Username  string // Hashed before it is written
	UserID    int64
	IP        string
	UserAgent string
	RequestID string
	Reason    string
}

// AuditLogger writes account events through zap, separate from the request log.
type AuditLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewAuditLogger builds a production zap logger writing JSON to stdout.
func NewAuditLogger(serviceName, environment string) *AuditLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewAuditLoggerWith(logger, serviceName, environment)
}

// NewAuditLoggerWith wraps an existing zap logger.
func NewAuditLoggerWith(logger *zap.Logger, serviceName, environment string) *AuditLogger {
	return &AuditLogger{zapLogger: logger, serviceName: serviceName, environment: environment}
}

// NopAuditLogger discards everything.
func NopAuditLogger() *AuditLogger {
	return NewAuditLoggerWith(zap.NewNop(), "", "")
}

func levelFor(event EventType) zapcore.Level {
	switch event {
	case EventLoginFailed, EventUploadRejected:
		return zapcore.WarnLevel
	case EventAccessDenied:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

func (a *AuditLogger) Log(event AuditEvent) {
	if a == nil {
		return
	}
	fields := []zap.Field{
		zap.String("service", a.serviceName),
		zap.String("env", a.environment),
		zap.String("event", string(event.Event)),
		zap.Time("at", time.Now().UTC()),
	}
	if event.Username != "" {
		fields = append(fields, zap.String("subject", HashValue(event.Username)))
	}
	if event.UserID != 0 {
		fields = append(fields, zap.Int64("user_id", event.UserID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.Reason != "" {
		fields = append(fields, zap.String("reason", event.Reason))
	}
	a.zapLogger.Log(levelFor(event.Event), string(event.Event), fields...)
}

// Sync flushes any buffered log entries
func (a *AuditLogger) Sync() error {
	return a.zapLogger.Sync()
}

// HashValue creates a short SHA256 digest of a value for logging without PII
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
