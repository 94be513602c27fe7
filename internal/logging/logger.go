// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level.
// An unparseable level panics, the service cannot start without logging.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		panic(err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      &SecurityLogger{l: logger.Named("security")},
	}
}

// SecurityLogger writes audit events on the desugared logger so that the
// event name and fields stay machine-parseable.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.l.Warn("authn_failure", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authz_failure", zap.String("subject", subject), zap.String("action", action))
}

func (s *SecurityLogger) SessionEstablished(subject, organizationID string) {
	s.l.Info("session_established", zap.String("subject", subject), zap.String("organization_id", organizationID))
}

func (s *SecurityLogger) SessionCleared(subject string) {
	s.l.Info("session_cleared", zap.String("subject", subject))
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system_shutdown")
}
