// Package logger builds the structured logger strata's internal
// packages are handed at construction. It exists so every subsystem
// gets a consistently configured zap logger tagged with the service
// name, rather than each constructing its own.
package logger

import "go.uber.org/zap"

// New builds a production-configured *zap.SugaredLogger tagged with
// service. Construction failures fall back to a no-op logger so that a
// logging misconfiguration never prevents the store from starting.
func New(service string) *zap.SugaredLogger {
	base, err := zap.NewProduction()
	if err != nil {
		base = zap.NewNop()
	}
	return base.Sugar().With("service", service)
}

// Nop returns a logger that discards everything, used as the default
// when a caller does not supply one.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
