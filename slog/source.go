package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingContainerSource implements docindex.ContainerSource.
var _ docindex.ContainerSource = (*LoggingContainerSource)(nil)

// LoggingContainerSource wraps a ContainerSource with logging.
type LoggingContainerSource struct {
	next   docindex.ContainerSource
	logger *slog.Logger
}

// NewLoggingContainerSource creates a new LoggingContainerSource.
func NewLoggingContainerSource(next docindex.ContainerSource, logger *slog.Logger) *LoggingContainerSource {
	return &LoggingContainerSource{next: next, logger: logger}
}

// ReadContainer delegates to the wrapped source and logs the read.
func (s *LoggingContainerSource) ReadContainer(ctx context.Context, location string) (records []docindex.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read container",
			"location", location,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadContainer(ctx, location)
}

// Ensure LoggingModuleSource implements docindex.ModuleSource.
var _ docindex.ModuleSource = (*LoggingModuleSource)(nil)

// LoggingModuleSource wraps a ModuleSource with logging.
type LoggingModuleSource struct {
	next   docindex.ModuleSource
	logger *slog.Logger
}

// NewLoggingModuleSource creates a new LoggingModuleSource.
func NewLoggingModuleSource(next docindex.ModuleSource, logger *slog.Logger) *LoggingModuleSource {
	return &LoggingModuleSource{next: next, logger: logger}
}

// ListModules delegates to the wrapped source and logs the listing.
func (s *LoggingModuleSource) ListModules(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list modules",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListModules(ctx)
}

// ReadModule delegates to the wrapped source and logs the read.
func (s *LoggingModuleSource) ReadModule(ctx context.Context, name string) (records []docindex.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read module",
			"module", name,
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadModule(ctx, name)
}
