// Package diag is the structured diagnostic sink the pass driver (C2) and
// reindent walker (C4) log swallowed errors to, per spec.md §7/§9
// ("route to a structured diagnostic sink; never abort the pipeline").
//
// The teacher (freeeve-machparse) does no logging at all; this is enriched
// from the rest of the retrieval pack, which uses
// github.com/sirupsen/logrus (vippsas-sqlcode) for structured diagnostics.
package diag

import "github.com/sirupsen/logrus"

// Sink receives non-fatal diagnostics from the grouping/reindent pipeline.
type Sink interface {
	Warn(fields logrus.Fields, msg string)
}

// logrusSink is the default Sink, backed by a logrus.Logger.
type logrusSink struct {
	log *logrus.Logger
}

// NewLogrusSink wraps log as a Sink. A nil log uses logrus.StandardLogger().
func NewLogrusSink(log *logrus.Logger) Sink {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &logrusSink{log: log}
}

func (s *logrusSink) Warn(fields logrus.Fields, msg string) {
	s.log.WithFields(fields).Warn(msg)
}

// noop discards every diagnostic; used by default in tests and by callers
// that have no transport of their own.
type noop struct{}

func (noop) Warn(logrus.Fields, string) {}

// Noop is a Sink that discards everything.
var Noop Sink = noop{}
