package wulai

// RequestLogger is the interface used by [Client] for logging requests,
// retries and failures. It matches the resty logger, and a *logrus.Logger
// satisfies it as is. Supply an implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger discards everything. It is the logger of any [Client] built
// without [WithRequestLogger].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// clientLogger applies the per-client debug switch in front of the
// configured logger.
type clientLogger struct {
	RequestLogger
	debug bool
}

func newClientLogger(logger RequestLogger, debug bool) *clientLogger {
	return &clientLogger{RequestLogger: logger, debug: debug}
}

func (l *clientLogger) Debugf(format string, v ...any) {
	if l.debug {
		l.RequestLogger.Debugf(format, v...)
	}
}
