package isc

// LogInterface is the diagnostic channel the host hands to a program.
// hive.go's log.Logger satisfies it.
type LogInterface interface {
	LogInfof(format string, param ...interface{})
	LogDebugf(format string, param ...interface{})
	LogErrorf(format string, param ...interface{})
}
