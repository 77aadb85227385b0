package logfox

import (
	"fmt"
	"runtime"
	"strings"
)

// Logger logs to a [State] under a fixed namespace.
// Each logging method records the caller's file and line as the message [Origin].
//
// The zero Logger logs to the [Default] State, under the empty namespace.
// A Logger is a small value, and safe for concurrent use.
type Logger struct {
	s  *State
	ns string
}

// Named returns a Logger for the [Default] State with the given namespace.
func Named(namespace string) Logger {
	return Logger{ns: namespace}
}

// Here returns a Logger for the [Default] State, named after the calling function's package import path.
func Here() Logger {
	return Logger{ns: callerNamespace(2)}
}

// Named returns a Logger for the State with the given namespace.
func (s *State) Named(namespace string) Logger {
	return Logger{s: s, ns: namespace}
}

// Namespace returns the Logger's namespace.
func (l Logger) Namespace() string {
	return l.ns
}

// Sub returns a Logger whose namespace has one more segment.
func (l Logger) Sub(segment string) Logger {
	if l.ns == "" {
		return Logger{l.s, segment}
	}
	return Logger{l.s, l.ns + "::" + segment}
}

func (l Logger) state() *State {
	if l.s == nil {
		return Default()
	}
	return l.s
}

// output captures the origin depth frames above itself
func (l Logger) output(depth int, level Level, text string) {
	var origin *Origin
	if _, file, line, ok := runtime.Caller(depth); ok {
		origin = &Origin{File: file, Line: line}
	}
	l.state().Log(l.ns, level, text, origin)
}

// Log logs text at the given level.
func (l Logger) Log(level Level, text string) {
	l.output(2, level, text)
}

// Logf formats with [fmt.Sprintf] and logs at the given level.
func (l Logger) Logf(level Level, format string, args ...any) {
	l.output(2, level, fmt.Sprintf(format, args...))
}

// Error logs the [fmt.Sprint] of args at [LevelError].
func (l Logger) Error(args ...any) {
	l.output(2, LevelError, fmt.Sprint(args...))
}

// Errorf logs at [LevelError].
func (l Logger) Errorf(format string, args ...any) {
	l.output(2, LevelError, fmt.Sprintf(format, args...))
}

// Warn logs the [fmt.Sprint] of args at [LevelWarn].
func (l Logger) Warn(args ...any) {
	l.output(2, LevelWarn, fmt.Sprint(args...))
}

// Warnf logs at [LevelWarn].
func (l Logger) Warnf(format string, args ...any) {
	l.output(2, LevelWarn, fmt.Sprintf(format, args...))
}

// Info logs the [fmt.Sprint] of args at [LevelInfo].
func (l Logger) Info(args ...any) {
	l.output(2, LevelInfo, fmt.Sprint(args...))
}

// Infof logs at [LevelInfo].
func (l Logger) Infof(format string, args ...any) {
	l.output(2, LevelInfo, fmt.Sprintf(format, args...))
}

// Debug logs the [fmt.Sprint] of args at [LevelDebug].
func (l Logger) Debug(args ...any) {
	l.output(2, LevelDebug, fmt.Sprint(args...))
}

// Debugf logs at [LevelDebug].
func (l Logger) Debugf(format string, args ...any) {
	l.output(2, LevelDebug, fmt.Sprintf(format, args...))
}

// Trace logs the [fmt.Sprint] of args at [LevelTrace].
func (l Logger) Trace(args ...any) {
	l.output(2, LevelTrace, fmt.Sprint(args...))
}

// Tracef logs at [LevelTrace].
func (l Logger) Tracef(format string, args ...any) {
	l.output(2, LevelTrace, fmt.Sprintf(format, args...))
}

// Tap logs v at the given level, and returns it.
//
//	n := logfox.Tap(log, logfox.LevelDebug, len(items))
func Tap[T any](l Logger, level Level, v T) T {
	l.output(2, level, fmt.Sprint(v))
	return v
}

// PACKAGE HELPERS
// These log to the Default State, under the caller's package import path.

// Errorf logs at [LevelError].
func Errorf(format string, args ...any) {
	Logger{ns: callerNamespace(2)}.output(2, LevelError, fmt.Sprintf(format, args...))
}

// Warnf logs at [LevelWarn].
func Warnf(format string, args ...any) {
	Logger{ns: callerNamespace(2)}.output(2, LevelWarn, fmt.Sprintf(format, args...))
}

// Infof logs at [LevelInfo].
func Infof(format string, args ...any) {
	Logger{ns: callerNamespace(2)}.output(2, LevelInfo, fmt.Sprintf(format, args...))
}

// Debugf logs at [LevelDebug].
func Debugf(format string, args ...any) {
	Logger{ns: callerNamespace(2)}.output(2, LevelDebug, fmt.Sprintf(format, args...))
}

// Tracef logs at [LevelTrace].
func Tracef(format string, args ...any) {
	Logger{ns: callerNamespace(2)}.output(2, LevelTrace, fmt.Sprintf(format, args...))
}

// callerNamespace returns the import path of the package of the function skip frames up.
// "example.com/app/db.(*Pool).Get" yields "example.com/app/db".
func callerNamespace(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packagePath(fn.Name())
}

func packagePath(funcName string) string {
	lastSlash := strings.LastIndexByte(funcName, '/')
	if dot := strings.IndexByte(funcName[lastSlash+1:], '.'); dot >= 0 {
		return funcName[:lastSlash+1+dot]
	}
	return funcName
}
