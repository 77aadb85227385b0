/*
Package logfox is a small, embeddable logger for leveled, namespaced messages.

A message is filtered by level and namespace, written as one line to standard output,
and passed to any number of registered [Sink]s.

# Hello, world

	package main

	import "github.com/AndrewHarrisSPU/logfox"

	func main() {
		log := logfox.Named("roswell")
		log.Info("Hello, world")
	}

This writes:

	[roswell] INFO Hello, world

# Levels

There are five levels, from most to least important:

	ERRR  WARN  INFO  DBUG  TRCE

A [State] passes messages at or above its minimum level, [LevelTrace] (everything) by default:

	logfox.SetLevel(logfox.LevelWarn)

# Namespaces

A namespace is a path of segments delimited by "::" or "/", like "app::db::pool".
Excluding a namespace prefix drops every message beneath it, whatever its level:

	logfox.ExcludeNamespace("app::db")

The namespace in a stdout line may be colored by its top-level segment:

	logfox.SetNamespaceColor("app", "bright magenta")

When colors are on and a message carries an [Origin], the namespace is also a terminal hyperlink to the call site.

# Sinks

A [Sink] receives the time and [Message] of every line that passes filtering:

	logfox.AddSink(logfox.SinkFunc(func(t time.Time, m *logfox.Message) {
		...
	}))

Sinks run in registration order, one message at a time.
[WriterSink] mirrors plain lines to any [io.Writer], and [SlogSink] forwards messages to a [slog.Handler].

# States

Package-level functions act on the process-wide [Default] State, constructed on first use.
Independent States are built with [New]:

	s := logfox.New().
		TimeFormat("15:04:05").
		Level(logfox.LevelInfo).
		Exclude("noisy").
		State()

	s.Named("app").Infof("%d widgets", 3)

Every operation on a State, including logging, holds its one lock for the whole operation.
This totally orders messages, at the cost of serializing logging.

# slog

[NewHandler] returns a [slog.Handler] logging to a State, so a [slog.Logger] can write logfox lines.

# Self tracing

[EnableSelfTrace] logs configuration changes in the "logfox" namespace, at [LevelTrace].
*/
package logfox
