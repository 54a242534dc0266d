// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging contains the logger abstraction, a set of sinks and a
// registry mapping names to loggers.
//
// A [Logger] receives [*LogMsg] records. The [Log] family of helpers
// formats a message only when the logger accepts its level.
//
// Available sinks:
//   - [Null] discards everything and is the default everywhere
//   - [*ConsoleLogger] writes one line per record to an [io.Writer]
//   - [*SlogLogger] forwards to a [*slog.Logger]
//   - [*ZapLogger] forwards to a [*zap.Logger]
//
// A [*Registry] is an explicit object holding named loggers and a default
// logger that is never nil. Registration comes in three families: strict
// (Register, fails on duplicates), forced (ForceRegister, replaces) and
// best-effort (TryRegister, reports success as a bool).
//
// A registry can be described in YAML and built with [LoadConfig] and
// [*RegistryConfig.Build].
package logging
