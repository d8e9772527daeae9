/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

	Licensed under the Apache License, Version 2.0 (the "License");
	you may not use this file except in compliance with the License.
	You may obtain a copy of the License at

		http://www.apache.org/licenses/LICENSE-2.0

	Unless required by applicable law or agreed to in writing, software
	distributed under the License is distributed on an "AS IS" BASIS,
	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
	See the License for the specific language governing permissions and
	limitations under the License.
*/

package cbst

import (
	"log/slog"
	"os"
	"strings"
)

// LevelFromEnv maps the LOG_LEVEL environment convention of spec §6
// (trace/debug/info/warn/error) onto an slog.Level. Unrecognized or
// empty values fall back to info.
func LevelFromEnv(value string) slog.Level {
	switch strings.ToLower(value) {
	case "trace":
		return slog.LevelDebug - 4
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the package-wide text logger, honoring LOG_LEVEL.
func NewLogger() *slog.Logger {
	level := LevelFromEnv(os.Getenv("LOG_LEVEL"))
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}
