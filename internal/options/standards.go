// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

// Each short flag must be unique across the lightswitch commands, the alias
// table is shared by all of them.
const (
	ShortFlagName     = "-n"
	ShortFlagInstance = "-i"
)

// Canonical flag names, used as keys of ParsedCommand options.
const (
	FlagName     = "--name"
	FlagInstance = "--instance"
)

// DefaultSchema returns the allow-list of the lightswitch commands.
func DefaultSchema() *Schema {
	return NewSchema().
		Register(Start, ShortFlagName, FlagName).
		Register(Start, ShortFlagInstance, FlagInstance).
		Register(Stop, ShortFlagName, FlagName).
		Register(Stop, ShortFlagInstance, FlagInstance)
}
