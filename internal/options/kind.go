// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

// CommandKind is the command selected by the second token of the
// argument vector.
type CommandKind int

const (
	Help CommandKind = iota
	List
	Start
	Stop
	Configure
)

var commandNames = map[CommandKind]string{
	Help:      "help",
	List:      "list",
	Start:     "start",
	Stop:      "stop",
	Configure: "configure",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "help"
}

// KindFromString maps a command word to its kind by exact match. Any word
// that is not a known command, "help" included, selects Help.
func KindFromString(s string) CommandKind {
	switch s {
	case "list":
		return List
	case "start":
		return Start
	case "stop":
		return Stop
	case "configure":
		return Configure
	default:
		return Help
	}
}

// Kinds returns every runnable command kind, in help text order.
func Kinds() []CommandKind {
	return []CommandKind{List, Start, Stop, Configure}
}
