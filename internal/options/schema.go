// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options decodes the lightswitch argument vector into a command
// and a map of flag values, rejecting flags a command does not accept.
package options

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// LongPrefix marks a token as a canonical (long) flag name.
const LongPrefix = "--"

type allowed struct {
	kind CommandKind
	name string
}

// Flag is a registered option of a command.
type Flag struct {
	Kind  CommandKind
	Short string
	Long  string
}

// Schema is the allow-list of (command, canonical flag) pairs plus the
// short alias table. It is built once and only read afterwards.
type Schema struct {
	allowList sets.Set[allowed]
	aliases   map[string]string
	flags     []Flag
}

func NewSchema() *Schema {
	return &Schema{
		allowList: sets.New[allowed](),
		aliases:   map[string]string{},
	}
}

// Register allows long for kind and maps short to long. Registering the same
// short alias again replaces its mapping.
func (s *Schema) Register(kind CommandKind, short, long string) *Schema {
	s.allowList.Insert(allowed{kind: kind, name: long})
	s.aliases[short] = long
	for i, f := range s.flags {
		if f.Kind == kind && f.Long == long {
			s.flags[i].Short = short
			return s
		}
	}
	s.flags = append(s.flags, Flag{Kind: kind, Short: short, Long: long})
	return s
}

// Canonical resolves token to its canonical flag name.
func (s *Schema) Canonical(token string) (string, bool) {
	if strings.HasPrefix(token, LongPrefix) {
		return token, true
	}
	long, ok := s.aliases[token]
	return long, ok
}

// Validate resolves token and checks it is allowed for kind.
func (s *Schema) Validate(token string, kind CommandKind) (string, error) {
	long, ok := s.Canonical(token)
	if !ok || !s.allowList.Has(allowed{kind: kind, name: long}) {
		return "", &InvalidOptionError{Token: token}
	}
	return long, nil
}

// Flags returns the options registered for kind, in registration order.
func (s *Schema) Flags(kind CommandKind) []Flag {
	var result []Flag
	for _, f := range s.flags {
		if f.Kind == kind {
			result = append(result, f)
		}
	}
	return result
}
