// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

// ParsedCommand is the result of a successful Parse.
type ParsedCommand struct {
	Kind    CommandKind
	options map[string]string
}

// Option returns the value given for the canonical flag name.
func (p *ParsedCommand) Option(name string) (string, bool) {
	v, ok := p.options[name]
	return v, ok
}

// Options returns a copy of all flag values keyed by canonical name.
func (p *ParsedCommand) Options() map[string]string {
	result := make(map[string]string, len(p.options))
	for k, v := range p.options {
		result[k] = v
	}
	return result
}

// Parse decodes args, whose first element is the program name. The second
// element selects the command and the rest is read as flag/value pairs.
func (s *Schema) Parse(args []string) (*ParsedCommand, error) {
	if len(args) <= 1 {
		return &ParsedCommand{Kind: Help, options: map[string]string{}}, nil
	}

	kind := KindFromString(args[1])
	options := map[string]string{}

	rest := args[2:]
	for len(rest) > 0 {
		flag := rest[0]
		long, err := s.Validate(flag, kind)
		if err != nil {
			return nil, err
		}
		if len(rest) < 2 {
			return nil, &MissingOptionValueError{Token: flag}
		}
		options[long] = rest[1]
		rest = rest[2:]
	}

	return &ParsedCommand{Kind: kind, options: options}, nil
}
