// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import "fmt"

// InvalidOptionError is returned when a flag token cannot be resolved or is
// not allowed for the selected command.
type InvalidOptionError struct {
	Token string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option: %s", e.Token)
}

// MissingOptionValueError is returned when a flag is the last token of the
// argument vector.
type MissingOptionValueError struct {
	Token string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("missing value for option: %s", e.Token)
}
