// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lightswitch/lightswitch/internal/lsctx"
	"github.com/lightswitch/lightswitch/internal/options"
)

// UsageError is an error in the command line itself. Its message is
// followed by the help text.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func isUsageError(err error) bool {
	var usageErr *UsageError
	return errors.As(err, &usageErr)
}

func usageError(lsCtx *lsctx.Context, schema *options.Schema, cmd *cobra.Command, err error) error {
	fmt.Fprintf(lsCtx.Stderr, "%s %v\n\n", color.RedString("Error:"), err)
	printHelp(lsCtx.Stderr, schema, cmd)
	return &UsageError{Err: err}
}
