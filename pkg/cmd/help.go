// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/lightswitch/lightswitch/internal/options"
)

const helpWidth = 79

var commandDescriptions = map[options.CommandKind]string{
	options.List:      "List the instances of the region, with the index used by the instance picker.",
	options.Start:     "Start an instance and wait until it is running, then print its public DNS name.",
	options.Stop:      "Stop an instance. It does not wait for the instance to be stopped.",
	options.Configure: "Pick the region lightswitch works on from the regions of the account and save it to the region file.",
}

var flagDescriptions = map[string]string{
	options.FlagName:     "Name tag of the instance",
	options.FlagInstance: "Id of the instance",
}

const instanceNote = "When start or stop get neither --name nor --instance, the instances of the region are listed and one of them is picked interactively. --name wins when both are given. " +
	"The first run asks for a region unless --region is given."

func printHelp(out io.Writer, schema *options.Schema, cmd *cobra.Command) {
	fmt.Fprintf(out, "%s: %s.\n\n", cmd.Name(), strings.ToLower(cmd.Short[:1])+cmd.Short[1:])
	fmt.Fprintf(out, "Usage:\n  %s [global flags] <command> [flags]\n\nCommands:\n", cmd.Name())
	for _, kind := range options.Kinds() {
		fmt.Fprintf(out, "  %-11s%s\n", kind, indentWrap(commandDescriptions[kind], 13))
		for _, f := range schema.Flags(kind) {
			fmt.Fprintf(out, "      %s, %-20s%s\n", f.Short, f.Long+" <value>", flagDescriptions[f.Long])
		}
	}
	fmt.Fprintf(out, "\n%s\n", wordwrap.WrapString(instanceNote, helpWidth))
	fmt.Fprintf(out, "\nGlobal flags (before the command):\n%s", cmd.Flags().FlagUsagesWrapped(helpWidth))
}

// indentWrap wraps s so that, printed after indent columns, no line is
// wider than helpWidth.
func indentWrap(s string, indent int) string {
	wrapped := wordwrap.WrapString(s, uint(helpWidth-indent))
	return strings.ReplaceAll(wrapped, "\n", "\n"+strings.Repeat(" ", indent))
}
