// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/lightswitch/lightswitch/pkg/cmd"

var (
	version = "dev"
	commit  = ""
	dateStr = ""
)

func main() {
	cmd.Execute(version, commit, dateStr)
}
