// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"strconv"

	"github.com/tsuru/tablecli"

	"github.com/lightswitch/lightswitch/internal/cloud"
)

// InstanceList is the result of the list command. The index column matches
// the numbers offered by the instance picker.
type InstanceList []cloud.Instance

func (l InstanceList) Table() *tablecli.Table {
	tbl := tablecli.NewTable()
	tbl.Headers = tablecli.Row{"#", "Name", "Instance ID", "State", "Public DNS"}
	for i, inst := range l {
		tbl.AddRow(tablecli.Row{strconv.Itoa(i), inst.Name, inst.ID, inst.State, inst.PublicDNS})
	}
	return tbl
}

// InstanceChange is the result of the start and stop commands.
type InstanceChange struct {
	Action   string         `json:"action"`
	Region   string         `json:"region"`
	Instance cloud.Instance `json:"instance"`
}
