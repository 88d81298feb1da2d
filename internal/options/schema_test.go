// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import check "gopkg.in/check.v1"

func (s *S) TestCanonicalLongToken(c *check.C) {
	schema := NewSchema()
	got, ok := schema.Canonical("--anything")
	c.Assert(ok, check.Equals, true)
	c.Assert(got, check.Equals, "--anything")
}

func (s *S) TestCanonicalUnknownAlias(c *check.C) {
	schema := DefaultSchema()
	_, ok := schema.Canonical("-x")
	c.Assert(ok, check.Equals, false)
}

func (s *S) TestRegisterLastAliasWins(c *check.C) {
	schema := NewSchema().
		Register(Start, "-n", "--name").
		Register(Stop, "-n", "--node")
	got, ok := schema.Canonical("-n")
	c.Assert(ok, check.Equals, true)
	c.Assert(got, check.Equals, "--node")

	_, err := schema.Validate("-n", Start)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-n"})
	long, err := schema.Validate("--name", Start)
	c.Assert(err, check.IsNil)
	c.Assert(long, check.Equals, "--name")
}

func (s *S) TestValidateFlagOfAnotherCommand(c *check.C) {
	schema := DefaultSchema()
	_, err := schema.Validate("-i", List)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-i"})
	_, err = schema.Validate("--instance", Configure)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "--instance"})
}

func (s *S) TestFlags(c *check.C) {
	schema := DefaultSchema()
	c.Assert(schema.Flags(Start), check.DeepEquals, []Flag{
		{Kind: Start, Short: "-n", Long: "--name"},
		{Kind: Start, Short: "-i", Long: "--instance"},
	})
	c.Assert(schema.Flags(List), check.HasLen, 0)
}

func (s *S) TestFlagsReRegisterKeepsOneEntry(c *check.C) {
	schema := NewSchema().
		Register(Start, "-n", "--name").
		Register(Start, "-N", "--name")
	c.Assert(schema.Flags(Start), check.DeepEquals, []Flag{
		{Kind: Start, Short: "-N", Long: "--name"},
	})
}

func (s *S) TestKindFromString(c *check.C) {
	c.Assert(KindFromString("list"), check.Equals, List)
	c.Assert(KindFromString("start"), check.Equals, Start)
	c.Assert(KindFromString("stop"), check.Equals, Stop)
	c.Assert(KindFromString("configure"), check.Equals, Configure)
	c.Assert(KindFromString("help"), check.Equals, Help)
	c.Assert(KindFromString("Start"), check.Equals, Help)
	c.Assert(KindFromString("frobnicate"), check.Equals, Help)
}

func (s *S) TestKindString(c *check.C) {
	for _, k := range Kinds() {
		c.Assert(KindFromString(k.String()), check.Equals, k)
	}
	c.Assert(Help.String(), check.Equals, "help")
	c.Assert(CommandKind(42).String(), check.Equals, "help")
}
