// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import check "gopkg.in/check.v1"

func (s *S) TestParseProgramNameOnly(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"lightswitch"})
	c.Assert(err, check.IsNil)
	c.Assert(got.Kind, check.Equals, Help)
	c.Assert(got.Options(), check.DeepEquals, map[string]string{})
}

func (s *S) TestParseUnknownCommandIsHelp(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"lightswitch", "frobnicate"})
	c.Assert(err, check.IsNil)
	c.Assert(got.Kind, check.Equals, Help)
	c.Assert(got.Options(), check.HasLen, 0)
}

func (s *S) TestParseShortAndLongForms(c *check.C) {
	schema := DefaultSchema()
	for _, kind := range []CommandKind{Start, Stop} {
		for _, f := range schema.Flags(kind) {
			short, err := schema.Parse([]string{"prog", kind.String(), f.Short, "value"})
			c.Assert(err, check.IsNil)
			long, err := schema.Parse([]string{"prog", kind.String(), f.Long, "value"})
			c.Assert(err, check.IsNil)

			c.Assert(short.Kind, check.Equals, kind)
			c.Assert(short.Options(), check.DeepEquals, map[string]string{f.Long: "value"})
			c.Assert(long.Options(), check.DeepEquals, short.Options())
		}
	}
}

func (s *S) TestParseScenario(c *check.C) {
	schema := NewSchema().
		Register(Start, "-n", "--name").
		Register(Start, "-i", "--instance")

	got, err := schema.Parse([]string{"prog", "start", "-i", "abc123"})
	c.Assert(err, check.IsNil)
	c.Assert(got.Kind, check.Equals, Start)
	c.Assert(got.Options(), check.DeepEquals, map[string]string{"--instance": "abc123"})

	got, err = schema.Parse([]string{"prog", "start", "-x", "abc123"})
	c.Assert(got, check.IsNil)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-x"})
	c.Assert(err, check.ErrorMatches, "invalid option: -x")

	schema.Register(Stop, "-n", "--name")
	got, err = schema.Parse([]string{"prog", "stop", "-n", "myserver"})
	c.Assert(err, check.IsNil)
	c.Assert(got.Kind, check.Equals, Stop)
	c.Assert(got.Options(), check.DeepEquals, map[string]string{"--name": "myserver"})
}

func (s *S) TestParseFlagNotRegisteredForCommand(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "list", "-n", "web"})
	c.Assert(got, check.IsNil)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-n"})

	got, err = DefaultSchema().Parse([]string{"prog", "configure", "--name", "web"})
	c.Assert(got, check.IsNil)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "--name"})
}

func (s *S) TestParseFirstInvalidFlagShortCircuits(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "start", "-n", "web", "-z", "1", "-q", "2"})
	c.Assert(got, check.IsNil)
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-z"})
}

func (s *S) TestParseMissingValue(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "start", "-n"})
	c.Assert(got, check.IsNil)
	c.Assert(err, check.DeepEquals, &MissingOptionValueError{Token: "-n"})
	c.Assert(err, check.ErrorMatches, "missing value for option: -n")
}

func (s *S) TestParseInvalidFlagReportedBeforeMissingValue(c *check.C) {
	_, err := DefaultSchema().Parse([]string{"prog", "start", "-x"})
	c.Assert(err, check.DeepEquals, &InvalidOptionError{Token: "-x"})
}

func (s *S) TestParseRepeatedFlagKeepsLastValue(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "stop", "-i", "i-1", "--instance", "i-2"})
	c.Assert(err, check.IsNil)
	c.Assert(got.Options(), check.DeepEquals, map[string]string{"--instance": "i-2"})
}

func (s *S) TestParseBothFlags(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "start", "-n", "web", "-i", "i-1"})
	c.Assert(err, check.IsNil)
	name, ok := got.Option(FlagName)
	c.Assert(ok, check.Equals, true)
	c.Assert(name, check.Equals, "web")
	id, ok := got.Option(FlagInstance)
	c.Assert(ok, check.Equals, true)
	c.Assert(id, check.Equals, "i-1")
}

func (s *S) TestParsedCommandOptionsIsACopy(c *check.C) {
	got, err := DefaultSchema().Parse([]string{"prog", "start", "-n", "web"})
	c.Assert(err, check.IsNil)
	opts := got.Options()
	opts[FlagName] = "changed"
	name, _ := got.Option(FlagName)
	c.Assert(name, check.Equals, "web")
}
