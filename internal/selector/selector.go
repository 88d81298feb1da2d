// Copyright © 2026 lightswitch authors
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package selector asks the operator to pick one entry of a list.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ErrInvalidSelection is returned for input that is not an index of the
// candidate list.
var ErrInvalidSelection = errors.New("invalid selection")

// ErrNoCandidates is returned when there is nothing to pick from.
var ErrNoCandidates = errors.New("nothing to select from")

// Selector returns the index of the chosen candidate.
type Selector interface {
	Select(title string, candidates []string) (int, error)
}

// DescriptorReader is a reader backed by a file descriptor, like os.Stdin.
type DescriptorReader interface {
	io.Reader
	Fd() uintptr
}

// ForInput returns the interactive picker when in is a terminal and the
// numbered prompt otherwise.
func ForInput(in io.Reader, out io.Writer) Selector {
	if desc, ok := in.(DescriptorReader); ok && term.IsTerminal(int(desc.Fd())) {
		return &Interactive{}
	}
	return &Prompt{In: in, Out: out}
}

// Prompt prints the candidates with a 0-based index and reads the chosen
// index from In.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

func (p *Prompt) Select(title string, candidates []string) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	for i, c := range candidates {
		fmt.Fprintf(p.Out, "%d: %s\n", i, c)
	}
	fmt.Fprintln(p.Out, title)

	if p.reader == nil {
		p.reader = bufio.NewReader(p.In)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, errors.Wrap(err, "could not read selection")
	}
	return Validate(strings.TrimSpace(line), len(candidates))
}

// Validate parses input as an index into a list of n candidates.
func Validate(input string, n int) (int, error) {
	index, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}
	if index < 0 || index >= n {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [0, %d]", index, n-1)
	}
	return index, nil
}

// Interactive uses a terminal select widget.
type Interactive struct{}

func (s *Interactive) Select(title string, candidates []string) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	opts := make([]huh.Option[int], len(candidates))
	for i, c := range candidates {
		opts[i] = huh.NewOption(c, i)
	}

	var value int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(title).
				Options(opts...).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return 0, err
	}
	return value, nil
}

// Fixed always selects Index. Out-of-range indexes are rejected like typed
// input.
type Fixed struct {
	Index int
	// Titles records every prompt title.
	Titles []string
}

func (f *Fixed) Select(title string, candidates []string) (int, error) {
	f.Titles = append(f.Titles, title)
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	return Validate(strconv.Itoa(f.Index), len(candidates))
}
