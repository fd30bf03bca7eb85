// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package basepair

import (
	"bufio"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// FlankWidth is the number of filler characters written on each side of a
// base.
const FlankWidth = 3

// Flank is the filler configuration of one pass. Left pads the first base of
// each pair, Right pads the second.
type Flank struct {
	Left, Right byte
}

// Passes lists the filler configurations in print order.
var Passes = []Flank{
	{Left: 'G', Right: 'C'},
	{Left: 'A', Right: 'T'},
}

// Label renders a single pair, e.g. "GGGAGGG/CCCACCC" for Pair{A, A} and
// Flank{'G', 'C'}. It does not include a line terminator.
func Label(p Pair, f Flank) string {
	var b strings.Builder
	b.Grow(4*FlankWidth + 3)
	if err := writeLabel(&b, p, f); err != nil {
		// strings.Builder never fails.
		panic(err)
	}
	return b.String()
}

// writeLabel writes the label of p to w, without a line terminator.
func writeLabel(w io.ByteWriter, p Pair, f Flank) error {
	if err := RepeatChar(w, f.Left, FlankWidth); err != nil {
		return err
	}
	if err := w.WriteByte(byte(p.First)); err != nil {
		return err
	}
	if err := RepeatChar(w, f.Left, FlankWidth); err != nil {
		return err
	}
	if err := w.WriteByte('/'); err != nil {
		return err
	}
	if err := RepeatChar(w, f.Right, FlankWidth); err != nil {
		return err
	}
	if err := w.WriteByte(byte(p.Second)); err != nil {
		return err
	}
	return RepeatChar(w, f.Right, FlankWidth)
}

// RepeatChar writes ch to w count times with no separator. A non-positive
// count writes nothing.
func RepeatChar(w io.ByteWriter, ch byte, count int) error {
	for i := 0; i < count; i++ {
		if err := w.WriteByte(ch); err != nil {
			return err
		}
	}
	return nil
}

// Printer writes pair labels to an output stream. Write errors are latched:
// after the first failure further output is dropped, and the error is
// reported by Err.
//
// Printer is not thread-safe.
type Printer struct {
	w     *bufio.Writer
	err   errors.Once
	lines int
}

// NewPrinter creates a Printer that writes to w. Output is buffered until
// Flush or Run returns.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

// RunPass writes one line per pair in Pairs using the given fillers.
func (p *Printer) RunPass(f Flank) {
	for _, pair := range Pairs() {
		if p.err.Err() != nil {
			return
		}
		if err := writeLabel(p.w, pair, f); err != nil {
			p.err.Set(err)
			return
		}
		if err := p.w.WriteByte('\n'); err != nil {
			p.err.Set(err)
			return
		}
		p.lines++
	}
}

// Run writes every pass in Passes, in order, then flushes.
func (p *Printer) Run() error {
	for _, f := range Passes {
		p.RunPass(f)
		log.Debug.Printf("basepair: pass %c/%c done, %d lines so far", f.Left, f.Right, p.lines)
	}
	return p.Flush()
}

// Flush writes any buffered output to the underlying writer and returns the
// first error seen.
func (p *Printer) Flush() error {
	if p.err.Err() == nil {
		p.err.Set(p.w.Flush())
	}
	return p.Err()
}

// Lines returns the number of complete lines handed to the output buffer.
func (p *Printer) Lines() int { return p.lines }

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	if err := p.err.Err(); err != nil {
		return errors.E(err, "basepair: write")
	}
	return nil
}

// Print writes both passes to w.
func Print(w io.Writer) error {
	return NewPrinter(w).Run()
}
