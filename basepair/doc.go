// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package basepair enumerates single-base mismatch duplexes over the DNA
// alphabet and renders them as flanked labels of the form
//
//   GGGAGGG/CCCACCC
//
// The left strand carries the first base of the pair, flanked by three copies
// of the left filler; the right strand carries the second base, flanked by
// three copies of the right filler. Pairs that would form a Watson-Crick
// match (A/T, T/A, G/C, C/G) are skipped, which leaves twelve mismatch pairs
// per filler configuration.
package basepair
