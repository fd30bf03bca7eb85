/*
bio-basepair prints the single-mismatch duplex labels used to build the
mismatch trimer tables of the nearest-neighbor melting model.

For every ordered pair (i, k) over the bases A, T, G, C that is not a
Watson-Crick pair, it prints one line of the form

  GGG<i>GGG/CCC<k>CCC

followed by a second block with A/T flanks:

  AAA<i>AAA/TTT<k>TTT

Each block has 12 lines. The command reads no input and ignores its
arguments.

Sample usage:
bio-basepair > mismatches.txt
*/
package main
