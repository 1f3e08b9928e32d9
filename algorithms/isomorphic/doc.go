// Package isomorphic implements the Isomorphic Neighborhood counting
// gadget: a depth-bounded, degree-weighted sum that every vertex
// computes by repeatedly broadcasting its current accumulator and
// folding in what its neighbors broadcast back. On a k-regular graph
// the accumulator after round i is exactly k^(i+1), independent of
// vertex identity or network shape — hence "isomorphic": vertices
// that look alike locally (same degree, same depth-D neighborhood
// structure) end up holding the same value.
//
// It exists to exercise the simulation engine with a minimal algorithm
// whose correct output is easy to state for small, regular test
// networks, not to solve a useful distributed problem.
package isomorphic
