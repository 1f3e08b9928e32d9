// Package bipartite implements Bipartite Maximal Matching (BMM), the
// classical Port Numbering algorithm for computing a maximal matching on
// a graph that is bipartite with respect to the even/odd split of its
// vertex indices (even vertices White, odd vertices Black).
//
// White vertices walk their ports in order, proposing to one port per
// even round until a Black neighbor accepts or every port has been
// tried. Black vertices collect incoming proposals on even rounds and
// accept the lowest-numbered pending one in the following odd round;
// a Black vertex with no proposal stops unmatched once every one of its
// ports has reported Matched. A White vertex stops within 2*degree+1
// rounds.
//
// WARNING: the input network must be bipartite on even/odd vertex
// indices; running BMM on a non-bipartite graph is undefined (see
// algorithms/mvc3 for how to lift an arbitrary graph to a bipartite
// double cover first).
package bipartite
