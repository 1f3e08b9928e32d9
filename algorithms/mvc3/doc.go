// Package mvc3 approximates Minimum Vertex Cover by running Bipartite
// Maximal Matching over a virtual bipartite double cover: every
// original vertex v is split into two virtual copies, v's "White
// half" s1 (forced NodeID 0) and v's "Black half" s2 (forced NodeID
// 1), connected across each original edge {u,v} by two virtual edges
// (u's White half to v's Black half, and u's Black half to v's White
// half). Running both halves of BMM side by side over the original
// topology — with messages routed across the wire-swap described
// below — reproduces the double cover without building a second
// graph.
//
// A vertex is placed in the cover iff either of its two halves ends
// up matched; the classical analysis bounds the resulting cover at
// three times the optimum.
package mvc3
