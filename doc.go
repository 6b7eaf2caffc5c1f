// Package graphstat estimates combinatorial statistics of random graphs,
// both exactly on small graphs and by Monte-Carlo sampling over ensembles.
//
// What it measures:
//
//	• minimum vertex cover size, integral (IP) and half-integral (LP)
//	• 2-way and 3-way cut-set weight distributions
//	• global and s-t minimum cut weight
//
// Everything is organized under these subpackages:
//
//	core/        - undirected multigraph with int node ids, loops and parallel edges
//	builder/     - deterministic and random constructors (G(n,p), G(n,m), configuration model)
//	ensemble/    - random graph ensembles, injected random Source, JSON/YAML definitions
//	constraint/  - per-edge check values of a node assignment
//	enumerate/   - exact calculators over every assignment in D^n
//	dist/        - ordered distributions, normalize/cumulative/fill transforms, .dat output
//	bfs/, flow/  - traversal and max-flow (Dinic, Edmonds–Karp, Ford–Fulkerson)
//	mincut/      - global and s-t minimum cut of a simplified multigraph
//	linprog/     - LP over gonum's simplex plus binary branch-and-bound
//	vertexcover/ - vertex cover programs and solutions
//	montecarlo/  - trial loops, averaged distributions and named experiments
//	progress/    - advisory progress bar
//	cmd/graphstat - command line front end
//
// Quick example, the triangle:
//
//	    0
//	   / \
//	  1───2
//
// has covers of size 2 (three of them) and 3 (one), LP optimum 1.5 with every
// value 1/2, global min cut 2, and exactly one 3-way cut set: all three edges.
//
//	go install github.com/katalvlaran/graphstat/cmd/graphstat@latest
package graphstat
