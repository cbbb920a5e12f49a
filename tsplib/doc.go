// Package tsplib reads Euclidean TSP instances in the TSPLIB coordinate
// format.
//
// Only the parts needed to build a tsp.PointSet are interpreted:
//
//	NAME : berlin52                 ← "KEY : VALUE" headers are recorded
//	TYPE : TSP                        for reporting, never validated
//	DIMENSION : 52
//	EDGE_WEIGHT_TYPE : EUC_2D
//	NODE_COORD_SECTION              ← start of the coordinate section
//	1 565.0 575.0                   ← <int id> <float x> <float y>
//	...
//	EOF                             ← mandatory terminator
//
// Every failure is fatal: Parse never returns a partial city list.
// Blank lines inside the coordinate section are skipped; lines are compared
// after trimming surrounding whitespace, so CRLF files parse as well.
package tsplib
