// Package dcgdata provides default implementations of dcg.Data: the
// equality and sanitize pair every cell and memoized function needs for
// its value type. Comparable covers plain value types directly via
// Go's built-in ==; Cloneable covers reference-containing types that
// need an explicit deep copy at the DCG boundary, the same boundary
// discipline lvlath's core.(*Graph).Clone applies when handing a graph
// out to a caller that might mutate it.
package dcgdata
