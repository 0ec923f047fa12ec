// Package naming provides consistent naming functions for cluster resources.
//
// Derived resources follow the pattern {cluster}-{type} so that everything
// belonging to a database cluster can be identified (and cleaned up) from the
// cluster identifier alone.
package naming
