// Package datastruct contains in-memory container implementations
// for the container shapes that containerkit operates on.
package datastruct
