// Package model defines the data structures shared by the visualize packages.
package model

// Path represents a file system path.
type Path string

// Source is an input file loaded into memory.
type Source struct {
	Origin Path
	Data   []byte
}
