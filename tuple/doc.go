// Package tuple provides generic struct types
// that hold a specific number of values.
//
// The types are generated by the tuplegen command; see the root
// tuplejoin package for the join and split operations defined
// over them.
package tuple
