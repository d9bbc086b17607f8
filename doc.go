// Package relq implements a query layer over in-memory collections: filter,
// project, order, group, aggregate, join and paginate slices, maps, lists
// and sets of Go values without string column names.
//
// # Basics
//
// Records are ordinary Go values, usually structs.  Fields are reached with
// key paths from the github.com/jonlawlor/relq/kp subpackage.  A key path is
// a typed getter from a record to one of its fields, which may report that
// the field is absent.  Predicates are functions which take a record
// reference and return a boolean; kp builds them from key paths, and any
// func(*R) bool will do.  A condition on one field is written
// WherePath(q, p, cond), or q.Where(p.Is(cond)); either way a record without
// the field does not match.  A plain closure passed to Where has to check
// for absent fields itself.
//
// There are three ways of evaluating a query.
//
// Query is eager.  Where calls accumulate predicates which must all hold, and
// every terminal call (All, First, Count, Limit, Exists, Skip(...).Limit,
// and the generic functions OrderBy, Select, GroupBy, Sum, Avg, Min, Max)
// scans the source again from the start.  Nothing is cached between calls.
//
// LazyQuery is a pipeline of iterator adapters.  Where, Skip, Take, Map and
// SelectLazy only wrap the previous stage; records are pulled one at a time
// when a terminal operation such as Collect, First, Any or Count runs, and
// production stops as soon as the terminal operation has what it needs.
//
// JoinQuery combines two collections.  Inner, left and right joins build a
// hash index over one side's key and probe it with the other, so they run in
// time proportional to the sizes of the inputs and the output.
//
// Union, Except and Intersect treat the results of two queries over a
// comparable record type as sets.
//
// # Absent values
//
// Nothing in this package returns an error.  A record whose key path cannot
// reach its field is left out: it does not match a predicate, it is dropped
// from a projection, it joins nothing and it belongs to no group.  Aggregates
// over an empty set return false (Avg, Min, Max) or the zero value (Sum).
//
// # Sources
//
// Engines read from an iter.Seq of record references.  New and Lazy take a
// slice directly, and Slice, MapSource and SortedMap can be given to Of and
// LazyOf; the From* functions adapt maps, sets, container/list lists,
// channels, single optional values and the gods containers.  A source is
// borrowed, not copied: it must outlive every query built on it and must not
// be modified while one of those queries is being evaluated.  Sources given
// to NewFrom must be iterable more than once, since every terminal call
// iterates again.
package relq

// variable naming conventions
//
// q, q1, q2, ... all represent queries, eager or lazy.
//
// j represents a join query.
//
// r, l, rec represent record references going through some transformation.
//
// p, lk, rk represent key paths; pred represents predicates.
//
// seq represents an iter.Seq of records or values.
