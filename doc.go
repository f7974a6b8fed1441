// Package ndkit provides comparison machinery for homogeneous
// n-dimensional arrays.
//
// It implements the element-level ordering contracts that sorting and
// rich comparison of array data depend on: a multi-field record
// comparator driven by per-sort-context auxiliary data, an rstrip-aware
// fixed-width string comparator, and an array-level rich-comparison
// dispatcher over broadcastable shapes.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ndkit/               Root package documentation
//	├── dtype/           Element type descriptors and record field layout
//	├── compare/         Record and string comparators, sort-order aux data
//	├── ndarray/         Array values, broadcasting, rich comparison, views
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Compare two arrays elementwise:
//
//	a, _ := ndarray.FromFloat64s([]float64{1, 2, 3}, 3)
//	b, _ := ndarray.FromFloat64s([]float64{2, 2, 2}, 3)
//
//	res, err := ndarray.RichCompare(a, b, ndarray.OpLT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mask, ok := res.Comparable()
//	fmt.Println(mask) // [true, false, false]
//
// Sort structured records with per-field direction:
//
//	so, err := compare.NewSortOrder(2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer so.Free()
//
//	so.Set(0, 0, offsetA, dtypeA)                      // ascending
//	so.Set(1, compare.FlagDescending, offsetB, dtypeB) // descending tie-break
//
//	ord := compare.Compare(recordX, recordY, so)
//
// # Thread Safety
//
// Comparators are pure given their inputs and safe for concurrent use,
// provided each goroutine owns its own SortOrder (see SortOrder.Clone).
// Arrays are NOT safe for concurrent mutation; this library assumes at
// most one writer per array at a time.
//
// # Ownership Model
//
// A SortOrder borrows its field descriptors: it never extends their
// lifetime, and must not outlive the dtype values it references. Each
// SortOrder, original or clone, must be freed exactly once.
package ndkit
