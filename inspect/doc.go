// Package inspect renders off-heap array contents for tooling.
//
// Rendering delegates to the array's heap conversion, so the produced
// strings hold no reference into the off-heap block and stay valid after
// the array is released. This package is debugging surface only; it is not
// part of the core array contract.
package inspect
