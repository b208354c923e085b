// Package precise is the extended-precision counterpart of package
// colloc: the same kernel family and kernel-weighted local linear
// regression evaluated on *big.Float values, so that inputs of any
// precision yield outputs of the same precision with no float64
// round-trip.
//
// [Weight] evaluates every kernel tag of the kernel subpackage at the
// precision of its argument; [Collocate] mirrors colloc.Collocate over
// [][]*big.Float data. Error kinds are shared with package colloc
// (colloc.ErrShapeMismatch, colloc.ErrSingular, ...).
package precise
