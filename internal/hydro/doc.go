// Package hydro provides the single-pipe hydraulic primitives.
//
//   - [Geometry]: circular, rectangular and annular cross-sections
//   - [Reynolds], [Classify], [Alpha]: regime and kinetic-energy correction
//   - [FrictionFactor]: Fanning friction factor with automatic correlation choice
//   - [MajorHeadLoss], [MinorHeadLoss]: frictional and fitting losses
//   - [Evaluate]: everything above for one flow rate through one pipe
//
// All quantities are SI. Friction factors follow the Fanning convention, so
// the major loss is h = 2f(L/D)(v²/g).
package hydro
