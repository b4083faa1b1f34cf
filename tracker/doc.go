// Package tracker keeps the latest value of a qudit statistic and refreshes
// it on demand or on a ticker.
//
// Five trackers are provided:
//
//   - Entanglement: mutual information of every property with the rest (≥ 2 properties).
//   - Correlation: correlation matrix of exactly two properties.
//   - DensityMatrix: reduced density matrix of a property set.
//   - Probabilities: joint basis-outcome distribution of a property set.
//   - Phase: argument of every reduced density matrix entry, radians or degrees.
//
// Update recomputes and caches the value; failures are logged and the previous
// value is kept. Last and Text read the cache. Run refreshes at a fixed
// interval until its context is cancelled.
//
// Update, Last and Text are safe for concurrent use. Concurrent Updates are
// serialized. Run blocks the calling goroutine.
package tracker
