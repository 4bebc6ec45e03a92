// Package encode implements policy-driven categorical/text encoding.
//
// The engine converts ordered token sequences into fixed-layout numeric
// matrices. Three pieces cooperate:
//   - Dictionary: append-only token→index mapping with stable, contiguous
//     indices
//   - Policy: pluggable strategy deciding how an index is written into the
//     output matrix, with static Traits describing its pass and padding
//     behavior
//   - Encoder: the session driver that tokenizes, builds the dictionary and
//     writes every cell through the active policy
//
// Shipped policies:
//   - DictionaryPolicy: cell = raw token index, single-pass
//   - OneHotPolicy: per-position one-hot blocks, multi-pass
//   - BagOfWordsPolicy: vocabulary counts (or binary presence), multi-pass
//   - TfIdfPolicy: raw-count TF × smoothed IDF, multi-pass
//
// Sessions are strictly single-threaded: index assignment is sequential by
// construction, so a Dictionary must never be shared by concurrent writers.
package encode
