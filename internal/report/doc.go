// Package report runs one batch through the normalization and anomaly
// pipeline and assembles the result consumed by renderers: the ordered
// records, the findings, and the counts that tell the caller how much of
// the batch was actually usable.
//
// Terminal outcomes are explicit. A batch that ends up empty after model
// filtering, or that has no dated records at all, is an error distinct from
// a clean report, because it signals the caller's filters or inputs were
// wrong.
package report
