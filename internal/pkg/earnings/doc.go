// Package earnings turns shift records into period-scoped dashboard figures:
// calendar ranges, aggregated stats, resolved targets and performance scores.
// Everything here is pure and safe for concurrent use.
package earnings
