// Package metadata defines the raw tag map reported for a photo and the
// normalizers that turn loosely-typed tag values into canonical ones.
//
// Values arrive from the extraction layer as strings, numbers, or rational
// text depending on the camera brand and the tool that produced them. The
// normalizers never fail hard: a value that cannot be made sense of degrades
// to absent so one malformed tag never aborts a batch.
//
// Key entry points:
//   - ParseCounter: integer counters from ints, floats, rationals, and
//     decorated decimal strings
//   - ParseTimestamp: capture timestamps tried across a fixed priority of
//     candidate tags
package metadata
