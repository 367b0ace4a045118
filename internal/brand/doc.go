// Package brand selects serial-number and counter fields from raw photo
// metadata. Camera vendors disagree about where these values live, so
// resolution is a table of ordered fallback rules per vendor rather than a
// single tag lookup. Sony in particular buries the body serial inside
// MakerNote fields, sometimes hex-encoded.
package brand
