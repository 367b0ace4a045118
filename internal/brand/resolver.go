package brand

import (
	"strconv"
	"strings"

	"shuttercheck/internal/metadata"
)

// SerialRule attempts to extract a serial number from raw metadata. Rules
// are pure and report absent rather than erroring.
type SerialRule func(raw metadata.RawMetadata) (string, bool)

// sonySerialKeys are the MakerNote fields Sony bodies hide serial-like data
// in, in decreasing order of trustworthiness.
var sonySerialKeys = []string{
	"SerialNumber",
	"InternalSerialNumber",
	"CameraSerialNumber",
	"BodySerialNumber",
	"SerialNumber2",
	"Sony_0x0018",
	"Sony_0xB000",
	"Sony_0xB001",
	"SonyModelID",
	"FirmwareVersion2",
}

// genericSerialKeys are the standard fields used by Nikon, Canon, Fuji,
// Panasonic, and most other vendors.
var genericSerialKeys = []string{
	"SerialNumber",
	"CameraSerialNumber",
	"InternalSerialNumber",
	"BodySerialNumber",
}

// vendorSerialRules maps an upper-cased vendor token (matched as a substring
// of the declared make) to the ordered rules tried before the generic chain.
var vendorSerialRules = map[string][]SerialRule{
	"SONY": {prioritizedSerial(sonySerialKeys, 5)},
}

// keywords matched against normalized tag names, per counter class and in
// priority order. Normalization strips spaces and underscores so that
// "ShutterCount" and "Shutter Count" resolve the same way.
var (
	primaryCounterKeywords = []string{
		"shuttercount",
		"shutterreleases",
		"shutteractuations",
		"actuationcount",
		"releasecount",
		"exposurecount",
		"totalshot",
		"totalphotos",
	}
	secondaryCounterKeywords = []string{
		"imagenumber",
		"imagecount",
		"imagecounter",
		"filenumber",
	}
)

// ResolveSerial returns the serial number for the declared make, trying
// vendor-specific rules first, then the generic field chain, then a
// case-insensitive scan of all tag names for "serial". It reports absent,
// never an error, when nothing matches.
func ResolveSerial(raw metadata.RawMetadata, declaredMake string) (string, bool) {
	declared := strings.ToUpper(strings.TrimSpace(declaredMake))
	for vendor, rules := range vendorSerialRules {
		if !strings.Contains(declared, vendor) {
			continue
		}
		for _, rule := range rules {
			if serial, ok := rule(raw); ok {
				return serial, true
			}
		}
	}

	for _, key := range genericSerialKeys {
		if value, ok := raw.Lookup(key); ok {
			if serial := metadata.Stringify(value); usableSerial(serial, 1) {
				return serial, true
			}
		}
	}

	for _, key := range raw.SortedKeys() {
		if !strings.Contains(strings.ToLower(key), "serial") {
			continue
		}
		if serial := raw.String(key); usableSerial(serial, 1) {
			return serial, true
		}
	}

	return "", false
}

// prioritizedSerial builds a rule that walks an ordered key list and accepts
// the first candidate of at least minLen characters that is not a literal
// none marker. Hex-prefixed values are decoded to their decimal form.
func prioritizedSerial(keys []string, minLen int) SerialRule {
	return func(raw metadata.RawMetadata) (string, bool) {
		for _, key := range keys {
			value, ok := raw.Lookup(key)
			if !ok {
				continue
			}
			candidate := metadata.Stringify(value)
			if !usableSerial(candidate, minLen) {
				continue
			}
			return decodeHexSerial(candidate), true
		}
		return "", false
	}
}

func usableSerial(s string, minLen int) bool {
	if len(s) < minLen {
		return false
	}
	return !strings.EqualFold(s, "none")
}

// decodeHexSerial converts a "0x"-prefixed value to its decimal string.
// Values that fail to decode are returned verbatim.
func decodeHexSerial(s string) string {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return s
	}
	n, err := strconv.ParseUint(s[2:], 16, 64)
	if err != nil {
		return s
	}
	return strconv.FormatUint(n, 10)
}

// Counter is one resolved counter value together with the tag that supplied
// it.
type Counter struct {
	Key   string
	Value int64
}

// Counters carries the per-class resolution result. A nil entry means no
// tag in that class yielded a parseable value.
type Counters struct {
	Primary   *Counter
	Secondary *Counter
}

// ResolveCounters scans tag names for counter-like keywords and normalizes
// the first candidate per class that parses. Keys are visited in lexical
// order so resolution is deterministic; keyword priority outranks key order.
func ResolveCounters(raw metadata.RawMetadata) Counters {
	keys := raw.SortedKeys()
	return Counters{
		Primary:   resolveCounterClass(raw, keys, primaryCounterKeywords),
		Secondary: resolveCounterClass(raw, keys, secondaryCounterKeywords),
	}
}

func resolveCounterClass(raw metadata.RawMetadata, keys []string, keywords []string) *Counter {
	for _, keyword := range keywords {
		for _, key := range keys {
			if !strings.Contains(normalizeTagName(key), keyword) {
				continue
			}
			value, ok := metadata.ParseCounter(raw[key])
			if !ok {
				continue
			}
			return &Counter{Key: key, Value: value}
		}
	}
	return nil
}

func normalizeTagName(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	return key
}
