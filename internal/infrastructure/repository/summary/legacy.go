package summary

import "strings"

// legacySeparator joined project ideas in rows written by the previous
// deployment, which stored the list as one delimited text column.
const legacySeparator = "|"

// EncodeLegacyIdeas joins ideas into the legacy delimited form. The encoding
// is lossy when an idea itself contains the separator: decoding such a value
// splits it into extra entries. That limitation is why current rows store a
// structured JSON column instead.
func EncodeLegacyIdeas(ideas []string) string {
	return strings.Join(ideas, legacySeparator)
}

// DecodeLegacyIdeas splits a legacy delimited value back into ideas.
func DecodeLegacyIdeas(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, legacySeparator)
}
