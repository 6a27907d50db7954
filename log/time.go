package log

import (
	"strings"
	"time"
)

// FormatTime formats a log timestamp. An empty result omits the timestamp.
type FormatTime func(time.Time) string

// DefaultTimeLayout is the timestamp layout used unless another is
// configured.
const DefaultTimeLayout = time.RFC3339

// namedLayouts maps normalized layout names to [time] layouts.
var namedLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"timeonly":    time.TimeOnly,

	"stamp": time.Stamp,
	"none":  "",

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"ns":        time.StampNano,
}

// ParseTimeLayout resolves name to a [time] layout.
//
// Names are matched against the layouts of the [time] package ignoring case
// and punctuation, so "RFC3339Nano", "rfc-3339-nano" and "DateTime" all
// work; "none" or a blank name yields the empty layout, which disables
// timestamps. Any other name is returned verbatim as a custom layout.
func ParseTimeLayout(name string) string {
	key := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(name),
	)

	if key == "" {
		return ""
	}

	if layout, ok := namedLayouts[key]; ok {
		return layout
	}

	return name
}

func makeFormatTimeFunc(name string) FormatTime {
	layout := ParseTimeLayout(name)
	if layout == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
