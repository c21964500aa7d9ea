package ipc

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateTimeFormats are the accepted string literal forms, tried in order.
var dateTimeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// epochMillisCutoff separates epoch seconds from epoch milliseconds.
// Anything at or above it is read as milliseconds; the boundary sits in
// the year 33658 when read as seconds, far past any plausible date here.
const epochMillisCutoff = 1e12

// DateTime decodes the literal forms a date may arrive in over the wire:
// an RFC 3339 string (with or without zone), a plain date string, or an
// epoch number in seconds or milliseconds. All forms coerce to a UTC
// time.Time. Like Optional, a bad literal is recorded rather than
// returned so validation can scope the failure to its field.
type DateTime struct {
	Time      time.Time
	Malformed bool
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.Malformed = true
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		for _, format := range dateTimeFormats {
			if t, perr := time.Parse(format, s); perr == nil {
				d.Time = t.UTC()
				return nil
			}
		}
		d.Malformed = true
		return nil
	}

	var epoch float64
	if err := json.Unmarshal(b, &epoch); err == nil {
		if epoch >= epochMillisCutoff || epoch <= -epochMillisCutoff {
			d.Time = time.UnixMilli(int64(epoch)).UTC()
		} else {
			d.Time = time.Unix(int64(epoch), 0).UTC()
		}
		return nil
	}

	d.Malformed = true
	return nil
}
