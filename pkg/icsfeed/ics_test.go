package icsfeed

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	testNow   = time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
)

func TestEventID(t *testing.T) {
	assert.Equal(t, "42.block-v1:abc.due@example.org", EventID(42, "block-v1:abc", DateTypeDue, "example.org"))
	assert.Equal(t, "0.CS101.start@example.org", EventID(0, "CS101", DateTypeStart, "example.org"))
}

// Changing any single input must change the resulting identifier.
func TestEventID_InjectiveInEveryField(t *testing.T) {
	base := EventID(42, "block-v1:abc", DateTypeDue, "example.org")

	assert.NotEqual(t, base, EventID(43, "block-v1:abc", DateTypeDue, "example.org"))
	assert.NotEqual(t, base, EventID(42, "block-v1:xyz", DateTypeDue, "example.org"))
	assert.NotEqual(t, base, EventID(42, "block-v1:abc", DateTypeStart, "example.org"))
	assert.NotEqual(t, base, EventID(42, "block-v1:abc", DateTypeDue, "example.net"))
}

func TestEventICS_DocumentShape(t *testing.T) {
	doc := string(EventICS(
		"42.block-v1:abc.due@example.org",
		"HW1",
		"HW1 is due for CS 101.",
		testNow,
		testStart,
		"Open edX",
		"registration@example.com",
	))

	assert.Equal(t, 1, strings.Count(doc, "BEGIN:VCALENDAR"))
	assert.Equal(t, 1, strings.Count(doc, "BEGIN:VEVENT"))
	assert.Equal(t, 1, strings.Count(doc, "END:VEVENT"))

	assert.Contains(t, doc, "PRODID:-//Open edX//calendar_sync//EN\r\n")
	assert.Contains(t, doc, "VERSION:2.0\r\n")
	assert.Contains(t, doc, "METHOD:REQUEST\r\n")

	assert.Contains(t, doc, "UID:42.block-v1:abc.due@example.org\r\n")
	assert.Contains(t, doc, "DTSTAMP:20240215T120000Z\r\n")
	assert.Contains(t, doc, "SUMMARY:HW1\r\n")
	assert.Contains(t, doc, "DESCRIPTION:HW1 is due for CS 101.\r\n")
	assert.Contains(t, doc, "DTSTART:20240301T000000Z\r\n")
	assert.Contains(t, doc, "DURATION:PT0S\r\n")
	assert.Contains(t, doc, "TRANSP:TRANSPARENT\r\n")

	assert.Regexp(t, `ORGANIZER;CN="?Open edX"?:mailto:registration@example.com`, doc)
}

// Content lines must end in CRLF on every platform.
func TestEventICS_CRLFLineEndings(t *testing.T) {
	doc := string(EventICS("uid@x", "t", "d", testNow, testStart, "n", "e@x"))

	for _, line := range strings.Split(strings.TrimSuffix(doc, "\r\n"), "\r\n") {
		assert.NotContains(t, line, "\n")
	}
	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(doc, "END:VCALENDAR\r\n"))
}

func TestEventICS_NonUTCStampNormalizedToUTC(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)
	doc := string(EventICS("uid@x", "t", "d", testNow.In(warsaw), testStart, "n", "e@x"))

	assert.Contains(t, doc, "DTSTAMP:20240215T120000Z\r\n")
}

func TestEventICS_Idempotent(t *testing.T) {
	first := EventICS("uid@example.org", "HW1", "desc", testNow, testStart, "Open edX", "registration@example.com")
	second := EventICS("uid@example.org", "HW1", "desc", testNow, testStart, "Open edX", "registration@example.com")

	assert.True(t, bytes.Equal(first, second))
}
