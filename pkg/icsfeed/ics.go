package icsfeed

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ProdID identifies the producing platform in every generated calendar.
const ProdID = "-//Open edX//calendar_sync//EN"

const (
	DateTypeDue   = "due"
	DateTypeStart = "start"
)

// EventID builds a deterministic calendar event id from a user, a course
// block key, a date type tag and the site domain, so that re-importing the
// same event updates it in the calendar client instead of duplicating it.
// No character validation is performed; callers own the field contents.
func EventID(userID int, blockKey string, dateType string, domain string) string {
	return fmt.Sprintf("%d.%s.%s@%s", userID, blockKey, dateType, domain)
}

// EventICS serializes a single calendar invite: one VCALENDAR (REQUEST
// method) wrapping one zero-duration, transparent VEVENT. Output is
// byte-identical for identical inputs. Organizer values are embedded as
// given; escaping of text values is left to the serialization library.
func EventICS(uid string, title string, description string, now time.Time, start time.Time, organizerName string, organizerEmail string) []byte {
	cal := ics.NewCalendar()
	cal.SetProductId(ProdID)
	cal.SetVersion("2.0")
	cal.SetMethod(ics.MethodRequest)

	event := cal.AddEvent(uid)
	event.SetDtStampTime(now.UTC())
	event.SetOrganizer("mailto:"+organizerEmail, ics.WithCN(organizerName))
	event.SetSummary(title)
	event.SetDescription(description)
	event.SetStartAt(start)
	event.SetProperty(ics.ComponentProperty(ics.PropertyDuration), "PT0S")
	event.SetTimeTransparency(ics.TransparencyTransparent)

	// CRLF regardless of GOOS, per RFC 5545 content lines.
	return []byte(cal.Serialize(ics.WithNewLineWindows))
}
