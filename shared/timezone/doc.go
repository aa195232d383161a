// Package timezone pins every wall-clock decision of the service to one location.
//
// The location comes from APP_TIMEZONE (an IANA name such as "Indian/Maldives") and is
// loaded when the package is imported; an empty or unknown name falls back to UTC.
//
//	now := timezone.Now()
//	today := timezone.Today() // local midnight, used for "is this stay happening today"
//	t, err := timezone.Parse("2006-01-02", "2024-06-03")
package timezone
