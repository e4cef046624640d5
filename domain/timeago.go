package domain

import (
	"fmt"
	"time"
)

type interval struct {
	seconds  int64
	singular string
	plural   string
}

var intervals = []interval{
	{31536000, "Jahr", "Jahren"},
	{2592000, "Monat", "Monaten"},
	{604800, "Woche", "Wochen"},
	{86400, "Tag", "Tagen"},
	{3600, "Stunde", "Stunden"},
	{60, "Minute", "Minuten"},
	{1, "Sekunde", "Sekunden"},
}

// FormatTimeAgo renders the distance between t and now in German, e.g. "vor 3 Tagen".
// Timestamps in the future or less than a second old read "gerade eben".
func FormatTimeAgo(t, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	for _, iv := range intervals {
		counter := seconds / iv.seconds
		if counter <= 0 {
			continue
		}
		unit := iv.singular
		if counter > 1 {
			unit = iv.plural
		}
		return fmt.Sprintf("vor %d %s", counter, unit)
	}
	return "gerade eben"
}
