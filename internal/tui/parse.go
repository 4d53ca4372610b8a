package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rondo/internal/models"
)

// ParseIntervalSpec parses one editor line of the form "<name> <duration>",
// where duration is "mm:ss" or a bare number of seconds. The name may
// contain spaces; the last whitespace-separated token is the duration.
//
//	"Warm up 1:30"  -> {90s,  "Warm up"}
//	"Sprint 45"     -> {45s,  "Sprint"}
func ParseIntervalSpec(line string) (models.Interval, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return models.Interval{}, fmt.Errorf("expected \"<name> <mm:ss>\", got %q", line)
	}
	d, err := parseClock(fields[len(fields)-1])
	if err != nil {
		return models.Interval{}, err
	}
	iv := models.Interval{
		Name:     strings.Join(fields[:len(fields)-1], " "),
		Duration: d,
	}
	if err := iv.Validate(); err != nil {
		return models.Interval{}, err
	}
	return iv, nil
}

func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.Atoi(parts[0])
		if err != nil || secs < 0 {
			return 0, fmt.Errorf("bad duration %q", s)
		}
		return time.Duration(secs) * time.Second, nil
	case 2:
		mins, err1 := strconv.Atoi(parts[0])
		secs, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || mins < 0 || secs < 0 || secs > 59 {
			return 0, fmt.Errorf("bad duration %q", s)
		}
		return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second, nil
	}
	return 0, fmt.Errorf("bad duration %q", s)
}
