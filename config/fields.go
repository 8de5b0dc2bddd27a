package config

import (
	"sort"
	"strconv"
	"strings"
)

// ApplyFields returns a copy of c with the named form fields (json names)
// parsed into it. Unparseable values leave the field unchanged and are
// returned in rejected, sorted by name.
func ApplyFields(c Config, fields map[string]string) (Config, []string) {
	var rejected []string
	for id, raw := range fields {
		ok := true
		switch id {
		case "line_length":
			ok = assignInt(raw, &c.LineLength)
		case "stroke_width":
			ok = assignFloat(raw, &c.StrokeWidth)
		case "corner_radius":
			ok = assignFloat(raw, &c.CornerRadius)
		case "point_size":
			ok = assignInt(raw, &c.PointSize)
		case "animation_delay_ms":
			ok = assignInt(raw, &c.AnimationDelayMS)
		case "square_portrait":
			ok = assignBool(raw, &c.SquarePortrait)
		case "dark_mode":
			ok = assignBool(raw, &c.DarkMode)
		default:
			ok = false
		}
		if !ok {
			rejected = append(rejected, id)
		}
	}
	sort.Strings(rejected)
	return c, rejected
}

func assignFloat(s string, dst *float64) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	*dst = f
	return true
}

func assignInt(s string, dst *int) bool {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	*dst = i
	return true
}

func assignBool(s string, dst *bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		*dst = true
	case "false", "0", "no", "n", "off", "f":
		*dst = false
	default:
		return false
	}
	return true
}
