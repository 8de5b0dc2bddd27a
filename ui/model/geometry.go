package model

import (
	"image"
	"regexp"
	"strconv"
	"strings"
)

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)([+-]-?\d+)([+-]-?\d+)$`)

// ParseGeometry parses a Tk geometry string into the window rectangle in
// screen coordinates.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, err := parseOffset(m[3])
	if err != nil {
		return image.Rectangle{}, false
	}
	y, err := parseOffset(m[4])
	if err != nil {
		return image.Rectangle{}, false
	}
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// parseOffset handles "+10", "-10" and Tk's "+-10".
func parseOffset(s string) (int, error) {
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	return strconv.Atoi(s)
}

// Inset shrinks a w x h window by the space taken by surrounding widgets,
// never returning negative sizes.
func Inset(w, h, dw, dh int) (int, int) {
	return max(w-dw, 0), max(h-dh, 0)
}
