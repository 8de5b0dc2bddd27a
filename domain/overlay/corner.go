package overlay

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// RoundCorners returns p with every sharp vertex between two line segments
// replaced by a quadratic arc. The arc starts and ends radius units away from
// the vertex, or half the adjoining segment length if that is shorter.
// Curve segments are passed through unchanged.
func RoundCorners(p path.Path, radius float64) path.Path {
	if radius <= 0 || p == nil {
		return p
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var pts []vec.Vec2
		continued := false // pts[0] is the current point and already emitted
		for cmd, args := range p {
			switch cmd {
			case path.CmdMoveTo:
				if !emitRounded(yield, pts, false, continued, radius) {
					return
				}
				pts = append(pts[:0], args[0])
				continued = false
			case path.CmdLineTo:
				pts = append(pts, args[0])
			case path.CmdClose:
				if !emitRounded(yield, pts, true, continued, radius) {
					return
				}
				if !yield(path.CmdClose, nil) {
					return
				}
				if len(pts) > 0 {
					pts = pts[:1]
				}
				continued = true
			default:
				if !emitRounded(yield, pts, false, continued, radius) {
					return
				}
				if !yield(cmd, args) {
					return
				}
				end := args[len(args)-1]
				pts = append(pts[:0], end)
				continued = true
			}
		}
		emitRounded(yield, pts, false, continued, radius)
	}
}

// emitRounded writes one polyline with rounded interior vertices. For a closed
// polyline every vertex is rounded and the output starts at the exit point of
// the first vertex.
func emitRounded(yield func(path.Command, []vec.Vec2) bool, pts []vec.Vec2, closed, continued bool, radius float64) bool {
	if closed && len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	n := len(pts)
	if n == 0 {
		return true
	}
	if n == 1 || (closed && n < 3) {
		if !continued && !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return false
		}
		for _, pt := range pts[1:] {
			if !yield(path.CmdLineTo, []vec.Vec2{pt}) {
				return false
			}
		}
		return true
	}

	if !closed {
		if !continued && !yield(path.CmdMoveTo, []vec.Vec2{pts[0]}) {
			return false
		}
		for i := 1; i < n-1; i++ {
			if !emitCorner(yield, pts[i-1], pts[i], pts[i+1], radius) {
				return false
			}
		}
		return yield(path.CmdLineTo, []vec.Vec2{pts[n-1]})
	}

	_, start := cornerPoints(pts[n-1], pts[0], pts[1], radius)
	if !yield(path.CmdMoveTo, []vec.Vec2{start}) {
		return false
	}
	for i := 1; i <= n; i++ {
		if !emitCorner(yield, pts[i-1], pts[i%n], pts[(i+1)%n], radius) {
			return false
		}
	}
	return true
}

func emitCorner(yield func(path.Command, []vec.Vec2) bool, prev, v, next vec.Vec2, radius float64) bool {
	in, out := cornerPoints(prev, v, next, radius)
	if in == v && out == v {
		return yield(path.CmdLineTo, []vec.Vec2{v})
	}
	if !yield(path.CmdLineTo, []vec.Vec2{in}) {
		return false
	}
	return yield(path.CmdQuadTo, []vec.Vec2{v, out})
}

// cornerPoints returns where the rounded arc around v begins (on prev-v) and
// ends (on v-next).
func cornerPoints(prev, v, next vec.Vec2, radius float64) (vec.Vec2, vec.Vec2) {
	return stepToward(v, prev, radius), stepToward(v, next, radius)
}

func stepToward(from, to vec.Vec2, radius float64) vec.Vec2 {
	d := to.Sub(from)
	dist := d.Length()
	if dist == 0 {
		return from
	}
	step := min(radius, dist/2)
	return from.Add(d.Mul(step / dist))
}
