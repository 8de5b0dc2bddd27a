package images

import (
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/soocke/viewfinder-go/domain/overlay"
)

const (
	curveSteps  = 8  // line segments per flattened curve
	circleSteps = 24 // polygon vertices per round cap/join
)

// stroker turns a path into stroke outline polygons. Every polygon is added
// with the same winding so overlapping pieces (segments, joins, caps) union
// under the rasteriser's accumulate-and-clamp coverage rule.
type stroker struct {
	pts  []vec.Vec2
	poly []vec.Vec2
	any  bool
}

// outline adds the stroke of p to ras, translating by (-ox, -oy). It reports
// whether any polygon was added.
func (s *stroker) outline(ras *vector.Rasterizer, p path.Path, style overlay.StrokeStyle, ox, oy float64) bool {
	s.any = false
	s.pts = s.pts[:0]
	hw := style.Width / 2
	var cur, start vec.Vec2
	flush := func(closed bool) {
		s.subpath(ras, style, hw, closed, ox, oy)
		s.pts = s.pts[:0]
	}
	for cmd, args := range p {
		if cmd != path.CmdMoveTo && cmd != path.CmdClose && len(s.pts) == 0 {
			s.pts = append(s.pts, cur)
		}
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			cur, start = args[0], args[0]
			s.pts = append(s.pts, cur)
		case path.CmdLineTo:
			cur = args[0]
			s.pts = append(s.pts, cur)
		case path.CmdQuadTo:
			p0, p1, p2 := cur, args[0], args[1]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				s.pts = append(s.pts, p0.Mul(omt*omt).Add(p1.Mul(2*omt*t)).Add(p2.Mul(t*t)))
			}
			cur = p2
		case path.CmdCubeTo:
			p0, p1, p2, p3 := cur, args[0], args[1], args[2]
			for i := 1; i <= curveSteps; i++ {
				t := float64(i) / curveSteps
				omt := 1 - t
				pt := p0.Mul(omt * omt * omt).Add(p1.Mul(3 * omt * omt * t)).Add(p2.Mul(3 * omt * t * t)).Add(p3.Mul(t * t * t))
				s.pts = append(s.pts, pt)
			}
			cur = p3
		case path.CmdClose:
			flush(true)
			cur = start
		}
	}
	flush(false)
	return s.any
}

func (s *stroker) subpath(ras *vector.Rasterizer, style overlay.StrokeStyle, hw float64, closed bool, ox, oy float64) {
	// drop repeated points; they carry no direction
	pts := s.pts[:0]
	for i, pt := range s.pts {
		if i > 0 && pt == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, pt)
	}
	if closed && len(pts) > 2 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	switch len(pts) {
	case 0:
		return
	case 1:
		switch style.Cap {
		case graphics.LineCapRound:
			s.circle(ras, pts[0], hw, ox, oy)
		case graphics.LineCapSquare:
			s.polygon(ras, ox, oy,
				pts[0].Add(vec.Vec2{X: -hw, Y: -hw}), pts[0].Add(vec.Vec2{X: hw, Y: -hw}),
				pts[0].Add(vec.Vec2{X: hw, Y: hw}), pts[0].Add(vec.Vec2{X: -hw, Y: hw}))
		}
		return
	}
	if len(pts) == 2 {
		closed = false
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		t, _ := unit(b.Sub(a))
		nv := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
		s.polygon(ras, ox, oy, a.Add(nv), b.Add(nv), b.Sub(nv), a.Sub(nv))
	}

	first, last := 1, n-2
	if closed {
		first, last = 0, n-1
	}
	for i := first; i <= last; i++ {
		prev, v, next := pts[(i-1+n)%n], pts[i], pts[(i+1)%n]
		if style.Join == graphics.LineJoinRound {
			s.circle(ras, v, hw, ox, oy)
			continue
		}
		// bevel (miter joins are drawn as bevels)
		t1, _ := unit(v.Sub(prev))
		t2, _ := unit(next.Sub(v))
		n1 := vec.Vec2{X: -t1.Y, Y: t1.X}.Mul(hw)
		n2 := vec.Vec2{X: -t2.Y, Y: t2.X}.Mul(hw)
		s.polygon(ras, ox, oy, v, v.Add(n1), v.Add(n2))
		s.polygon(ras, ox, oy, v, v.Sub(n1), v.Sub(n2))
	}

	if closed {
		return
	}
	switch style.Cap {
	case graphics.LineCapRound:
		s.circle(ras, pts[0], hw, ox, oy)
		s.circle(ras, pts[n-1], hw, ox, oy)
	case graphics.LineCapSquare:
		s.squareCap(ras, pts[1], pts[0], hw, ox, oy)
		s.squareCap(ras, pts[n-2], pts[n-1], hw, ox, oy)
	}
}

// squareCap extends the segment from->end by hw beyond end.
func (s *stroker) squareCap(ras *vector.Rasterizer, from, end vec.Vec2, hw float64, ox, oy float64) {
	t, _ := unit(end.Sub(from))
	ext := t.Mul(hw)
	nv := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
	s.polygon(ras, ox, oy, end.Add(nv), end.Add(ext).Add(nv), end.Add(ext).Sub(nv), end.Sub(nv))
}

func (s *stroker) circle(ras *vector.Rasterizer, c vec.Vec2, r float64, ox, oy float64) {
	s.poly = s.poly[:0]
	for i := 0; i < circleSteps; i++ {
		theta := 2 * math.Pi * float64(i) / circleSteps
		s.poly = append(s.poly, vec.Vec2{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)})
	}
	s.addPolygon(ras, s.poly, ox, oy)
}

func (s *stroker) polygon(ras *vector.Rasterizer, ox, oy float64, pts ...vec.Vec2) {
	s.poly = append(s.poly[:0], pts...)
	s.addPolygon(ras, s.poly, ox, oy)
}

// addPolygon adds pts with negative signed area, reversing if needed.
func (s *stroker) addPolygon(ras *vector.Rasterizer, pts []vec.Vec2, ox, oy float64) {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	if math.Abs(area) < 1e-9 {
		return
	}
	at := func(i int) vec.Vec2 {
		if area > 0 {
			return pts[len(pts)-1-i]
		}
		return pts[i]
	}
	p0 := at(0)
	ras.MoveTo(float32(p0.X-ox), float32(p0.Y-oy))
	for i := 1; i < len(pts); i++ {
		p := at(i)
		ras.LineTo(float32(p.X-ox), float32(p.Y-oy))
	}
	ras.ClosePath()
	s.any = true
}

func unit(v vec.Vec2) (vec.Vec2, float64) {
	l := v.Length()
	if l == 0 {
		return vec.Vec2{}, 0
	}
	return v.Mul(1 / l), l
}
