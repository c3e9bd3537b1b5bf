package mesh

import "math"

// Default segment counts for the curved primitives. 36 radial segments keeps
// silhouettes smooth at tableau viewing distances without inflating the
// vertex buffers.
const (
	radialSegments = 36
	sphereStacks   = 18
	torusTubeSegs  = 18
	torusTubeRad   = 0.25
)

// geometry holds generated vertex data pending GPU upload. Vertices are
// interleaved as position (3), normal (3), UV (2), 8 floats per vertex.
type geometry struct {
	vertices []float32
	indices  []uint32
}

func (g *geometry) vertexCount() int {
	return len(g.vertices) / 8
}

// vertex appends one interleaved vertex and returns its index.
func (g *geometry) vertex(px, py, pz, nx, ny, nz, u, v float32) uint32 {
	idx := uint32(g.vertexCount())
	g.vertices = append(g.vertices, px, py, pz, nx, ny, nz, u, v)
	return idx
}

func (g *geometry) triangle(a, b, c uint32) {
	g.indices = append(g.indices, a, b, c)
}

func (g *geometry) quad(a, b, c, d uint32) {
	g.triangle(a, b, c)
	g.triangle(a, c, d)
}

// planeGeometry builds a 2x2 plane in the XZ plane, centered at the origin,
// facing +Y.
func planeGeometry() *geometry {
	g := &geometry{}
	a := g.vertex(-1, 0, 1, 0, 1, 0, 0, 0)
	b := g.vertex(1, 0, 1, 0, 1, 0, 1, 0)
	c := g.vertex(1, 0, -1, 0, 1, 0, 1, 1)
	d := g.vertex(-1, 0, -1, 0, 1, 0, 0, 1)
	g.quad(a, b, c, d)
	return g
}

// boxGeometry builds a unit cube centered at the origin, 4 vertices per face
// so each face carries its own flat normal and full UV range.
func boxGeometry() *geometry {
	g := &geometry{}
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		// +Z
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		// -Z
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		// +X
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		// -X
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		// +Y
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		// -Y
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, f := range faces {
		var ids [4]uint32
		for i, c := range f.corners {
			ids[i] = g.vertex(c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2], uvs[i][0], uvs[i][1])
		}
		g.quad(ids[0], ids[1], ids[2], ids[3])
	}
	return g
}

// prismGeometry builds a triangular prism with a unit-triangle cross-section
// in the XY plane (apex at +Y), extruded one unit along Z and centered at the
// origin.
func prismGeometry() *geometry {
	g := &geometry{}

	// Front and back triangular caps.
	f0 := g.vertex(-0.5, -0.5, 0.5, 0, 0, 1, 0, 0)
	f1 := g.vertex(0.5, -0.5, 0.5, 0, 0, 1, 1, 0)
	f2 := g.vertex(0, 0.5, 0.5, 0, 0, 1, 0.5, 1)
	g.triangle(f0, f1, f2)

	b0 := g.vertex(0.5, -0.5, -0.5, 0, 0, -1, 0, 0)
	b1 := g.vertex(-0.5, -0.5, -0.5, 0, 0, -1, 1, 0)
	b2 := g.vertex(0, 0.5, -0.5, 0, 0, -1, 0.5, 1)
	g.triangle(b0, b1, b2)

	// Bottom face.
	d0 := g.vertex(-0.5, -0.5, -0.5, 0, -1, 0, 0, 0)
	d1 := g.vertex(0.5, -0.5, -0.5, 0, -1, 0, 1, 0)
	d2 := g.vertex(0.5, -0.5, 0.5, 0, -1, 0, 1, 1)
	d3 := g.vertex(-0.5, -0.5, 0.5, 0, -1, 0, 0, 1)
	g.quad(d0, d1, d2, d3)

	// Slanted side faces. Edge vector from base corner to apex determines the
	// outward normal in the XY plane.
	ln := normalize3f(-1, 0.5, 0)
	l0 := g.vertex(-0.5, -0.5, 0.5, ln[0], ln[1], ln[2], 0, 0)
	l1 := g.vertex(0, 0.5, 0.5, ln[0], ln[1], ln[2], 1, 0)
	l2 := g.vertex(0, 0.5, -0.5, ln[0], ln[1], ln[2], 1, 1)
	l3 := g.vertex(-0.5, -0.5, -0.5, ln[0], ln[1], ln[2], 0, 1)
	g.quad(l0, l1, l2, l3)

	rn := normalize3f(1, 0.5, 0)
	r0 := g.vertex(0, 0.5, 0.5, rn[0], rn[1], rn[2], 0, 0)
	r1 := g.vertex(0.5, -0.5, 0.5, rn[0], rn[1], rn[2], 1, 0)
	r2 := g.vertex(0.5, -0.5, -0.5, rn[0], rn[1], rn[2], 1, 1)
	r3 := g.vertex(0, 0.5, -0.5, rn[0], rn[1], rn[2], 0, 1)
	g.quad(r0, r1, r2, r3)

	return g
}

// cylinderGeometry builds a capped cylinder frustum with its base circle on
// the XZ plane at y=0 and its top circle at y=1. A topRadius equal to
// bottomRadius yields a straight cylinder; a smaller topRadius yields the
// tapered cylinder.
func cylinderGeometry(bottomRadius, topRadius float32) *geometry {
	g := &geometry{}

	// Lateral surface. The outward normal of a frustum wall tilts by the
	// radius delta over the unit height.
	for i := 0; i <= radialSegments; i++ {
		theta := float64(i) / radialSegments * 2 * math.Pi
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		n := normalize3f(cos, bottomRadius-topRadius, sin)
		u := float32(i) / radialSegments
		g.vertex(cos*bottomRadius, 0, sin*bottomRadius, n[0], n[1], n[2], u, 0)
		g.vertex(cos*topRadius, 1, sin*topRadius, n[0], n[1], n[2], u, 1)
	}
	for i := 0; i < radialSegments; i++ {
		base := uint32(i * 2)
		g.quad(base, base+2, base+3, base+1)
	}

	addDisk(g, 0, bottomRadius, -1)
	if topRadius > 0 {
		addDisk(g, 1, topRadius, 1)
	}
	return g
}

// coneGeometry builds a capped cone with a unit-radius base circle on the XZ
// plane at y=0 and its apex at y=1. The apex vertex is duplicated per segment
// so each wall strip carries a correctly tilted normal.
func coneGeometry() *geometry {
	g := &geometry{}

	for i := 0; i < radialSegments; i++ {
		t0 := float64(i) / radialSegments * 2 * math.Pi
		t1 := float64(i+1) / radialSegments * 2 * math.Pi
		tm := (t0 + t1) / 2
		c0, s0 := float32(math.Cos(t0)), float32(math.Sin(t0))
		c1, s1 := float32(math.Cos(t1)), float32(math.Sin(t1))
		cm, sm := float32(math.Cos(tm)), float32(math.Sin(tm))

		n0 := normalize3f(c0, 1, s0)
		n1 := normalize3f(c1, 1, s1)
		nm := normalize3f(cm, 1, sm)

		a := g.vertex(c0, 0, s0, n0[0], n0[1], n0[2], float32(i)/radialSegments, 0)
		b := g.vertex(c1, 0, s1, n1[0], n1[1], n1[2], float32(i+1)/radialSegments, 0)
		apex := g.vertex(0, 1, 0, nm[0], nm[1], nm[2], (float32(i)+0.5)/radialSegments, 1)
		g.triangle(a, apex, b)
	}

	addDisk(g, 0, 1, -1)
	return g
}

// sphereGeometry builds a unit-radius sphere centered at the origin using a
// latitude/longitude grid.
func sphereGeometry() *geometry {
	g := &geometry{}

	for stack := 0; stack <= sphereStacks; stack++ {
		phi := float64(stack) / sphereStacks * math.Pi
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))
		for slice := 0; slice <= radialSegments; slice++ {
			theta := float64(slice) / radialSegments * 2 * math.Pi
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))
			// On the unit sphere the position doubles as the normal.
			g.vertex(x, y, z, x, y, z,
				float32(slice)/radialSegments, 1-float32(stack)/sphereStacks)
		}
	}
	cols := uint32(radialSegments + 1)
	for stack := 0; stack < sphereStacks; stack++ {
		for slice := 0; slice < radialSegments; slice++ {
			a := uint32(stack)*cols + uint32(slice)
			b := a + cols
			g.quad(a, b, b+1, a+1)
		}
	}
	return g
}

// torusGeometry builds a torus with a unit ring radius lying in the XY plane,
// centered at the origin, with a tube radius of torusTubeRad.
func torusGeometry() *geometry {
	g := &geometry{}

	for j := 0; j <= radialSegments; j++ {
		u := float64(j) / radialSegments * 2 * math.Pi
		cu, su := float32(math.Cos(u)), float32(math.Sin(u))
		for i := 0; i <= torusTubeSegs; i++ {
			v := float64(i) / torusTubeSegs * 2 * math.Pi
			cv, sv := float32(math.Cos(v)), float32(math.Sin(v))

			px := (1 + torusTubeRad*cv) * cu
			py := (1 + torusTubeRad*cv) * su
			pz := torusTubeRad * sv
			// Normal points from the ring center-line out to the surface.
			n := normalize3f(px-cu, py-su, pz)
			g.vertex(px, py, pz, n[0], n[1], n[2],
				float32(j)/radialSegments, float32(i)/torusTubeSegs)
		}
	}
	cols := uint32(torusTubeSegs + 1)
	for j := 0; j < radialSegments; j++ {
		for i := 0; i < torusTubeSegs; i++ {
			a := uint32(j)*cols + uint32(i)
			b := a + cols
			g.quad(a, a+1, b+1, b)
		}
	}
	return g
}

// addDisk appends a fan-triangulated cap at the given height. normalY selects
// the facing direction (-1 for a bottom cap, +1 for a top cap) and the winding
// is flipped to match.
func addDisk(g *geometry, y, radius, normalY float32) {
	center := g.vertex(0, y, 0, 0, normalY, 0, 0.5, 0.5)
	var ring []uint32
	for i := 0; i <= radialSegments; i++ {
		theta := float64(i) / radialSegments * 2 * math.Pi
		cos := float32(math.Cos(theta))
		sin := float32(math.Sin(theta))
		ring = append(ring, g.vertex(cos*radius, y, sin*radius, 0, normalY, 0,
			0.5+cos/2, 0.5+sin/2))
	}
	for i := 0; i < radialSegments; i++ {
		if normalY > 0 {
			g.triangle(center, ring[i+1], ring[i])
		} else {
			g.triangle(center, ring[i], ring[i+1])
		}
	}
}

func normalize3f(x, y, z float32) [3]float32 {
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if length == 0 {
		return [3]float32{0, 0, 0}
	}
	inv := 1.0 / length
	return [3]float32{x * inv, y * inv, z * inv}
}
