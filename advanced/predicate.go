package advanced

import (
	"math"
	"math/big"
)

// Exact sign tests for the two geometric questions the construction asks:
// which side of a plane a point is on, and whether a point is inside a
// circumsphere. The incremental algorithm consumes only the signs, and a
// wrong sign on a near-tie (which symmetric point sets produce constantly)
// corrupts the triangulation, so the signs must be exact.
//
// Each determinant is evaluated in float64 first, together with the static
// error bounds from Shewchuk's "Adaptive Precision Floating-Point
// Arithmetic and Fast Robust Geometric Predicates". When the magnitude
// clears its bound the floating point sign is certain; otherwise we
// re-evaluate the same determinant in exact rational arithmetic.
const (
	epsilon     = 1.0 / (1 << 53)
	o3dErrBound = (7.0 + 56.0*epsilon) * epsilon
	ispErrBound = (16.0 + 224.0*epsilon) * epsilon
)

// Orient3D returns the sign of the orientation determinant of the
// tetrahedron (a, b, c, d): positive when d lies below the plane through
// a, b, c (with those appearing counterclockwise seen from above), negative
// when it lies above, and zero when the four points are coplanar.
func Orient3D(a, b, c, d Point) int {
	adx := a.X - d.X
	bdx := b.X - d.X
	cdx := c.X - d.X
	ady := a.Y - d.Y
	bdy := b.Y - d.Y
	cdy := c.Y - d.Y
	adz := a.Z - d.Z
	bdz := b.Z - d.Z
	cdz := c.Z - d.Z

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady

	det := adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*math.Abs(adz) +
		(math.Abs(cdxady)+math.Abs(adxcdy))*math.Abs(bdz) +
		(math.Abs(adxbdy)+math.Abs(bdxady))*math.Abs(cdz)
	errBound := o3dErrBound * permanent
	if det > errBound {
		return 1
	}
	if det < -errBound {
		return -1
	}
	return orient3DExact(a, b, c, d)
}

// InSphereSign returns +1 when query lies strictly inside the circumsphere
// of the tetrahedron (a, b, c, d), -1 when strictly outside, and 0 when it
// lies exactly on the sphere or the tetrahedron is degenerate (coplanar
// vertices define no circumsphere). The raw insphere determinant flips
// sign with the orientation of the tetrahedron, so the result is
// normalized by Orient3D: callers get the same answer no matter what order
// the tetrahedron's vertices are given in.
func InSphereSign(a, b, c, d, query Point) int {
	orient := Orient3D(a, b, c, d)
	if orient == 0 {
		return 0
	}
	return orient * insphere(a, b, c, d, query)
}

func insphere(a, b, c, d, e Point) int {
	aex := a.X - e.X
	bex := b.X - e.X
	cex := c.X - e.X
	dex := d.X - e.X
	aey := a.Y - e.Y
	bey := b.Y - e.Y
	cey := c.Y - e.Y
	dey := d.Y - e.Y
	aez := a.Z - e.Z
	bez := b.Z - e.Z
	cez := c.Z - e.Z
	dez := d.Z - e.Z

	aexbey := aex * bey
	bexaey := bex * aey
	ab := aexbey - bexaey
	bexcey := bex * cey
	cexbey := cex * bey
	bc := bexcey - cexbey
	cexdey := cex * dey
	dexcey := dex * cey
	cd := cexdey - dexcey
	dexaey := dex * aey
	aexdey := aex * dey
	da := dexaey - aexdey
	aexcey := aex * cey
	cexaey := cex * aey
	ac := aexcey - cexaey
	bexdey := bex * dey
	dexbey := dex * bey
	bd := bexdey - dexbey

	abc := aez*bc - bez*ac + cez*ab
	bcd := bez*cd - cez*bd + dez*bc
	cda := cez*da + dez*ac + aez*cd
	dab := dez*ab + aez*bd + bez*da

	alift := aex*aex + aey*aey + aez*aez
	blift := bex*bex + bey*bey + bez*bez
	clift := cex*cex + cey*cey + cez*cez
	dlift := dex*dex + dey*dey + dez*dez

	det := (dlift*abc - clift*dab) + (blift*cda - alift*bcd)

	aezplus := math.Abs(aez)
	bezplus := math.Abs(bez)
	cezplus := math.Abs(cez)
	dezplus := math.Abs(dez)
	aexbeyplus := math.Abs(aexbey)
	bexaeyplus := math.Abs(bexaey)
	bexceyplus := math.Abs(bexcey)
	cexbeyplus := math.Abs(cexbey)
	cexdeyplus := math.Abs(cexdey)
	dexceyplus := math.Abs(dexcey)
	dexaeyplus := math.Abs(dexaey)
	aexdeyplus := math.Abs(aexdey)
	aexceyplus := math.Abs(aexcey)
	cexaeyplus := math.Abs(cexaey)
	bexdeyplus := math.Abs(bexdey)
	dexbeyplus := math.Abs(dexbey)
	permanent := ((cexdeyplus+dexceyplus)*bezplus+
		(dexbeyplus+bexdeyplus)*cezplus+
		(bexceyplus+cexbeyplus)*dezplus)*alift +
		((dexaeyplus+aexdeyplus)*cezplus+
			(aexceyplus+cexaeyplus)*dezplus+
			(cexdeyplus+dexceyplus)*aezplus)*blift +
		((aexbeyplus+bexaeyplus)*dezplus+
			(bexdeyplus+dexbeyplus)*aezplus+
			(dexaeyplus+aexdeyplus)*bezplus)*clift +
		((bexceyplus+cexbeyplus)*aezplus+
			(cexaeyplus+aexceyplus)*bezplus+
			(aexbeyplus+bexaeyplus)*cezplus)*dlift
	errBound := ispErrBound * permanent
	if det > errBound {
		return 1
	}
	if det < -errBound {
		return -1
	}
	return insphereExact(a, b, c, d, e)
}

// Exact fallbacks. Every float64 is a rational, and differences and
// products of rationals are exact, so evaluating the same expressions over
// big.Rat yields the true sign.

func ratSub(x, y float64) *big.Rat {
	r := new(big.Rat).SetFloat64(x)
	return r.Sub(r, new(big.Rat).SetFloat64(y))
}

// ratDet2 computes x1*y2 - x2*y1.
func ratDet2(x1, y1, x2, y2 *big.Rat) *big.Rat {
	p := new(big.Rat).Mul(x1, y2)
	q := new(big.Rat).Mul(x2, y1)
	return p.Sub(p, q)
}

func ratNorm2(x, y, z *big.Rat) *big.Rat {
	n := new(big.Rat).Mul(x, x)
	n.Add(n, new(big.Rat).Mul(y, y))
	return n.Add(n, new(big.Rat).Mul(z, z))
}

func orient3DExact(a, b, c, d Point) int {
	adx, ady, adz := ratSub(a.X, d.X), ratSub(a.Y, d.Y), ratSub(a.Z, d.Z)
	bdx, bdy, bdz := ratSub(b.X, d.X), ratSub(b.Y, d.Y), ratSub(b.Z, d.Z)
	cdx, cdy, cdz := ratSub(c.X, d.X), ratSub(c.Y, d.Y), ratSub(c.Z, d.Z)

	det := new(big.Rat).Mul(adz, ratDet2(bdx, bdy, cdx, cdy))
	det.Add(det, new(big.Rat).Mul(bdz, ratDet2(cdx, cdy, adx, ady)))
	det.Add(det, new(big.Rat).Mul(cdz, ratDet2(adx, ady, bdx, bdy)))
	return det.Sign()
}

func insphereExact(a, b, c, d, e Point) int {
	aex, aey, aez := ratSub(a.X, e.X), ratSub(a.Y, e.Y), ratSub(a.Z, e.Z)
	bex, bey, bez := ratSub(b.X, e.X), ratSub(b.Y, e.Y), ratSub(b.Z, e.Z)
	cex, cey, cez := ratSub(c.X, e.X), ratSub(c.Y, e.Y), ratSub(c.Z, e.Z)
	dex, dey, dez := ratSub(d.X, e.X), ratSub(d.Y, e.Y), ratSub(d.Z, e.Z)

	ab := ratDet2(aex, aey, bex, bey)
	bc := ratDet2(bex, bey, cex, cey)
	cd := ratDet2(cex, cey, dex, dey)
	da := ratDet2(dex, dey, aex, aey)
	ac := ratDet2(aex, aey, cex, cey)
	bd := ratDet2(bex, bey, dex, dey)

	abc := new(big.Rat).Mul(aez, bc)
	abc.Sub(abc, new(big.Rat).Mul(bez, ac))
	abc.Add(abc, new(big.Rat).Mul(cez, ab))

	bcd := new(big.Rat).Mul(bez, cd)
	bcd.Sub(bcd, new(big.Rat).Mul(cez, bd))
	bcd.Add(bcd, new(big.Rat).Mul(dez, bc))

	cda := new(big.Rat).Mul(cez, da)
	cda.Add(cda, new(big.Rat).Mul(dez, ac))
	cda.Add(cda, new(big.Rat).Mul(aez, cd))

	dab := new(big.Rat).Mul(dez, ab)
	dab.Add(dab, new(big.Rat).Mul(aez, bd))
	dab.Add(dab, new(big.Rat).Mul(bez, da))

	alift := ratNorm2(aex, aey, aez)
	blift := ratNorm2(bex, bey, bez)
	clift := ratNorm2(cex, cey, cez)
	dlift := ratNorm2(dex, dey, dez)

	det := new(big.Rat).Mul(dlift, abc)
	det.Sub(det, new(big.Rat).Mul(clift, dab))
	det.Add(det, new(big.Rat).Mul(blift, cda))
	det.Sub(det, new(big.Rat).Mul(alift, bcd))
	return det.Sign()
}
