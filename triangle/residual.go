package triangle

import (
	"sort"

	"github.com/katalvlaran/prismfit/measure"
)

// Face identifies one face of the triangular cross-section by its two
// vertices.
type Face int

const (
	// FaceA1A2 is the face between vertices A1 and A2 (opposite A3).
	FaceA1A2 Face = iota
	// FaceA2A3 is the face between vertices A2 and A3 (opposite A1).
	FaceA2A3
	// FaceA3A1 is the face between vertices A3 and A1 (opposite A2).
	FaceA3A1
)

// String returns the conventional face name.
func (f Face) String() string {
	switch f {
	case FaceA1A2:
		return "A1-A2"
	case FaceA2A3:
		return "A2-A3"
	case FaceA3A1:
		return "A3-A1"
	default:
		return "A?-A?"
	}
}

// Faces lists all three faces in canonical order.
func Faces() []Face { return []Face{FaceA1A2, FaceA2A3, FaceA3A1} }

// Residual is one diagnostic point: the measurement residual attached to a
// pin contact location along a face. Location is the signed distance from
// the face's lower-indexed vertex (A1 for faces A1-A2 and A3-A1, A2 for
// face A2-A3).
type Residual struct {
	Location float64
	Value    float64
}

// DistributeResiduals spreads the residuals (observed − theoretical) of a
// measurement set over the rule faces for this converged geometry.
//
// Each measurement presses one pin against each of the two faces meeting at
// its top vertex; the pin resting near bottom vertex V contacts face V–top
// at distance l(αV) = (2h + d·(1−cos αV)) / (2·sin αV) from V. Both contact
// points carry the measurement's full residual. Buckets come back sorted by
// location, ready for plotting; faces no measurement touched map to empty
// slices. Pure reporting — the fit itself never reads this.
func (t *Triangle) DistributeResiduals(observed []measure.ObservedMeasurement) map[Face][]Residual {
	buckets := map[Face][]Residual{
		FaceA1A2: {},
		FaceA2A3: {},
		FaceA3A1: {},
	}

	for _, obs := range observed {
		residual := obs.M - t.TheoreticalMeasurement(obs).Value()
		for _, contact := range t.contacts(obs) {
			buckets[contact.face] = append(buckets[contact.face], Residual{
				Location: contact.location,
				Value:    residual,
			})
		}
	}

	for face := range buckets {
		bucket := buckets[face]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].Location < bucket[j].Location
		})
	}
	return buckets
}

// faceContact is one pin/face contact point.
type faceContact struct {
	face     Face
	location float64
}

// contacts computes the two pin contact points of one observation.
func (t *Triangle) contacts(obs measure.ObservedMeasurement) [2]faceContact {
	switch obs.Top {
	case measure.A1:
		// pins near A2 (face A1-A2) and A3 (face A3-A1), both far from A1
		return [2]faceContact{
			{FaceA1A2, t.Side(FaceA1A2) - contactLocation(t.Alpha2(), obs.D, obs.H)},
			{FaceA3A1, t.Side(FaceA3A1) - contactLocation(t.Alpha3(), obs.D, obs.H)},
		}
	case measure.A2:
		// pins near A1 (face A1-A2) and A3 (face A2-A3)
		return [2]faceContact{
			{FaceA1A2, contactLocation(t.Alpha1(), obs.D, obs.H)},
			{FaceA2A3, t.Side(FaceA2A3) - contactLocation(t.Alpha3(), obs.D, obs.H)},
		}
	default: // measure.A3
		// pins near A1 (face A3-A1) and A2 (face A2-A3)
		return [2]faceContact{
			{FaceA3A1, contactLocation(t.Alpha1(), obs.D, obs.H)},
			{FaceA2A3, contactLocation(t.Alpha2(), obs.D, obs.H)},
		}
	}
}
