// SPDX-License-Identifier: MIT

package embedding

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/diffgap/simplex"
)

// Kind identifies an embedding.
type Kind string

// Built-in kinds.
const (
	Classical Kind = "classical"
	Log       Kind = "log"
	Power     Kind = "power"
	Curvature Kind = "curvature"
)

// LogStabilizer is the additive δ in ln(x+δ).
const LogStabilizer = 1e-10

var (
	// ErrUnknownKind is returned for a kind missing from the registry.
	ErrUnknownKind = errors.New("embedding: unknown kind")

	// ErrDuplicateKind is returned when registering a kind twice.
	ErrDuplicateKind = errors.New("embedding: duplicate kind")

	// ErrInvalidEmbedding is returned for an embedding with an empty kind or nil Fn.
	ErrInvalidEmbedding = errors.New("embedding: invalid embedding")
)

// Func maps one non-negative coordinate to a real number. It must be pure.
type Func func(x float64) float64

// Vector is an embedded point: three reals with no simplex constraint.
type Vector [simplex.Dim]float64

// Embedding is a named coordinate-wise transform.
type Embedding struct {
	Kind Kind
	Name string // human-readable label for rendering layers
	Fn   Func
}

// Apply embeds a single point.
func (e Embedding) Apply(p simplex.Point) Vector {
	var v Vector
	for k, x := range p {
		v[k] = e.Fn(x)
	}

	return v
}

// ApplyAll embeds every point of ps in order.
func (e Embedding) ApplyAll(ps simplex.PointSet) []Vector {
	out := make([]Vector, len(ps))
	for i, p := range ps {
		out[i] = e.Apply(p)
	}

	return out
}

func identity(x float64) float64 { return x }

func logStable(x float64) float64 { return math.Log(x + LogStabilizer) }

func sqrtMap(x float64) float64 { return math.Sqrt(x) }

// curvature is 2·asin(√x); √x is clamped into [0,1] so rounding just above
// 1 cannot leave the arcsine domain.
func curvature(x float64) float64 {
	s := math.Sqrt(x)
	if s > 1 {
		s = 1
	}

	return 2 * math.Asin(s)
}

// Defaults returns the four built-in embeddings in canonical order.
func Defaults() []Embedding {
	return []Embedding{
		{Kind: Classical, Name: "Classical", Fn: identity},
		{Kind: Log, Name: "Logarithmic", Fn: logStable},
		{Kind: Power, Name: "Power", Fn: sqrtMap},
		{Kind: Curvature, Name: "Curvature", Fn: curvature},
	}
}

// Kinds returns the built-in kinds in canonical order.
func Kinds() []Kind {
	return []Kind{Classical, Log, Power, Curvature}
}

// Lookup returns the built-in embedding for kind.
func Lookup(kind Kind) (Embedding, error) {
	for _, e := range Defaults() {
		if e.Kind == kind {
			return e, nil
		}
	}

	return Embedding{}, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// Embed applies the built-in embedding kind to p.
func Embed(p simplex.Point, kind Kind) (Vector, error) {
	e, err := Lookup(kind)
	if err != nil {
		return Vector{}, err
	}

	return e.Apply(p), nil
}
