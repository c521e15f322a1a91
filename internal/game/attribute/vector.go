package attribute

import "math"

// Vector holds one value per Attribute, addressed by ordinal.
//
// Array rather than struct or map so reads in the evaluation loop are a
// single indexed load with no hashing and no allocation.
type Vector [AttributeCount]float32

// Get returns the value stored for a.
func (v *Vector) Get(a Attribute) float32 {
	return v[a]
}

// Set overwrites the value stored for a.
func (v *Vector) Set(a Attribute, value float32) {
	v[a] = value
}

// Add accumulates delta into the value stored for a.
func (v *Vector) Add(a Attribute, delta float32) {
	v[a] += delta
}

// Clear zeroes every entry in place.
func (v *Vector) Clear() {
	*v = Vector{}
}

// Finite reports whether every entry is neither NaN nor infinite.
func (v *Vector) Finite() bool {
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
