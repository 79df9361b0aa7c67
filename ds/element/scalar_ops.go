package element

// Arithmetic over scalars.
// Addition is only defined between identical variants. Mixing variants
// (including Absent) yields Absent instead of an error, so that merging
// heterogeneous data degrades instead of failing.

func Add(left Scalar, right Scalar) Scalar {
	if left.Kind() != right.Kind() {
		return Absent{}
	}
	switch l := left.(type) {
	case Uint8:
		return l + right.(Uint8)
	case Int8:
		return l + right.(Int8)
	case Int16:
		return l + right.(Int16)
	case Int32:
		return l + right.(Int32)
	case Float32:
		return l + right.(Float32)
	case Float64:
		return l + right.(Float64)
	default:
		return Absent{}
	}
}

// The additive identity, for generic reductions.
func Zero() Scalar {
	return Absent{}
}

func IsZero(s Scalar) bool {
	return s.Kind() == KIND_ABSENT
}
