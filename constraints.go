package quiver

// Number constrains the element types vectors and matrices may hold: any
// integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float constrains element types for operations that divide, normalize or
// take roots.
type Float interface {
	~float32 | ~float64
}
