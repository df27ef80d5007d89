package quiver

// Maybe runs fn and recovers a panic raised by a contract violation,
// returning it as an error. Panics from any other source are re-raised.
func Maybe(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !isContract(e) {
				panic(r)
			}
			err = e
		}
	}()
	fn()
	return
}

// MaybeValue runs fn and recovers a contract-violation panic into an error.
// On failure the zero value is returned alongside the error.
func MaybeValue[T any](fn func() T) (v T, err error) {
	err = Maybe(func() { v = fn() })
	return
}

// MaybeFloat runs fn and recovers a contract-violation panic into an error.
func MaybeFloat(fn func() float64) (float64, error) {
	return MaybeValue(fn)
}
