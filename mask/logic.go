package mask

// And returns the element-wise conjunction of two equal-length masks.
func And(a, b []bool) []bool {
	sameLen("and", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] && b[i]
	}
	return out
}

// Or returns the element-wise disjunction of two equal-length masks.
func Or(a, b []bool) []bool {
	sameLen("or", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] || b[i]
	}
	return out
}

// Xor returns the element-wise exclusive disjunction of two equal-length
// masks.
func Xor(a, b []bool) []bool {
	sameLen("xor", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

// Not returns the element-wise negation of m.
func Not(m []bool) []bool {
	out := make([]bool, len(m))
	for i, x := range m {
		out[i] = !x
	}
	return out
}

// Count returns the number of true elements of m.
func Count(m []bool) int {
	n := 0
	for _, x := range m {
		if x {
			n++
		}
	}
	return n
}

// TrueIndices returns the indices of the true elements of m, ascending.
func TrueIndices(m []bool) []int {
	var out []int
	for i, x := range m {
		if x {
			out = append(out, i)
		}
	}
	return out
}
