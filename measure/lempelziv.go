package measure

// LempelZiv76 counts the exhaustive-history factorization of a symbol
// sequence (Lempel & Ziv 1976, Kaspar–Schuster scan): the number of
// distinct phrases produced when the sequence is parsed left to right,
// each phrase being the shortest substring not reproducible from the
// prefix already seen. Higher counts mean less compressible, more
// complex sequences.
//
// Works on any integer alphabet; binary is the classic case.
//
// Errors: ErrEmptySequence.
//
// Complexity: O(n²) worst case, O(n) memory.
func LempelZiv76(symbols []int) (int, error) {
	n := len(symbols)
	if n == 0 {
		return 0, ErrEmptySequence
	}
	if n == 1 {
		return 1, nil
	}

	c, l := 1, 1
	i, k, kmax := 0, 1, 1
	for {
		if symbols[i+k-1] == symbols[l+k-1] {
			k++
			if l+k > n {
				c++
				break
			}
			continue
		}
		if k > kmax {
			kmax = k
		}
		i++
		if i != l {
			k = 1
			continue
		}
		c++
		l += kmax
		if l+1 > n {
			break
		}
		i, k, kmax = 0, 1, 1
	}
	return c, nil
}
