package orc

// convertElementFunc converts the logical element at index i from the
// reader's scratch input vector into the output vector, at the same index.
// It is supplied by each conversion reader and may itself mark the output
// slot null (parse failure, range overflow, NaN source).
type convertElementFunc func(i int)

// convertVector is the shared vectorized driver: given an input vector's
// null/repeating state, an output vector, a batch size and a per-element
// conversion function, it walks the null mask and invokes the conversion on
// every non-null logical position, propagating nulls and the repeating flag
// without the conversion reader ever handling those cases itself.
func convertVector(inputNoNulls, inputIsRepeating bool, inputIsNull []bool, output *ColumnVector, batchSize int, convertElement convertElementFunc) {
	output.reset(batchSize)

	switch {
	case inputIsRepeating:
		output.IsRepeating = true
		if inputNoNulls || !isNull(inputIsNull, 0) {
			convertElement(0)
		} else {
			output.NoNulls = false
			output.IsNull = ensureNullMask(output.IsNull, batchSize)
			output.IsNull[0] = true
		}

	case inputNoNulls:
		for i := 0; i < batchSize; i++ {
			convertElement(i)
		}

	default:
		for i := 0; i < batchSize; i++ {
			if isNull(inputIsNull, i) {
				output.SetNull(i)
			} else {
				convertElement(i)
			}
		}
	}
}

func isNull(mask []bool, i int) bool {
	return i < len(mask) && mask[i]
}

func ensureNullMask(mask []bool, n int) []bool {
	if cap(mask) < n {
		return make([]bool, n)
	}
	mask = mask[:n]
	for i := range mask {
		mask[i] = false
	}
	return mask
}
