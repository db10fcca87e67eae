package generator

// IsTrivial reports whether a digit sequence is an unrealistic pattern:
// every digit identical, or (for sequences of 6+ digits) the whole
// sequence stepping by exactly +1 or -1 between every adjacent pair.
// The monotonic check only fires when the entire sequence is a run;
// partial runs inside an otherwise mixed number pass through.
func IsTrivial(seq string) bool {
	if len(seq) == 0 {
		return false
	}

	allSame := true
	for i := 1; i < len(seq); i++ {
		if seq[i] != seq[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return true
	}

	if len(seq) < 6 {
		return false
	}

	inc, dec := true, true
	for i := 1; i < len(seq); i++ {
		diff := int(seq[i]) - int(seq[i-1])
		if diff != 1 {
			inc = false
		}
		if diff != -1 {
			dec = false
		}
	}
	return inc || dec
}
