package domain

// NormalizeResponsibilityCode maps a single-character regulatory
// responsibility code to its canonical form: codes 7, 4, 0 and W all mean
// lessor-responsible and normalize to "1"; codes 8 and 9 normalize to "9";
// everything else passes through unchanged.
func NormalizeResponsibilityCode(code string) string {
	switch code {
	case "7", "4", "0", "W":
		return "1"
	case "8", "9":
		return "9"
	default:
		return code
	}
}

// IsResponsibilityEquivalent reports whether two responsibility codes resolve
// to the same canonical form.
func IsResponsibilityEquivalent(a, b string) bool {
	return NormalizeResponsibilityCode(a) == NormalizeResponsibilityCode(b)
}
