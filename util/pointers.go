package util

// Ptr returns a pointer to v. Request entities use pointer fields so that an
// unset field is omitted from partial updates.
func Ptr[T any](v T) *T {
	return &v
}

// MaskSecret hides sensitive parts of a string for safe display in logs.
// If the string is shorter than visiblePrefix, it is fully masked.
func MaskSecret(s string, visiblePrefix int) string {
	if len(s) <= visiblePrefix {
		return "***"
	}
	return s[:visiblePrefix] + "***"
}
