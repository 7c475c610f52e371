package glossary

// Dedupe returns items with every repeated element removed, keeping the first
// occurrence of each and preserving their relative order. Membership is
// tracked in a set, so the cost is linear in len(items).
func Dedupe[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupeLines removes repeated raw lines. It is the whole-line variant used
// when no field parsing is wanted.
func DedupeLines(lines []string) []string {
	return Dedupe(lines)
}
