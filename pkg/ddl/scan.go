package ddl

import "strings"

// Low-level recognizers shared by the column and table parsers.
// Each one takes the unconsumed input and returns the remaining input,
// so parsers compose by threading the rest string through.

// tag consumes an exact literal prefix.
func tag(input, lit string) (rest string, ok bool) {
	if !strings.HasPrefix(input, lit) {
		return input, false
	}
	return input[len(lit):], true
}

// tagNoCase consumes a literal prefix, ignoring ASCII case.
func tagNoCase(input, lit string) (rest string, ok bool) {
	if len(input) < len(lit) || !strings.EqualFold(input[:len(lit)], lit) {
		return input, false
	}
	return input[len(lit):], true
}

// takeUntil consumes everything before the first occurrence of stop.
// The stop string itself is left in rest. Fails when stop never occurs
// or when the match is empty: identifiers are positional in this dialect
// (any byte run up to the next space), but an empty run is never a
// valid identifier.
func takeUntil(input, stop string) (taken, rest string, ok bool) {
	i := strings.Index(input, stop)
	if i <= 0 {
		return "", input, false
	}
	return input[:i], input[i:], true
}

// takeRun consumes a non-empty run of bytes drawn from set.
func takeRun(input, set string) (taken, rest string, ok bool) {
	n := 0
	for n < len(input) && strings.IndexByte(set, input[n]) >= 0 {
		n++
	}
	if n == 0 {
		return "", input, false
	}
	return input[:n], input[n:], true
}

// separatedList consumes a possibly-empty list of items separated by the
// literal sep. Parsing stops, without consuming the separator, as soon as
// the item after a separator fails; the caller decides whether what
// follows is acceptable.
func separatedList[T any](input, sep string, item func(string) (T, string, error)) ([]T, string) {
	first, rest, err := item(input)
	if err != nil {
		return nil, input
	}
	out := []T{first}
	input = rest
	for {
		afterSep, ok := tag(input, sep)
		if !ok {
			return out, input
		}
		next, rest, err := item(afterSep)
		if err != nil {
			return out, input
		}
		out = append(out, next)
		input = rest
	}
}
