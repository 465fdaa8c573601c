package fsname

import "strings"

// Rules selects which characters and suffixes are forbidden in a candidate.
type Rules struct {
	// AllowSubdirectory permits path separators inside the candidate so it
	// can name a nested directory instead of a single component.
	AllowSubdirectory bool
	// InterchangeableSlashes treats forward and backward slashes as the
	// same separator, so both are blocked together when separators are
	// forbidden.
	InterchangeableSlashes bool
	// WindowsCompat applies the stricter Windows filesystem rules: more
	// forbidden characters, control codes, and no trailing dot or space.
	WindowsCompat bool
}

// DefaultRules returns the rules used when a caller has no special
// requirements: single component only, slashes interchangeable.
func DefaultRules(windowsCompat bool) Rules {
	return Rules{InterchangeableSlashes: true, WindowsCompat: windowsCompat}
}

const windowsForbiddenChars = `<>:"|?*`

// IsValid reports whether candidate is a legal filename or, when
// subdirectories are allowed, a legal directory path fragment.
//
// A candidate ending in a separator is rejected even when subdirectories
// are allowed. When subdirectories are allowed the suffix rules apply to
// the whole string, not to each segment; the validator never splits and
// re-validates segments individually.
func IsValid(candidate string, rules Rules) bool {
	if candidate == "" || candidate == "." || candidate == ".." {
		return false
	}

	for i := 0; i < len(candidate); i++ {
		if forbiddenByte(candidate[i], rules) {
			return false
		}
	}

	return !forbiddenSuffix(candidate, rules)
}

func forbiddenByte(b byte, rules Rules) bool {
	if b == 0 {
		return true
	}
	if b == '/' && !rules.AllowSubdirectory {
		return true
	}
	if b == '\\' && !rules.AllowSubdirectory && (rules.WindowsCompat || rules.InterchangeableSlashes) {
		return true
	}
	if rules.WindowsCompat {
		if b < 32 {
			return true
		}
		if strings.IndexByte(windowsForbiddenChars, b) >= 0 {
			return true
		}
	}
	return false
}

func forbiddenSuffix(candidate string, rules Rules) bool {
	last := candidate[len(candidate)-1]
	if last == '/' || last == '\\' {
		return true
	}
	if rules.WindowsCompat && (last == '.' || last == ' ') {
		return true
	}
	return false
}

// HasTraversalSequences reports whether candidate contains a literal
// relative traversal sequence such as "./" or "../" (and ".\" or "..\"
// when checkWindowsStyle is set). It performs no decoding, so
// percent-encoded sequences pass; callers must decode first if that
// matters.
func HasTraversalSequences(candidate string, checkWindowsStyle bool) bool {
	// "../" necessarily contains "./", so one check covers both.
	if strings.Contains(candidate, "./") {
		return true
	}
	if checkWindowsStyle && strings.Contains(candidate, `.\`) {
		return true
	}
	return false
}
