package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a single result that can be printed as text lines or encoded
// as JSON/YAML.
type Record interface {
	Lines(s Styler) []string
}

// Heading is a section title followed by an underline of '=' characters.
type Heading struct {
	Text string `json:"heading" yaml:"heading"`
}

// Lines implements Record.
func (h Heading) Lines(s Styler) []string {
	return []string{s.Title(h.Text), strings.Repeat("=", len([]rune(h.Text)))}
}

// PalindromeCheck is the verdict for a single palindrome query.
type PalindromeCheck struct {
	N          int64  `json:"n" yaml:"n"`
	Palindrome bool   `json:"palindrome" yaml:"palindrome"`
	Strategy   string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// Lines implements Record.
func (c PalindromeCheck) Lines(s Styler) []string {
	verdict := s.No("not a palindrome")
	if c.Palindrome {
		verdict = s.Yes("a palindrome")
	}

	return []string{fmt.Sprintf("%d is %s", c.N, verdict)}
}

// PalindromeRow is the demo table form of a palindrome verdict, with N
// right-aligned in six columns.
type PalindromeRow struct {
	N          int64  `json:"n" yaml:"n"`
	Palindrome bool   `json:"palindrome" yaml:"palindrome"`
	Strategy   string `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// Lines implements Record.
func (r PalindromeRow) Lines(s Styler) []string {
	verdict := s.No("Not palindrome")
	if r.Palindrome {
		verdict = s.Yes("Palindrome")
	}

	return []string{fmt.Sprintf("%6d -> %s", r.N, verdict)}
}

// PrimeCheck is the verdict for a single primality query. Next and Twin are
// only filled for primes; Factors only for composites.
type PrimeCheck struct {
	N       int64   `json:"n" yaml:"n"`
	Prime   bool    `json:"prime" yaml:"prime"`
	Next    *int64  `json:"next,omitempty" yaml:"next,omitempty"`
	Twin    bool    `json:"twin,omitempty" yaml:"twin,omitempty"`
	Factors []int64 `json:"factors,omitempty" yaml:"factors,omitempty"`
}

// Lines implements Record.
func (c PrimeCheck) Lines(s Styler) []string {
	if !c.Prime {
		out := []string{fmt.Sprintf("%d is %s", c.N, s.No("not prime"))}
		if len(c.Factors) > 1 {
			out = append(out, "Prime factors: "+formatList(c.Factors))
		}

		return out
	}

	out := []string{fmt.Sprintf("%d is %s", c.N, s.Yes("prime"))}
	if c.Next != nil {
		out = append(out, fmt.Sprintf("Next prime after %d: %d", c.N, *c.Next))
	}
	if c.Twin {
		out = append(out, fmt.Sprintf("%d is part of a twin prime pair!", c.N))
	}

	return out
}

// Comparison lists the verdicts of two equivalent testers side by side.
type Comparison struct {
	N     int64 `json:"n" yaml:"n"`
	Plain bool  `json:"plain" yaml:"plain"`
	Fast  bool  `json:"fast" yaml:"fast"`
}

// Lines implements Record.
func (c Comparison) Lines(s Styler) []string {
	word := func(ok bool) string {
		if ok {
			return s.Yes("Prime")
		}
		return s.No("Not prime")
	}

	return []string{fmt.Sprintf("%3d -> %s | Optimized: %s", c.N, word(c.Plain), word(c.Fast))}
}

// Sequence is a titled list of integers.
type Sequence struct {
	Title  string  `json:"title,omitempty" yaml:"title,omitempty"`
	Values []int64 `json:"values" yaml:"values"`
}

// Lines implements Record.
func (q Sequence) Lines(s Styler) []string {
	if q.Title == "" {
		return []string{formatList(q.Values)}
	}

	return []string{s.Title(q.Title + ":"), formatList(q.Values)}
}

// Factorization is n written as a product of its prime factors.
type Factorization struct {
	N       int64   `json:"n" yaml:"n"`
	Factors []int64 `json:"factors" yaml:"factors"`
}

// Lines implements Record.
func (f Factorization) Lines(Styler) []string {
	if len(f.Factors) == 0 {
		return []string{fmt.Sprintf("%d has no prime factors", f.N)}
	}
	parts := make([]string, len(f.Factors))
	for i, v := range f.Factors {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return []string{fmt.Sprintf("%d = %s", f.N, strings.Join(parts, " × "))}
}

// NextPrime is the smallest prime above N.
type NextPrime struct {
	N    int64 `json:"n" yaml:"n"`
	Next int64 `json:"next" yaml:"next"`
}

// Lines implements Record.
func (p NextPrime) Lines(Styler) []string {
	return []string{fmt.Sprintf("Next prime after %d: %d", p.N, p.Next)}
}

// TwinCheck is the twin-prime membership verdict for N.
type TwinCheck struct {
	N    int64 `json:"n" yaml:"n"`
	Twin bool  `json:"twin" yaml:"twin"`
}

// Lines implements Record.
func (c TwinCheck) Lines(s Styler) []string {
	if c.Twin {
		return []string{fmt.Sprintf("%d is %s of a twin prime pair", c.N, s.Yes("part"))}
	}

	return []string{fmt.Sprintf("%d is %s of a twin prime pair", c.N, s.No("not part"))}
}

// formatList renders values the way the demos printed lists: [a, b, c].
func formatList(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
