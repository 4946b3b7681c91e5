package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/intprops/internal/report"
)

func textOf(t *testing.T, recs ...report.Record) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := report.NewRenderer(&buf, report.FormatText, false)
	require.NoError(t, err)
	require.NoError(t, r.RenderAll(recs...))
	require.NoError(t, r.Close())

	return buf.String()
}

func TestNewRenderer_UnknownFormat(t *testing.T) {
	_, err := report.NewRenderer(&bytes.Buffer{}, "csv", false)
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestText_PalindromeCheck(t *testing.T) {
	assert.Equal(t, "121 is a palindrome\n", textOf(t, report.PalindromeCheck{N: 121, Palindrome: true}))
	assert.Equal(t, "123 is not a palindrome\n", textOf(t, report.PalindromeCheck{N: 123}))
}

func TestText_PalindromeRow(t *testing.T) {
	got := textOf(t,
		report.PalindromeRow{N: 121, Palindrome: true},
		report.PalindromeRow{N: -121},
		report.PalindromeRow{N: 1234321, Palindrome: true, Strategy: "arithmetic"},
	)
	assert.Equal(t, "   121 -> Palindrome\n  -121 -> Not palindrome\n1234321 -> Palindrome\n", got)
}

func TestText_PrimeCheck(t *testing.T) {
	next := int64(17)
	got := textOf(t, report.PrimeCheck{N: 13, Prime: true, Next: &next, Twin: true})
	assert.Equal(t, "13 is prime\nNext prime after 13: 17\n13 is part of a twin prime pair!\n", got)

	got = textOf(t, report.PrimeCheck{N: 60, Factors: []int64{2, 2, 3, 5}})
	assert.Equal(t, "60 is not prime\nPrime factors: [2, 2, 3, 5]\n", got)

	// A single factor list (e.g. for 1 or a negative) prints no factor line.
	got = textOf(t, report.PrimeCheck{N: 1})
	assert.Equal(t, "1 is not prime\n", got)
}

func TestText_Misc(t *testing.T) {
	got := textOf(t,
		report.Heading{Text: "Prime Number Checker"},
		report.Comparison{N: 2, Plain: true, Fast: true},
		report.Comparison{N: 100},
		report.Sequence{Title: "Primes up to 30 (using Sieve)", Values: []int64{2, 3, 5}},
		report.Sequence{Values: []int64{}},
		report.Factorization{N: 60, Factors: []int64{2, 2, 3, 5}},
		report.Factorization{N: 1, Factors: []int64{}},
		report.NextPrime{N: 13, Next: 17},
		report.TwinCheck{N: 13, Twin: true},
		report.TwinCheck{N: 23},
	)
	want := strings.Join([]string{
		"Prime Number Checker",
		"====================",
		"  2 -> Prime | Optimized: Prime",
		"100 -> Not prime | Optimized: Not prime",
		"Primes up to 30 (using Sieve):",
		"[2, 3, 5]",
		"[]",
		"60 = 2 × 2 × 3 × 5",
		"1 has no prime factors",
		"Next prime after 13: 17",
		"13 is part of a twin prime pair",
		"23 is not part of a twin prime pair",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewRenderer(&buf, "JSON", true)
	require.NoError(t, err)
	assert.Equal(t, report.FormatJSON, r.Format())

	require.NoError(t, r.Render(report.Factorization{N: 60, Factors: []int64{2, 2, 3, 5}}))
	require.NoError(t, r.Text("ignored in json"))
	require.NoError(t, r.Blank())
	require.NoError(t, r.Render(report.PalindromeCheck{N: 7, Palindrome: true}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var f report.Factorization
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &f))
	assert.Equal(t, report.Factorization{N: 60, Factors: []int64{2, 2, 3, 5}}, f)
	assert.JSONEq(t, `{"n":7,"palindrome":true}`, lines[1])
}

func TestYAML_MultipleDocuments(t *testing.T) {
	var buf bytes.Buffer
	r, err := report.NewRenderer(&buf, report.FormatYAML, false)
	require.NoError(t, err)

	next := int64(5)
	require.NoError(t, r.Render(report.PrimeCheck{N: 3, Prime: true, Next: &next, Twin: true}))
	require.NoError(t, r.Render(report.Sequence{Title: "twins", Values: []int64{3, 5}}))
	require.NoError(t, r.Close())
	require.NoError(t, r.Close(), "second Close is a no-op")

	dec := yaml.NewDecoder(&buf)
	var first map[string]any
	require.NoError(t, dec.Decode(&first))
	assert.Equal(t, 3, first["n"])
	assert.Equal(t, 5, first["next"])
	assert.NotContains(t, first, "factors")

	var second report.Sequence
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, report.Sequence{Title: "twins", Values: []int64{3, 5}}, second)
}

func TestStyler_ZeroValueIsPlain(t *testing.T) {
	var s report.Styler
	assert.Equal(t, "prime", s.Yes("prime"))
	assert.Equal(t, "not prime", s.No("not prime"))
	assert.Equal(t, "Title", s.Title("Title"))
}

func TestStyler_ColorKeepsText(t *testing.T) {
	s := report.NewStyler(&bytes.Buffer{}, true)
	assert.Contains(t, s.Yes("prime"), "prime")
	assert.Contains(t, s.No("composite"), "composite")
}
