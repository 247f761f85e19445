package cayley

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlgroup/perm"
)

// Relabel returns the table obtained by renaming every element i of t to
// p[i]. In cell terms: out[p[a]][p[b]] = p[t[a][b]]. The forward scatter
// writes each output cell exactly once, so no inverse permutation is
// needed.
//
// Laws (tested): Relabel(t, identity) equals t cellwise, and
// Relabel(Relabel(t, p), p.Inverse()) restores t exactly.
//
// Returns perm.ErrNotPermutation (wrapped) when p is not a valid
// permutation of t's carrier. t itself is not re-validated — Relabel is a
// hot inner loop of CanonicalKey and callers have already passed Validate.
//
// Complexity: O(n²).
func Relabel(t Table, p perm.Perm) (Table, error) {
	n := len(t)
	if len(p) != n {
		return nil, fmt.Errorf("cayley: permutation of %d elements against %d×%d table: %w", len(p), n, n, perm.ErrNotPermutation)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cayley: %w", err)
	}

	out := make(Table, n)
	for i := range out {
		out[i] = make([]int, n)
	}
	relabelInto(out, t, p)

	return out, nil
}

// relabelInto scatters t renamed by p into dst, which must be n×n.
// Shared by Relabel and the canonical-key inner loop to keep the latter
// allocation-free per permutation.
func relabelInto(dst, t Table, p perm.Perm) {
	for a, row := range t {
		pa := p[a]
		for b, v := range row {
			dst[pa][p[b]] = p[v]
		}
	}
}

// Serialize renders t row-major with "," between entries and "|" between
// rows, e.g. "0,1|1,0". The delimiters keep multi-digit indices
// unambiguous, and byte-wise comparison of two serializations of
// same-size tables is a total order — exactly what the canonical-key
// minimum needs.
func Serialize(t Table) string {
	var sb strings.Builder
	for i, row := range t {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}

	return sb.String()
}
