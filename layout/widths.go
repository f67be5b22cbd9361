package layout

import "math"

// Table column widths are kept as integer percentages that always add up to
// exactly 100. The functions below are the only place widths get adjusted;
// they are total and never fail. Rounding residue is folded into the last
// eligible column, and when that would push it under the floor of 1 the
// deficit walks backward through earlier columns. Renderers depend on both
// properties: percentages summing to 100 and pixels summing to the table
// width, so the tie-breaks here are contract, not implementation detail.

// NormalizeWidthPct rescales column percentages so they sum to exactly 100,
// each at least 1. A non-positive (or empty of meaning) input sum splits the
// table evenly.
func NormalizeWidthPct(pcts []int) []int {
	n := len(pcts)
	if n == 0 {
		return nil
	}
	sum := 0
	for _, p := range pcts {
		if p > 0 {
			sum += p
		}
	}
	out := make([]int, n)
	if sum <= 0 {
		even := int(math.Round(100 / float64(n)))
		for i := range out {
			out[i] = max(1, even)
		}
	} else {
		for i, p := range pcts {
			if p < 0 {
				p = 0
			}
			out[i] = max(1, int(math.Round(float64(p)/float64(sum)*100)))
		}
	}
	settle(out, 100, -1)
	return out
}

// NormalizeWidthPctKeepIndex rescales column percentages treating the column
// at keep as authoritative - the one the user just edited. Its value is
// clamped so the remaining columns can still hold their floor of 1; the rest
// share the remainder in proportion to their previous weights.
func NormalizeWidthPctKeepIndex(pcts []int, keep int) []int {
	n := len(pcts)
	if n == 0 {
		return nil
	}
	if keep < 0 || keep >= n {
		return NormalizeWidthPct(pcts)
	}
	if n == 1 {
		return []int{100}
	}

	kept := clampInt(pcts[keep], 1, 100-(n-1))
	rest := 100 - kept

	restSum := 0
	for i, p := range pcts {
		if i != keep && p > 0 {
			restSum += p
		}
	}

	out := make([]int, n)
	out[keep] = kept
	for i, p := range pcts {
		if i == keep {
			continue
		}
		if restSum <= 0 {
			out[i] = max(1, int(math.Round(float64(rest)/float64(n-1))))
		} else {
			if p < 0 {
				p = 0
			}
			out[i] = max(1, int(math.Round(float64(p)/float64(restSum)*float64(rest))))
		}
	}
	settle(out, 100, keep)
	return out
}

// PixelWidths converts column percentages into absolute pixel widths that
// sum to exactly totalWidth. Percentages are expected to be normalized
// already; any non-negative values work. A totalWidth too small to give
// every column a pixel is raised to the column count.
func PixelWidths(pcts []int, totalWidth int) []int {
	n := len(pcts)
	if n == 0 {
		return nil
	}
	if totalWidth < n {
		totalWidth = n
	}
	out := make([]int, n)
	for i, p := range pcts {
		if p < 0 {
			p = 0
		}
		out[i] = max(1, int(math.Round(float64(p)/100*float64(totalWidth))))
	}
	settle(out, totalWidth, -1)
	return out
}

// settle adjusts vals in place so they sum to total, folding the difference
// into the last entry (skipping index skip) and walking any resulting
// deficit backward while keeping every entry at 1 or more. With fewer
// entries than total this always terminates with both invariants intact.
func settle(vals []int, total, skip int) {
	sum := 0
	for _, v := range vals {
		sum += v
	}
	residue := total - sum
	if residue == 0 {
		return
	}

	i := len(vals) - 1
	if i == skip {
		i--
	}
	if i < 0 {
		return
	}
	vals[i] += residue
	for i > 0 && vals[i] < 1 {
		deficit := 1 - vals[i]
		vals[i] = 1
		i--
		if i == skip {
			i--
		}
		if i < 0 {
			return
		}
		vals[i] -= deficit
	}
	if vals[i] < 1 {
		vals[i] = 1
	}
}
