// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import "net/url"

// Ratio returns the sequence similarity of two strings in [0,1] using the
// Ratcliff/Obershelp measure: twice the number of matching characters over
// the total length, where matches are counted recursively around the
// longest common substring.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(matchingRunes(ra, rb)) / float64(total)
}

// matchingRunes counts matched runes: the longest common substring plus,
// recursively, matches in the pieces to its left and right.
func matchingRunes(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingRunes(a[:ai], b[:bi]) +
		matchingRunes(a[ai+size:], b[bi+size:])
}

// longestCommonBlock finds the leftmost longest common substring of a and b,
// returning its start in each and its length.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// lengths[j] is the length of the common suffix ending at a[i], b[j].
	lengths := make([]int, len(b))
	for i := range a {
		prev := 0
		for j := range b {
			cur := lengths[j]
			if a[i] == b[j] {
				lengths[j] = prev + 1
				if lengths[j] > size {
					size = lengths[j]
					ai = i - size + 1
					bi = j - size + 1
				}
			} else {
				lengths[j] = 0
			}
			prev = cur
		}
	}
	return ai, bi, size
}

// textSimilarity compares two texts after normalization. Empty input on
// either side scores zero.
func textSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	na, nb := normalizeText(a), normalizeText(b)
	if na == "" || nb == "" {
		return 0.0
	}
	return Ratio(na, nb)
}

// urlSimilarity compares two URLs. Equal normalized URLs score 1.0;
// cross-domain URLs score 0; otherwise path similarity dominates the query
// string 0.8 to 0.2. Unparsable URLs fall back to plain string similarity.
func urlSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	na, nb := normalizeURL(a), normalizeURL(b)
	if na == nb {
		return 1.0
	}

	pa, errA := url.Parse(na)
	pb, errB := url.Parse(nb)
	if errA != nil || errB != nil {
		return Ratio(na, nb)
	}
	if pa.Host != pb.Host {
		return 0.0
	}
	return 0.8*Ratio(pa.Path, pb.Path) + 0.2*Ratio(pa.RawQuery, pb.RawQuery)
}
