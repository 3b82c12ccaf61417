// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package algorithm

import (
	"cmp"
	"math/bits"

	"github.com/consensys/go-flux/pkg/seq"
	log "github.com/sirupsen/logrus"
)

// Sortable captures those sequences which can be sorted in place: they must
// be random access (so elements can be located by their index), bounded (so
// the end can be located) and writable.
type Sortable[C, E any] interface {
	seq.RandomAccess[C, E]
	seq.Bounded[C, E]
	seq.Writable[C, E]
}

// SortStats records the work done by a sort.
type SortStats struct {
	// Number of comparator invocations.
	Compares uint
	// Number of elements written.
	Moves uint
}

// Sort sorts a sequence into non-decreasing order, in place.  The sort is not
// stable.
func Sort[C any, E cmp.Ordered](s Sortable[C, E]) {
	pdqsort(accessorOf(s), cmp.Less[E], isArithmetic[E]())
}

// SortFunc sorts a sequence in place, according to a given three-way
// comparator.  The sort is not stable.
func SortFunc[C, E any](s Sortable[C, E], cmp func(E, E) int) {
	pdqsort(accessorOf(s), func(l E, r E) bool { return cmp(l, r) < 0 }, false)
}

// SortBy sorts a sequence in place, ordering elements by a key projected from
// each.
func SortBy[C, E any, K cmp.Ordered](s Sortable[C, E], key func(E) K) {
	pdqsort(accessorOf(s), func(l E, r E) bool { return key(l) < key(r) }, isArithmetic[K]())
}

// SortByFunc sorts a sequence in place, ordering elements by a key projected
// from each and compared using a given three-way comparator.
func SortByFunc[C, E, K any](s Sortable[C, E], key func(E) K, cmp func(K, K) int) {
	pdqsort(accessorOf(s), func(l E, r E) bool { return cmp(key(l), key(r)) < 0 }, false)
}

// SortFuncWithStats is like SortFunc, but additionally reports the number of
// comparisons and element writes performed.
func SortFuncWithStats[C, E any](s Sortable[C, E], cmp func(E, E) int) SortStats {
	var (
		stats SortStats
		data  = &countingAccessor[E]{accessorOf(s), &stats}
	)
	//
	pdqsort[E](data, func(l E, r E) bool {
		stats.Compares++
		return cmp(l, r) < 0
	}, false)
	//
	return stats
}

// isArithmetic determines whether elements of a given type are plain machine
// numbers, for which the branchless partition is profitable.
func isArithmetic[K any]() bool {
	var zero K
	//
	switch any(zero).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, float32, float64:
		return true
	default:
		return false
	}
}

// ============================================================================
// Element access
// ============================================================================

// accessor provides indexed access to the elements being sorted, where index 0
// is the first element.
type accessor[E any] interface {
	Len() int
	Get(int) E
	Set(int, E)
	Swap(int, int)
}

func accessorOf[C, E any](s Sortable[C, E]) accessor[E] {
	if c, ok := any(s).(seq.Contiguous[E]); ok {
		return sliceAccessor[E](c.Data())
	}
	//
	first := s.First()
	//
	return &cursorAccessor[C, E]{s, first, s.Distance(first, s.Last())}
}

type sliceAccessor[E any] []E

func (p sliceAccessor[E]) Len() int { return len(p) }
func (p sliceAccessor[E]) Get(i int) E { return p[i] }
func (p sliceAccessor[E]) Set(i int, e E) { p[i] = e }
func (p sliceAccessor[E]) Swap(i int, j int) { p[i], p[j] = p[j], p[i] }

type cursorAccessor[C, E any] struct {
	seq   Sortable[C, E]
	first C
	n     int
}

func (p *cursorAccessor[C, E]) Len() int {
	return p.n
}

func (p *cursorAccessor[C, E]) Get(i int) E {
	return seq.Move[C, E](p.seq, p.at(i))
}

func (p *cursorAccessor[C, E]) Set(i int, e E) {
	p.seq.WriteAt(p.at(i), e)
}

func (p *cursorAccessor[C, E]) Swap(i int, j int) {
	seq.Swap[C, E](p.seq, p.at(i), p.at(j))
}

func (p *cursorAccessor[C, E]) at(i int) C {
	return p.seq.IncBy(p.first, i)
}

type countingAccessor[E any] struct {
	accessor[E]
	stats *SortStats
}

func (p *countingAccessor[E]) Set(i int, e E) {
	p.stats.Moves++
	p.accessor.Set(i, e)
}

func (p *countingAccessor[E]) Swap(i int, j int) {
	p.stats.Moves += 2
	p.accessor.Swap(i, j)
}

// ============================================================================
// Pattern-defeating quicksort
// ============================================================================

const (
	// Partitions below this size are sorted using insertion sort.
	insertionSortThreshold = 24
	// Partitions above this size use the pseudomedian of nine as pivot.
	nintherThreshold = 128
	// When a partition was already partitioned, partial insertion sort is
	// attempted, but abandoned once this many elements have been moved.
	partialInsertionSortLimit = 8
	// Elements considered per block by the branchless partition.
	blockSize = 64
)

type sorter[E any] struct {
	data       accessor[E]
	less       func(E, E) bool
	branchless bool
}

func pdqsort[E any](data accessor[E], less func(E, E) bool, branchless bool) {
	n := data.Len()
	//
	if n == 0 {
		return
	}
	//
	s := sorter[E]{data, less, branchless}
	s.loop(0, n, bits.Len(uint(n))-1, true)
}

// loop sorts the elements in [begin,end).  The budget gives the number of
// highly unbalanced partitions tolerated before switching to heapsort.  When
// not leftmost, the element just before begin is no greater than any in the
// range, and serves as a sentinel.
func (p *sorter[E]) loop(begin int, end int, budget int, leftmost bool) {
	for {
		size := end - begin
		//
		if size < insertionSortThreshold {
			if leftmost {
				p.insertionSort(begin, end)
			} else {
				p.unguardedInsertionSort(begin, end)
			}
			//
			return
		}
		// Choose pivot, and move it to begin
		s2 := size / 2
		//
		if size > nintherThreshold {
			p.sort3(begin, begin+s2, end-1)
			p.sort3(begin+1, begin+(s2-1), end-2)
			p.sort3(begin+2, begin+(s2+1), end-3)
			p.sort3(begin+(s2-1), begin+s2, begin+(s2+1))
			p.data.Swap(begin, begin+s2)
		} else {
			p.sort3(begin+s2, begin, end-1)
		}
		// If the sentinel equals the pivot, there can be nothing smaller than
		// the pivot in this range.  Hence, put every element equal to the pivot
		// on the left and skip over them.
		if !leftmost && !p.less(p.data.Get(begin-1), p.data.Get(begin)) {
			begin = p.partitionLeft(begin, end) + 1
			continue
		}
		//
		var (
			pivot       int
			partitioned bool
		)
		//
		if p.branchless {
			pivot, partitioned = p.partitionRightBranchless(begin, end)
		} else {
			pivot, partitioned = p.partitionRight(begin, end)
		}
		//
		lsize, rsize := pivot-begin, end-(pivot+1)
		//
		if lsize < size/8 || rsize < size/8 {
			if budget--; budget == 0 {
				log.Debugf("falling back to heapsort over %d elements", size)
				p.heapSort(begin, end)
				//
				return
			}
			// Break patterns which may have caused the imbalance
			if lsize >= insertionSortThreshold {
				p.data.Swap(begin, begin+lsize/4)
				p.data.Swap(pivot-1, pivot-lsize/4)
				//
				if lsize > nintherThreshold {
					p.data.Swap(begin+1, begin+(lsize/4+1))
					p.data.Swap(begin+2, begin+(lsize/4+2))
					p.data.Swap(pivot-2, pivot-(lsize/4+1))
					p.data.Swap(pivot-3, pivot-(lsize/4+2))
				}
			}
			//
			if rsize >= insertionSortThreshold {
				p.data.Swap(pivot+1, pivot+(1+rsize/4))
				p.data.Swap(end-1, end-rsize/4)
				//
				if rsize > nintherThreshold {
					p.data.Swap(pivot+2, pivot+(2+rsize/4))
					p.data.Swap(pivot+3, pivot+(3+rsize/4))
					p.data.Swap(end-2, end-(1+rsize/4))
					p.data.Swap(end-3, end-(2+rsize/4))
				}
			}
		} else if partitioned && p.partialInsertionSort(begin, pivot) && p.partialInsertionSort(pivot+1, end) {
			// Balanced, and both sides were nearly sorted already.
			return
		}
		// Recurse on the left, iterate on the right.
		p.loop(begin, pivot, budget, leftmost)
		begin = pivot + 1
		leftmost = false
	}
}

func (p *sorter[E]) sort2(a int, b int) {
	if p.less(p.data.Get(b), p.data.Get(a)) {
		p.data.Swap(a, b)
	}
}

// sort3 sorts the elements at three positions, such that the median ends up at
// b.
func (p *sorter[E]) sort3(a int, b int, c int) {
	p.sort2(a, b)
	p.sort2(b, c)
	p.sort2(a, b)
}

func (p *sorter[E]) insertionSort(begin int, end int) {
	if begin == end {
		return
	}
	//
	for cur := begin + 1; cur != end; cur++ {
		p.insert(begin, cur, true)
	}
}

// unguardedInsertionSort assumes an element no greater than any in the range
// sits just before begin, and therefore never checks for begin.
func (p *sorter[E]) unguardedInsertionSort(begin int, end int) {
	if begin == end {
		return
	}
	//
	for cur := begin + 1; cur != end; cur++ {
		p.insert(begin, cur, false)
	}
}

// partialInsertionSort attempts to insertion sort a range, but gives up (and
// returns false) if more than a few elements need moving.
func (p *sorter[E]) partialInsertionSort(begin int, end int) bool {
	if begin == end {
		return true
	}
	//
	limit := 0
	//
	for cur := begin + 1; cur != end; cur++ {
		limit += cur - p.insert(begin, cur, true)
		//
		if limit > partialInsertionSortLimit {
			return false
		}
	}
	//
	return true
}

// insert moves the element at cur left into its place amongst the (already
// sorted) elements from begin, returning where it ended up.
func (p *sorter[E]) insert(begin int, cur int, guarded bool) int {
	sift := cur
	//
	if tmp := p.data.Get(sift); p.less(tmp, p.data.Get(sift-1)) {
		for {
			p.data.Set(sift, p.data.Get(sift-1))
			sift--
			//
			if (guarded && sift == begin) || !p.less(tmp, p.data.Get(sift-1)) {
				break
			}
		}
		//
		p.data.Set(sift, tmp)
	}
	//
	return sift
}

// partitionRight partitions [begin,end) around the pivot at begin.  Elements
// equal to the pivot go on the right.  This returns the final position of the
// pivot, and whether the range was already correctly partitioned.  There must
// be an element no smaller than the pivot in the range (which sort3 ensures).
func (p *sorter[E]) partitionRight(begin int, end int) (int, bool) {
	var (
		pivot       = p.data.Get(begin)
		first, last = p.scanRight(begin, end, pivot)
		partitioned = first >= last
	)
	// Keep swapping pairs of elements on the wrong side of the pivot.
	for first < last {
		p.data.Swap(first, last)
		//
		for first++; p.less(p.data.Get(first), pivot); first++ {
		}
		//
		for last--; !p.less(p.data.Get(last), pivot); last-- {
		}
	}
	//
	return p.placePivot(begin, first-1, pivot), partitioned
}

// scanRight finds the first element from the left not less than the pivot,
// and the first element from the right which is.
func (p *sorter[E]) scanRight(begin int, end int, pivot E) (int, int) {
	first, last := begin+1, end-1
	//
	for p.less(p.data.Get(first), pivot) {
		first++
	}
	// Without a smaller element on the left, guard against running off
	// the left.
	if first-1 == begin {
		for first < last && !p.less(p.data.Get(last), pivot) {
			last--
		}
	} else {
		for !p.less(p.data.Get(last), pivot) {
			last--
		}
	}
	//
	return first, last
}

// partitionLeft is like partitionRight, but elements equal to the pivot go on
// the left.  This is used when the range holds nothing smaller than the pivot.
func (p *sorter[E]) partitionLeft(begin int, end int) int {
	var (
		pivot       = p.data.Get(begin)
		first, last = begin, end - 1
	)
	//
	for p.less(pivot, p.data.Get(last)) {
		last--
	}
	//
	if last+1 == end {
		for first++; first < last && !p.less(pivot, p.data.Get(first)); first++ {
		}
	} else {
		for first++; !p.less(pivot, p.data.Get(first)); first++ {
		}
	}
	//
	for first < last {
		p.data.Swap(first, last)
		//
		for last--; p.less(pivot, p.data.Get(last)); last-- {
		}
		//
		for first++; !p.less(pivot, p.data.Get(first)); first++ {
		}
	}
	//
	return p.placePivot(begin, last, pivot)
}

// placePivot moves the pivot from begin to its final position.
func (p *sorter[E]) placePivot(begin int, pos int, pivot E) int {
	p.data.Set(begin, p.data.Get(pos))
	p.data.Set(pos, pivot)
	//
	return pos
}

// partitionRightBranchless gives the same result as partitionRight, but avoids
// data-dependent branches when scanning for misplaced elements.  Blocks of
// elements from either end are scanned first, recording the offsets of those
// on the wrong side, and then matching offsets are swapped.
func (p *sorter[E]) partitionRightBranchless(begin int, end int) (int, bool) {
	var (
		pivot       = p.data.Get(begin)
		first, last = p.scanRight(begin, end, pivot)
		partitioned = first >= last
	)
	//
	if !partitioned {
		var (
			offsetsL, offsetsR [blockSize]uint8
			baseL, baseR       int
			numL, numR         int
			startL, startR     int
		)
		//
		p.data.Swap(first, last)
		first++
		baseL, baseR = first, last
		//
		for first < last {
			var (
				unknown = last - first
				splitL  = 0
				splitR  = 0
			)
			// Determine how many elements to consider on each side
			if numL == 0 {
				if numR == 0 {
					splitL = unknown / 2
				} else {
					splitL = unknown
				}
			}
			//
			if numR == 0 {
				splitR = unknown - splitL
			}
			// Fill offset blocks with elements on the wrong side
			for i := 0; i < min(splitL, blockSize); i++ {
				offsetsL[numL] = uint8(i)
				numL += toInt(!p.less(p.data.Get(first), pivot))
				first++
			}
			//
			for i := 0; i < min(splitR, blockSize); i++ {
				last--
				offsetsR[numR] = uint8(i + 1)
				numR += toInt(p.less(p.data.Get(last), pivot))
			}
			// Swap misplaced pairs
			num := min(numL, numR)
			p.swapOffsets(baseL, baseR, offsetsL[startL:startL+num], offsetsR[startR:startR+num], numL == numR)
			numL, numR = numL-num, numR-num
			startL, startR = startL+num, startR+num
			//
			if numL == 0 {
				startL, baseL = 0, first
			}
			//
			if numR == 0 {
				startR, baseR = 0, last
			}
		}
		// Place whatever misplaced elements remain on one side.
		if numL != 0 {
			for numL--; numL >= 0; numL-- {
				last--
				p.data.Swap(baseL+int(offsetsL[startL+numL]), last)
			}
			//
			first = last
		}
		//
		if numR != 0 {
			for numR--; numR >= 0; numR-- {
				p.data.Swap(baseR-int(offsetsR[startR+numR]), first)
				first++
			}
		}
	}
	//
	return p.placePivot(begin, first-1, pivot), partitioned
}

// swapOffsets exchanges misplaced elements on the left with those on the right.
// A cyclic permutation needs fewer writes, but plain swaps are necessary when
// both blocks are exhausted together, otherwise descending inputs go
// quadratic.
func (p *sorter[E]) swapOffsets(baseL int, baseR int, offsetsL []uint8, offsetsR []uint8, swaps bool) {
	if swaps {
		for i := range offsetsL {
			p.data.Swap(baseL+int(offsetsL[i]), baseR-int(offsetsR[i]))
		}
	} else if len(offsetsL) > 0 {
		var (
			l   = baseL + int(offsetsL[0])
			r   = baseR - int(offsetsR[0])
			tmp = p.data.Get(l)
		)
		//
		p.data.Set(l, p.data.Get(r))
		//
		for i := 1; i < len(offsetsL); i++ {
			l = baseL + int(offsetsL[i])
			p.data.Set(r, p.data.Get(l))
			r = baseR - int(offsetsR[i])
			p.data.Set(l, p.data.Get(r))
		}
		//
		p.data.Set(r, tmp)
	}
}

func toInt(b bool) int {
	if b {
		return 1
	}
	//
	return 0
}

// ============================================================================
// Heapsort
// ============================================================================

func (p *sorter[E]) heapSort(begin int, end int) {
	n := end - begin
	//
	for i := (n - 1) / 2; i >= 0; i-- {
		p.siftDown(begin, i, n)
	}
	//
	for i := n - 1; i > 0; i-- {
		p.data.Swap(begin, begin+i)
		p.siftDown(begin, 0, i)
	}
}

// siftDown restores the max-heap property for the heap of n elements from
// begin, starting at the given root.
func (p *sorter[E]) siftDown(begin int, root int, n int) {
	for {
		child := 2*root + 1
		//
		if child >= n {
			return
		}
		//
		if child+1 < n && p.less(p.data.Get(begin+child), p.data.Get(begin+child+1)) {
			child++
		}
		//
		if !p.less(p.data.Get(begin+root), p.data.Get(begin+child)) {
			return
		}
		//
		p.data.Swap(begin+root, begin+child)
		root = child
	}
}
