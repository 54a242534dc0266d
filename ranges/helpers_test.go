// SPDX-License-Identifier: GPL-3.0-or-later

package ranges

// listNode is a node of the singly linked list used to exercise the
// forward tier with an end sentinel of a distinct type.
type listNode struct {
	value int
	next  *listNode
}

// listIter is a forward-only iterator over a linked list.
type listIter struct {
	node *listNode
}

// listEnd is the sentinel for [listIter]: the iterator reaches it when
// there are no more nodes.
type listEnd struct{}

var _ FwdIter[int, listIter, listEnd] = listIter{}

func (it listIter) Value() int {
	return it.node.value
}

func (it listIter) Next() listIter {
	return listIter{it.node.next}
}

func (it listIter) Eq(listEnd) bool {
	return it.node == nil
}

func (it listIter) MultiPass() {}

// listRange is a [FwdRange] over a linked list.
type listRange struct {
	head *listNode
}

func newListRange(values ...int) listRange {
	var head *listNode
	for idx := len(values) - 1; idx >= 0; idx-- {
		head = &listNode{value: values[idx], next: head}
	}
	return listRange{head}
}

func (r listRange) Iter() listIter {
	return listIter{r.head}
}

func (r listRange) IterEnd() listEnd {
	return listEnd{}
}

// vecRange is a [RemovableRange] backed by a slice.
type vecRange struct {
	elems   []int
	removed int
}

func (r *vecRange) Iter() SliceIter[int] {
	return NewSliceIter(r.elems, 0)
}

func (r *vecRange) IterEnd() SliceIter[int] {
	return NewSliceIter(r.elems, len(r.elems))
}

func (r *vecRange) RemoveAt(it SliceIter[int]) SliceIter[int] {
	pos := it.Pos()
	r.elems = append(r.elems[:pos], r.elems[pos+1:]...)
	r.removed++
	return NewSliceIter(r.elems, pos)
}
