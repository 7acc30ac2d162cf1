package ie

import "iter"

// tagHeaderLen is the tag number byte plus the length byte.
const tagHeaderLen = 2

// Tag is a single information element. Value borrows from the region the
// iterator was built over.
type Tag struct {
	Name  TagName
	Value []byte
}

// TagIterator walks (tag, length, value) records in a byte region, in the
// style of bufio.Scanner:
//
//	it := ie.NewTagIterator(body)
//	for it.Next() {
//		tag := it.Tag()
//	}
//	if err := it.Err(); err != nil { ... }
//
// Iteration ends cleanly once fewer than two bytes remain. A record whose
// declared length runs past the region stops iteration with a single
// *OverflowError; the iterator is exhausted from then on.
type TagIterator struct {
	data     []byte
	cur      Tag
	err      error
	reported bool
}

// NewTagIterator returns an iterator positioned at the first tag in data.
func NewTagIterator(data []byte) *TagIterator {
	return &TagIterator{data: data}
}

// Next advances to the next tag and reports whether one is available.
func (it *TagIterator) Next() bool {
	it.cur = Tag{}
	if it.err != nil || len(it.data) < tagHeaderLen {
		return false
	}

	name := ParseTagName(it.data[0])
	length := int(it.data[1])
	available := len(it.data) - tagHeaderLen

	if length > available {
		it.data = it.data[len(it.data):]
		it.err = &OverflowError{Required: length, Remaining: available}
		return false
	}

	end := tagHeaderLen + length
	it.cur = Tag{Name: name, Value: it.data[tagHeaderLen:end:end]}
	it.data = it.data[end:]
	return true
}

// Tag returns the tag read by the last successful call to Next.
func (it *TagIterator) Tag() Tag {
	return it.cur
}

// Err returns the overflow that stopped iteration, or nil on a clean end.
func (it *TagIterator) Err() error {
	return it.err
}

// Remaining returns the number of bytes not yet consumed.
func (it *TagIterator) Remaining() int {
	return len(it.data)
}

// Each calls fn for every well-formed tag and returns the overflow error, if
// any. Tags before a truncated record are still delivered.
func (it *TagIterator) Each(fn func(Tag)) error {
	for it.Next() {
		fn(it.cur)
	}
	return it.err
}

// All adapts the iterator for range-over-func. An overflow is yielded once,
// as the final pair, with a zero Tag.
func (it *TagIterator) All() iter.Seq2[Tag, error] {
	return func(yield func(Tag, error) bool) {
		for it.Next() {
			if !yield(it.cur, nil) {
				return
			}
		}
		if it.err != nil && !it.reported {
			it.reported = true
			yield(Tag{}, it.err)
		}
	}
}
