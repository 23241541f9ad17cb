package main

import "fmt"

// ShapeStore holds the committed rectangles in z-order, the rectangle being
// drawn, and the selection. Every mutation notifies subscribers.
type ShapeStore struct {
	shapes   []Rectangle
	current  *Rect
	selected int
	changes  changeRegister
}

func NewShapeStore() *ShapeStore {
	return &ShapeStore{
		shapes:   make([]Rectangle, 0),
		selected: noSelection,
	}
}

func (s *ShapeStore) Len() int {
	return len(s.shapes)
}

// Shapes returns a copy, bottom to top.
func (s *ShapeStore) Shapes() []Rectangle {
	out := make([]Rectangle, len(s.shapes))
	copy(out, s.shapes)
	return out
}

func (s *ShapeStore) At(i int) Rectangle {
	s.mustIndex(i)
	return s.shapes[i]
}

func (s *ShapeStore) Append(r Rectangle) int {
	s.shapes = append(s.shapes, r)
	s.changes.run()
	return len(s.shapes) - 1
}

// Update mutates the shape at i in place.
func (s *ShapeStore) Update(i int, fn func(r *Rectangle)) {
	s.mustIndex(i)
	fn(&s.shapes[i])
	s.changes.run()
}

// ShapeAt returns the index of the topmost shape containing p.
func (s *ShapeStore) ShapeAt(p Point) (int, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if PointInRect(p, s.shapes[i].Rect) {
			return i, true
		}
	}
	return noSelection, false
}

func (s *ShapeStore) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

func (s *ShapeStore) Select(i int) {
	s.mustIndex(i)
	s.selected = i
	s.changes.run()
}

func (s *ShapeStore) Deselect() {
	s.selected = noSelection
	s.changes.run()
}

func (s *ShapeStore) Current() (Rect, bool) {
	if s.current == nil {
		return Rect{}, false
	}
	return *s.current, true
}

func (s *ShapeStore) SetCurrent(r Rect) {
	s.current = &r
	s.changes.run()
}

func (s *ShapeStore) ClearCurrent() {
	s.current = nil
	s.changes.run()
}

// Subscribe registers fn to run after every change. The returned func
// removes it.
func (s *ShapeStore) Subscribe(fn func()) func() {
	return s.changes.add(fn)
}

// Touch notifies subscribers of a change held outside the store, such as
// the draw style.
func (s *ShapeStore) Touch() {
	s.changes.run()
}

func (s *ShapeStore) mustIndex(i int) {
	if i < 0 || i >= len(s.shapes) {
		panic(fmt.Sprintf("shape index %d out of range [0,%d)", i, len(s.shapes)))
	}
}

//----------

type changeRegister struct {
	next int
	cbs  map[int]func()
	ids  []int
}

func (c *changeRegister) add(fn func()) func() {
	if c.cbs == nil {
		c.cbs = map[int]func(){}
	}
	id := c.next
	c.next++
	c.cbs[id] = fn
	c.ids = append(c.ids, id)
	return func() { c.remove(id) }
}

func (c *changeRegister) remove(id int) {
	delete(c.cbs, id)
	for i, v := range c.ids {
		if v == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

// run calls callbacks in registration order.
func (c *changeRegister) run() int {
	n := 0
	ids := append([]int(nil), c.ids...)
	for _, id := range ids {
		if fn, ok := c.cbs[id]; ok {
			fn()
			n++
		}
	}
	return n
}
