package matching

import "container/list"

// level is the price-level queue (PLQ): a FIFO of live orders at one
// (symbol, side, price), preserving arrival order so strict price-time
// priority holds within a level. Removal is O(1) given the *list.Element
// handle returned by pushBack, instead of rescanning the FIFO to find the
// order being canceled.
type level struct {
	orders *list.List // of *Order, oldest at Front
}

func newLevel() *level {
	return &level{orders: list.New()}
}

// pushBack inserts order at the back of the FIFO and returns its handle.
func (l *level) pushBack(o *Order) *list.Element {
	return l.orders.PushBack(o)
}

// peekFront returns the oldest (smallest seq) order in the level, or nil
// if the level is empty.
func (l *level) peekFront() *Order {
	if e := l.orders.Front(); e != nil {
		return e.Value.(*Order)
	}
	return nil
}

// popFront removes the oldest order.
func (l *level) popFront() {
	if e := l.orders.Front(); e != nil {
		l.orders.Remove(e)
	}
}

// remove deletes the order referenced by handle.
func (l *level) remove(handle *list.Element) {
	l.orders.Remove(handle)
}

func (l *level) isEmpty() bool {
	return l.orders.Len() == 0
}

// forEach walks the level oldest-to-newest (ascending seq), the order
// fills and prints must observe.
func (l *level) forEach(fn func(*Order)) {
	for e := l.orders.Front(); e != nil; e = e.Next() {
		fn(e.Value.(*Order))
	}
}
