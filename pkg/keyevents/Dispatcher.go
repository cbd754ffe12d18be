package keyevents

import (
	"sync"
)

const (
	KeyEscape = "Escape"
)

type Handler func(key string)

type subscription struct {
	id      uint64
	handler Handler
}

/*
Dispatcher is a registry of key listeners. Handlers run synchronously, in
the order they subscribed, each to completion before the next.
*/
type Dispatcher struct {
	lock          sync.Mutex
	nextID        uint64
	subscriptions []subscription
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		subscriptions: []subscription{},
	}
}

/*
Subscribe registers handler and returns the function that removes it.
Calling the returned function more than once is harmless.
*/
func (d *Dispatcher) Subscribe(handler Handler) func() {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.nextID++
	id := d.nextID
	d.subscriptions = append(d.subscriptions, subscription{id: id, handler: handler})

	once := sync.Once{}

	return func() {
		once.Do(func() {
			d.unsubscribe(id)
		})
	}
}

func (d *Dispatcher) unsubscribe(id uint64) {
	d.lock.Lock()
	defer d.lock.Unlock()

	for index, s := range d.subscriptions {
		if s.id == id {
			d.subscriptions = append(d.subscriptions[:index], d.subscriptions[index+1:]...)
			return
		}
	}
}

/*
Dispatch delivers key to every current handler and returns how many ran.
*/
func (d *Dispatcher) Dispatch(key string) int {
	d.lock.Lock()
	handlers := make([]Handler, 0, len(d.subscriptions))

	for _, s := range d.subscriptions {
		handlers = append(handlers, s.handler)
	}

	d.lock.Unlock()

	for _, handler := range handlers {
		handler(key)
	}

	return len(handlers)
}

func (d *Dispatcher) Len() int {
	d.lock.Lock()
	defer d.lock.Unlock()

	return len(d.subscriptions)
}
