// Package bus is the in-process binding to the telemetry and command bus.
// Telemetry arrives as asynchronous publications and is dispatched to
// subscribed handlers from a single loop goroutine, so everything downstream
// of a subscription - page snapshots, chart caches, mirror views - mutates on
// one goroutine, the same way the original system runs on one event loop.
package bus

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"mseui/model"
)

// Handler consumes publications of one topic. Handlers run on the dispatch
// loop and must not block.
type Handler func(data model.Sample)

// item is one unit of loop work: a topic publication or a synchronous op.
// Both travel the same queue, so Sync observes every publication queued
// before it.
type item struct {
	topic string
	data  model.Sample
	op    func()
}

type Bus struct {
	mu   sync.Mutex
	subs map[string][]Handler
	last map[string]model.Sample

	queue chan item
	quit  chan struct{}
	done  chan struct{}
}

// New creates a bus and starts its dispatch loop.
func New() *Bus {
	b := &Bus{
		subs:  make(map[string][]Handler),
		last:  make(map[string]model.Sample),
		queue: make(chan item, 256),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go b.loop()
	return b
}

// Subscribe registers a handler for a topic. Handlers are invoked in
// subscription order.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish queues a sample for dispatch. Blocks when the dispatch queue is
// full; publications after Close are dropped.
func (b *Bus) Publish(topic string, data model.Sample) {
	select {
	case b.queue <- item{topic: topic, data: data}:
	case <-b.quit:
	}
}

// Sync runs f on the dispatch loop and waits for it to finish. Snapshot
// readers use it to observe handler state without racing the loop.
func (b *Bus) Sync(f func()) {
	fin := make(chan struct{})
	select {
	case b.queue <- item{op: func() {
		f()
		close(fin)
	}}:
	case <-b.quit:
		return
	}
	select {
	case <-fin:
	case <-b.quit:
	}
}

// Reemit re-delivers the last retained sample of every topic to current
// subscribers. Used when a client attaches after startup.
func (b *Bus) Reemit() {
	b.Sync(func() {
		for topic, data := range b.last {
			b.dispatch(topic, data)
		}
	})
}

// Last returns the most recent sample published on a topic, nil when the
// topic never fired.
func (b *Bus) Last(topic string) model.Sample {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last[topic]
}

// Close stops the dispatch loop and waits for it to exit.
func (b *Bus) Close() {
	close(b.quit)
	<-b.done
}

func (b *Bus) loop() {
	defer close(b.done)
	for {
		select {
		case it := <-b.queue:
			if it.op != nil {
				it.op()
				continue
			}
			b.mu.Lock()
			b.last[it.topic] = it.data
			b.mu.Unlock()
			b.dispatch(it.topic, it.data)
		case <-b.quit:
			return
		}
	}
}

func (b *Bus) dispatch(topic string, data model.Sample) {
	b.mu.Lock()
	handlers := b.subs[topic]
	b.mu.Unlock()
	for _, h := range handlers {
		h(data)
	}
	if len(handlers) == 0 {
		log.WithField("topic", topic).Trace("publication without subscribers")
	}
}
