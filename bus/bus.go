// Package bus is a small in-process pub/sub fabric used to fan device
// telemetry out to interested services (console logger, heartbeat).
// Publishing never blocks: slow subscribers lose messages rather than
// stalling the control loop.
package bus

import (
	"strings"
	"sync"
)

// Topic is a fixed-depth path such as {"telemetry", "led", "a"}.
type Topic []string

func (t Topic) String() string { return strings.Join(t, "/") }

// Message is one published datum.
type Message struct {
	Topic    Topic
	Payload  any
	Retained bool
}

// Subscription receives messages for exactly one topic.
type Subscription struct {
	topic Topic
	ch    chan *Message
	conn  *Connection
}

func (s *Subscription) Topic() Topic             { return s.topic }
func (s *Subscription) Channel() <-chan *Message { return s.ch }
func (s *Subscription) Unsubscribe()             { s.conn.Unsubscribe(s) }

// Bus routes messages between connections. Exact-match topics only; the
// device has a handful of well-known topics and needs no wildcards.
type Bus struct {
	mu       sync.RWMutex
	subs     map[string][]*Subscription
	retained map[string]*Message
	qLen     int
}

// New creates a bus with the given per-subscription queue length.
func New(queueLen int) *Bus {
	if queueLen <= 0 {
		queueLen = 8 // safe default
	}
	return &Bus{
		subs:     make(map[string][]*Subscription),
		retained: make(map[string]*Message),
		qLen:     queueLen,
	}
}

// Connect returns a connection owning its subscriptions.
func (b *Bus) Connect() *Connection {
	return &Connection{bus: b}
}

func (b *Bus) publish(msg *Message) {
	key := msg.Topic.String()

	b.mu.Lock()
	defer b.mu.Unlock()

	if msg.Retained {
		b.retained[key] = msg
	}
	for _, sub := range b.subs[key] {
		select {
		case sub.ch <- msg:
		default: // queue full, drop
		}
	}
}

func (b *Bus) subscribe(sub *Subscription) {
	key := sub.topic.String()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs[key] = append(b.subs[key], sub)

	// Deliver the retained message, if any.
	if m := b.retained[key]; m != nil {
		select {
		case sub.ch <- m:
		default:
		}
	}
}

func (b *Bus) unsubscribe(sub *Subscription) {
	key := sub.topic.String()

	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.subs[key]
	for i, s := range list {
		if s == sub {
			b.subs[key] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(b.subs[key]) == 0 {
		delete(b.subs, key)
	}
}

// Connection is one participant's handle on the bus.
type Connection struct {
	bus *Bus

	mu   sync.Mutex
	subs []*Subscription
}

// Publish sends payload on topic, dropping it for any full subscriber.
func (c *Connection) Publish(topic Topic, payload any) {
	c.bus.publish(&Message{Topic: topic, Payload: payload})
}

// PublishRetained behaves like Publish and additionally stores the message
// so late subscribers see the latest value immediately.
func (c *Connection) PublishRetained(topic Topic, payload any) {
	c.bus.publish(&Message{Topic: topic, Payload: payload, Retained: true})
}

// Subscribe registers for exact-match delivery on topic.
func (c *Connection) Subscribe(topic Topic) *Subscription {
	sub := &Subscription{
		topic: topic,
		ch:    make(chan *Message, c.bus.qLen),
		conn:  c,
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()

	c.bus.subscribe(sub)
	return sub
}

// Unsubscribe removes sub from the bus and from this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub)

	c.mu.Lock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
}

// Close drops all subscriptions held by this connection.
func (c *Connection) Close() {
	c.mu.Lock()
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, s := range subs {
		c.bus.unsubscribe(s)
	}
}
