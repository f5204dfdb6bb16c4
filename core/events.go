package core

import (
	"github.com/ethereum/go-ethereum/event"

	staking "github.com/stakewire/stakewire/staking/types"
)

// EventSink receives take mutation events. Emission is fire and forget from
// the mutator's point of view; sinks must not block.
type EventSink interface {
	TakeDecreased(ev staking.TakeDecreasedEvent)
}

// NopSink discards all events.
type NopSink struct{}

// TakeDecreased implements EventSink.
func (NopSink) TakeDecreased(staking.TakeDecreasedEvent) {}

// FeedSink publishes take events to subscribers over an event feed.
type FeedSink struct {
	takeDecreasedFeed event.Feed
}

// NewFeedSink returns a FeedSink with no subscribers.
func NewFeedSink() *FeedSink {
	return &FeedSink{}
}

// TakeDecreased delivers ev to all current subscribers.
func (s *FeedSink) TakeDecreased(ev staking.TakeDecreasedEvent) {
	s.takeDecreasedFeed.Send(ev)
}

// SubscribeTakeDecreased registers ch to receive every subsequent take
// decreased event until the subscription is cancelled.
func (s *FeedSink) SubscribeTakeDecreased(
	ch chan<- staking.TakeDecreasedEvent,
) event.Subscription {
	return s.takeDecreasedFeed.Subscribe(ch)
}
