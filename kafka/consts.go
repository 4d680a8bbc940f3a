package kafka

const (
	DefaultOrdersTopic      = "batch.exchange.orders.snapshots"
	DefaultCommitmentsTopic = "batch.exchange.commitments"

	// FeedComponent names the consumer group of the order snapshot feed.
	FeedComponent = "batch-exchange-feed"
)
