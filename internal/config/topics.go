package config

const (
	// TopicOptimizeTask is the NSQ topic carrying raw record batches to the
	// optimizer worker.
	TopicOptimizeTask = "optimize.task"

	// TopicOptimizeResult is the NSQ topic for optimization outcomes
	// (processed/skipped counts per batch).
	TopicOptimizeResult = "optimize.result"

	// ChannelOptimizer is the consumer channel name for optimizer workers.
	ChannelOptimizer = "optimizer"
)
