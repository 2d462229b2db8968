package kafka

const (
	// Consumer topics
	TopicGenerateRequested = "mission_report.generate.requested"

	// Producer topics
	TopicChartsPublished = "mission_report.charts.published"
)

const (
	ConsumerGroupGenerateRequested = "mission-report-consumer-generate"
)
