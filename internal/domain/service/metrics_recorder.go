package service

// MetricsRecorder receives business counters. Implementations must be safe
// for concurrent use.
type MetricsRecorder interface {
	TradeInCreated(knownModel bool, campaignType string)
	OrderPlaced()
	AffiliateRegistered(affiliateType string)
	UserRegistered()
	ChallengeProgress(challengeID string, current int)
	ShareRecorded(platform string)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) TradeInCreated(bool, string) {}
func (NoopMetrics) OrderPlaced() {}
func (NoopMetrics) AffiliateRegistered(string) {}
func (NoopMetrics) UserRegistered() {}
func (NoopMetrics) ChallengeProgress(string, int) {}
func (NoopMetrics) ShareRecorded(string) {}
