package worker

// Log messages for the quest rotation worker
const (
	LogMsgRotationScheduled = "Quest rotation scheduled"
	LogMsgRotationStandby   = "Quest rotation in standby"
	LogMsgRotationStarting  = "Quest rotation starting"
	LogMsgRotationCompleted = "Quest rotation completed"
	LogMsgRotationFailed    = "Quest rotation failed"
)
