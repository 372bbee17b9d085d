package checkin

import "time"

// 一次补签任务的状态机状态
const (
	StateIdle       = "idle"
	StateAnalyzing  = "analyzing"
	StatePreviewing = "previewing"
	StateSubmitting = "submitting"
	StateCompleted  = "completed"
	StateFailed     = "failed"
)

// RunStatus 当前任务的快照，给前端轮询用，和内部状态没有共享结构
type RunStatus struct {
	RunID        int64           `json:"runId"`
	State        string          `json:"state"`
	Yearmo       string          `json:"yearmo"`
	Items        []*ApprovalItem `json:"items"`
	SuccessCount int             `json:"successCount"`
	ErrorCount   int             `json:"errorCount"`
	FailReason   string          `json:"failReason,omitempty"`
}

// CheckinRun 补签任务的历史归档，任务到达终态后落库
type CheckinRun struct {
	ID           int64            `gorm:"primaryKey" json:"id"`
	UserId       string           `gorm:"index" json:"userid"`
	Yearmo       string           `json:"yearmo"`
	State        string           `json:"state"`
	SuccessCount int              `json:"successCount"`
	ErrorCount   int              `json:"errorCount"`
	FailReason   string           `json:"failReason,omitempty"`
	Items        []CheckinRunItem `gorm:"foreignKey:RunID" json:"items"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type CheckinRunItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	RunID     int64  `gorm:"index" json:"-"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	ClockType int    `json:"clockType"`
	RangeId   string `json:"rangeId"`
	Timestamp int64  `json:"timestamp"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}
