package checkin

// 补签项的状态，只会沿 pending → processing → success/error 单向流转
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusSuccess    = "success"
	StatusError      = "error"
)

// 打卡类型
const (
	ClockTypeOnDuty  = 1 //上班
	ClockTypeOffDuty = 2 //下班
)

// ApprovalItem 一条需要补签的记录
type ApprovalItem struct {
	Date      string `json:"date"` //MM-DD
	Time      string `json:"time"` //目标补签时间 HH:mm
	ClockType int    `json:"clockType"`
	RangeId   string `json:"rangeId"`
	Timestamp int64  `json:"timestamp"` //当天零点的时间戳（秒）
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"` //Status为error时的最后一次失败信息
}

func (item *ApprovalItem) Clone() *ApprovalItem {
	cloned := *item
	return &cloned
}

func CloneItems(items []*ApprovalItem) []*ApprovalItem {
	cloned := make([]*ApprovalItem, 0, len(items))
	for _, item := range items {
		cloned = append(cloned, item.Clone())
	}
	return cloned
}
