package hrsign

import "strings"

// SubmitError 远端拒绝补签申请。Recoverable为true表示"重复提交"类的
// 瞬时拒绝，远端可能尚未登记上一次请求，可以在尝试预算内重试；
// 其余拒绝原因一律终止该条补签
type SubmitError struct {
	Msg         string
	Recoverable bool
}

func (e *SubmitError) Error() string {
	return e.Msg
}

func ClassifySubmitError(msg string) *SubmitError {
	if msg == "" {
		msg = "未知错误"
	}
	return &SubmitError{
		Msg:         msg,
		Recoverable: strings.Contains(msg, "重复提交"),
	}
}
