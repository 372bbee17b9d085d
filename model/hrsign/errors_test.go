package hrsign

import "testing"

func TestClassifySubmitError(t *testing.T) {
	type args struct {
		msg string
	}
	tests := []struct {
		name            string
		args            args
		wantMsg         string
		wantRecoverable bool
	}{
		{"重复提交可重试", args{msg: "请勿重复提交"}, "请勿重复提交", true},
		{"重复提交在句中也算", args{msg: "操作失败：重复提交，请稍后再试"}, "操作失败：重复提交，请稍后再试", true},
		{"其他错误终止", args{msg: "审批流不存在"}, "审批流不存在", false},
		{"空消息兜底", args{msg: ""}, "未知错误", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifySubmitError(tt.args.msg)
			if got.Msg != tt.wantMsg {
				t.Errorf("ClassifySubmitError().Msg = %v, want %v", got.Msg, tt.wantMsg)
			}
			if got.Recoverable != tt.wantRecoverable {
				t.Errorf("ClassifySubmitError().Recoverable = %v, want %v", got.Recoverable, tt.wantRecoverable)
			}
		})
	}
}
