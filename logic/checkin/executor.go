package checkin

import (
	"errors"
	"strconv"
	"time"

	model "buqian/model/checkin"
	"buqian/model/hrsign"
	"buqian/utils"

	"go.uber.org/zap"
)

const (
	DefaultPacingInterval = 10 * time.Second //两次提交之间的固定间隔，远端按人速处理，打快了会被拒
	DefaultRetryBudget    = 5                //单条补签的最大尝试次数
)

// Executor 补签执行器，拿到分析出的补签项后逐条提交
type Executor struct {
	api      AttendanceAPI
	Interval time.Duration
	Budget   int
}

func NewExecutor(api AttendanceAPI) *Executor {
	return &Executor{
		api:      api,
		Interval: DefaultPacingInterval,
		Budget:   DefaultRetryBudget,
	}
}

// Execute 执行补签流程。流程配置只取一次，取不到时一条都不会提交；
// 各条严格按列表顺序串行提交，前一条（包括它的重试）完全结束之前
// 不会开始下一条
func (e *Executor) Execute(cred *hrsign.Credential, items []*model.ApprovalItem, onProgress func(index int, item *model.ApprovalItem)) error {
	config, err := e.api.NewSignAgain(cred)
	if err != nil {
		return &model.ConfigFetchError{Err: err}
	}
	if config == nil || len(config.DepartmentList) == 0 {
		return &model.ConfigFetchError{Err: errors.New("补签流程配置不完整")}
	}

	for i, item := range items {
		item.Status = model.StatusProcessing
		if onProgress != nil {
			onProgress(i, item)
		}

		e.submitApproval(cred, item, config)

		if onProgress != nil {
			onProgress(i, item)
		}

		// 最后一条之后不用再等
		if i < len(items)-1 {
			time.Sleep(e.Interval)
		}
	}
	return nil
}

// submitApproval 提交单条补签申请。只有"重复提交"类的瞬时拒绝才会
// 在预算内重试，其余失败立刻终止该条
func (e *Executor) submitApproval(cred *hrsign.Credential, item *model.ApprovalItem, config *hrsign.SignAgainConfig) {
	approval := &hrsign.ApprovalPayload{
		FlowType:      config.FlowType,
		FlowSettingId: config.FlowSettingId,
		DepartmentId:  config.DepartmentList[0].DepartmentId,
		Date:          strconv.FormatInt(utils.MidnightUnix(item.Timestamp), 10),
		StartDate:     utils.FormatFullDate(item.Timestamp) + " " + item.Time,
		TimeRangeId:   item.RangeId,
		BdkDate:       utils.FormatFullDate(item.Timestamp),
		ClockType:     item.ClockType,
	}

	var lastError string
	for retry := 0; retry < e.Budget; retry++ {
		err := e.api.StartAttendanceApproval(cred, approval)
		if err == nil {
			item.Status = model.StatusSuccess
			return
		}
		lastError = err.Error()

		var submitErr *hrsign.SubmitError
		if !errors.As(err, &submitErr) || !submitErr.Recoverable {
			item.Status = model.StatusError
			item.Error = lastError
			return
		}
		zap.L().Warn("补签被拒为重复提交，重试", zap.String("date", item.Date), zap.Int("retry", retry+1))
	}

	// 尝试次数用完
	item.Status = model.StatusError
	if lastError == "" {
		lastError = "重复提交多次失败"
	}
	item.Error = lastError
}
