package checkin

import (
	"sync"
	"time"

	"buqian/global"
	model "buqian/model/checkin"
	"buqian/model/hrsign"

	"go.uber.org/zap"
)

// Manager 一键补签管理器，负责协调分析、预览确认和执行补签的整个流程。
// 状态只会沿 idle → analyzing → previewing → submitting → completed 流转，
// analyzing和submitting阶段会把并发的Start请求直接拒绝掉，不排队。
type Manager struct {
	mu     sync.Mutex
	api    AttendanceAPI
	userId string

	state      string
	runID      int64
	yearmo     string
	cred       *hrsign.Credential
	items      []*model.ApprovalItem
	failReason string

	genID  func() int64
	pacing time.Duration
	budget int

	// OnResult 任务到达终态时回调（落库等），持锁外异步调用
	OnResult func(run *model.CheckinRun)
}

func NewManager(userId string, api AttendanceAPI) *Manager {
	return &Manager{
		api:    api,
		userId: userId,
		state:  model.StateIdle,
		genID:  func() int64 { return time.Now().UnixNano() },
		pacing: DefaultPacingInterval,
		budget: DefaultRetryBudget,
	}
}

// Start 发起一次补签任务：分析考勤数据并进入预览状态。
// 分析结果为空也是合法的预览（"没有需要补签的记录"）。
func (m *Manager) Start(cred *hrsign.Credential, yearmo string) ([]*model.ApprovalItem, error) {
	m.mu.Lock()
	if m.state == model.StateAnalyzing || m.state == model.StateSubmitting {
		m.mu.Unlock()
		return nil, global.ErrorRunActive
	}
	m.state = model.StateAnalyzing
	m.runID = m.genID()
	m.yearmo = yearmo
	m.cred = cred
	m.items = nil
	m.failReason = ""
	m.mu.Unlock()

	items, err := NewAnalyzer(m.api).Analyze(cred, yearmo)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = model.StateFailed
		m.failReason = err.Error()
		zap.L().Error("考勤分析失败", zap.String("yearmo", yearmo), zap.Error(err))
		m.notifyResultLocked()
		return nil, err
	}
	m.items = items
	m.state = model.StatePreviewing
	zap.L().Info("考勤分析完成", zap.String("yearmo", yearmo), zap.Int("count", len(items)))
	return model.CloneItems(items), nil
}

// Confirm 确认预览结果，开始提交。提交阶段在后台串行执行，
// 进度通过Snapshot轮询。预览为空时直接完结。
func (m *Manager) Confirm() error {
	m.mu.Lock()
	if m.state != model.StatePreviewing {
		m.mu.Unlock()
		return global.ErrorRunNotPreviewing
	}
	if len(m.items) == 0 {
		m.state = model.StateCompleted
		m.notifyResultLocked()
		m.mu.Unlock()
		return nil
	}
	m.state = model.StateSubmitting
	cred := m.cred
	working := model.CloneItems(m.items)
	m.mu.Unlock()

	go m.runExecutor(cred, working)
	return nil
}

// Cancel 放弃预览结果，回到空闲。提交一旦开始就不能取消
func (m *Manager) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != model.StatePreviewing {
		return global.ErrorRunNotPreviewing
	}
	m.state = model.StateIdle
	m.items = nil
	m.failReason = ""
	return nil
}

// Dismiss 关闭结果展示，从终态回到空闲
func (m *Manager) Dismiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != model.StateCompleted && m.state != model.StateFailed {
		return
	}
	m.state = model.StateIdle
	m.items = nil
	m.failReason = ""
}

// Snapshot 当前任务的只读快照，items是深拷贝，渲染方随便读
func (m *Manager) Snapshot() *model.RunStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	success, errCount := countOutcomes(m.items)
	return &model.RunStatus{
		RunID:        m.runID,
		State:        m.state,
		Yearmo:       m.yearmo,
		Items:        model.CloneItems(m.items),
		SuccessCount: success,
		ErrorCount:   errCount,
		FailReason:   m.failReason,
	}
}

// runExecutor 在后台执行提交。执行器改的是自己的一份拷贝，
// 每次进度回调时才把单条结果同步回管理器，避免并发读写同一批对象
func (m *Manager) runExecutor(cred *hrsign.Credential, items []*model.ApprovalItem) {
	executor := NewExecutor(m.api)
	executor.Interval = m.pacing
	executor.Budget = m.budget

	err := executor.Execute(cred, items, func(index int, item *model.ApprovalItem) {
		m.mu.Lock()
		if index >= 0 && index < len(m.items) {
			m.items[index] = item.Clone()
		}
		m.mu.Unlock()
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		// 只有流程配置没取到才会走到这里，一条都没提交
		m.state = model.StateFailed
		m.failReason = err.Error()
		zap.L().Error("补签提交失败", zap.Error(err))
	} else {
		m.state = model.StateCompleted
		success, errCount := countOutcomes(m.items)
		zap.L().Info("补签完成", zap.String("yearmo", m.yearmo),
			zap.Int("success", success), zap.Int("error", errCount))
	}
	m.notifyResultLocked()
}

func (m *Manager) notifyResultLocked() {
	if m.OnResult == nil {
		return
	}
	run := m.buildRunLocked()
	go m.OnResult(run)
}

func (m *Manager) buildRunLocked() *model.CheckinRun {
	run := &model.CheckinRun{
		ID:         m.runID,
		UserId:     m.userId,
		Yearmo:     m.yearmo,
		State:      m.state,
		FailReason: m.failReason,
	}
	run.SuccessCount, run.ErrorCount = countOutcomes(m.items)
	for _, item := range m.items {
		run.Items = append(run.Items, model.CheckinRunItem{
			RunID:     m.runID,
			Date:      item.Date,
			Time:      item.Time,
			ClockType: item.ClockType,
			RangeId:   item.RangeId,
			Timestamp: item.Timestamp,
			Status:    item.Status,
			Error:     item.Error,
		})
	}
	return run
}

func countOutcomes(items []*model.ApprovalItem) (success, errCount int) {
	for _, item := range items {
		switch item.Status {
		case model.StatusSuccess:
			success++
		case model.StatusError:
			errCount++
		}
	}
	return
}
