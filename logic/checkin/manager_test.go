package checkin

import (
	"errors"
	"testing"
	"time"

	"buqian/global"
	model "buqian/model/checkin"
	"buqian/model/hrsign"
)

func newTestManager(api AttendanceAPI) *Manager {
	m := NewManager("u-1", api)
	m.pacing = 0 // 测试里不等
	return m
}

// waitState 轮询快照直到任务到达期望状态
func waitState(t *testing.T, m *Manager, state string) *model.RunStatus {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		snapshot := m.Snapshot()
		if snapshot.State == state {
			return snapshot
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("state never reached %s, last = %s", state, m.Snapshot().State)
	return nil
}

func TestManager_EmptyPreview(t *testing.T) {
	api := &fakeAPI{records: &hrsign.RecordListResult{}}
	m := newTestManager(api)
	items, err := m.Start(&hrsign.Credential{}, "202511")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Start() returned %d items, want 0", len(items))
	}
	// 空列表也是合法的预览："没有需要补签的记录"
	if got := m.Snapshot().State; got != model.StatePreviewing {
		t.Errorf("state = %s, want previewing", got)
	}
	if err = m.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	snapshot := waitState(t, m, model.StateCompleted)
	if snapshot.SuccessCount != 0 || snapshot.ErrorCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", snapshot.SuccessCount, snapshot.ErrorCount)
	}
}

func TestManager_FullFlow(t *testing.T) {
	ts := dayTimestamp(2025, 11, 10)
	api := &fakeAPI{
		records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
		details: map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "", "")},
		config:  testConfig(),
	}
	m := newTestManager(api)

	resultCh := make(chan *model.CheckinRun, 1)
	m.OnResult = func(run *model.CheckinRun) {
		resultCh <- run
	}

	items, err := m.Start(&hrsign.Credential{}, "202511")
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Start() returned %d items, want 2", len(items))
	}
	if err = m.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	snapshot := waitState(t, m, model.StateCompleted)
	if snapshot.SuccessCount != 2 || snapshot.ErrorCount != 0 {
		t.Errorf("counts = %d/%d, want 2/0", snapshot.SuccessCount, snapshot.ErrorCount)
	}
	for i, item := range snapshot.Items {
		if item.Status != model.StatusSuccess {
			t.Errorf("item[%d].Status = %s, want success", i, item.Status)
		}
	}

	select {
	case run := <-resultCh:
		if run.State != model.StateCompleted || run.SuccessCount != 2 || len(run.Items) != 2 {
			t.Errorf("run = %s %d/%d with %d items", run.State, run.SuccessCount, run.ErrorCount, len(run.Items))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("OnResult never called")
	}
}

func TestManager_PartialFailureStillCompletes(t *testing.T) {
	ts := dayTimestamp(2025, 11, 10)
	api := &fakeAPI{
		records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
		details: map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "", "")},
		config:  testConfig(),
	}
	api.submit = func(approval *hrsign.ApprovalPayload) error {
		if approval.ClockType == 2 {
			return &hrsign.SubmitError{Msg: "审批流不存在", Recoverable: false}
		}
		return nil
	}
	m := newTestManager(api)
	if _, err := m.Start(&hrsign.Credential{}, "202511"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	// 个别条目失败不影响整体完结
	snapshot := waitState(t, m, model.StateCompleted)
	if snapshot.SuccessCount != 1 || snapshot.ErrorCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", snapshot.SuccessCount, snapshot.ErrorCount)
	}
}

func TestManager_RejectsConcurrentStart(t *testing.T) {
	ts := dayTimestamp(2025, 11, 10)
	blockCh := make(chan struct{})
	api := &fakeAPI{
		records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
		details: map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "19:05", "")},
		config:  testConfig(),
	}
	api.submit = func(approval *hrsign.ApprovalPayload) error {
		<-blockCh
		return nil
	}
	m := newTestManager(api)
	if _, err := m.Start(&hrsign.Credential{}, "202511"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	waitState(t, m, model.StateSubmitting)

	// 提交进行中，新任务直接拒绝，不排队
	if _, err := m.Start(&hrsign.Credential{}, "202511"); !errors.Is(err, global.ErrorRunActive) {
		t.Errorf("Start() error = %v, want ErrorRunActive", err)
	}

	close(blockCh)
	waitState(t, m, model.StateCompleted)
}

func TestManager_CancelFromPreviewing(t *testing.T) {
	api := &fakeAPI{records: &hrsign.RecordListResult{}}
	m := newTestManager(api)
	if _, err := m.Start(&hrsign.Credential{}, "202511"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Cancel(); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}
	if got := m.Snapshot().State; got != model.StateIdle {
		t.Errorf("state = %s, want idle", got)
	}
	// 空闲状态下取消没有意义
	if err := m.Cancel(); err == nil {
		t.Error("Cancel() from idle should fail")
	}
}

func TestManager_AnalyzeFailure(t *testing.T) {
	api := &fakeAPI{recordsErr: errors.New("boom")}
	m := newTestManager(api)
	_, err := m.Start(&hrsign.Credential{}, "202511")
	if err == nil {
		t.Fatal("Start() error = nil, want DataFetchError")
	}
	snapshot := m.Snapshot()
	if snapshot.State != model.StateFailed {
		t.Errorf("state = %s, want failed", snapshot.State)
	}
	if snapshot.FailReason == "" {
		t.Error("FailReason is empty")
	}
	m.Dismiss()
	if got := m.Snapshot().State; got != model.StateIdle {
		t.Errorf("state after Dismiss = %s, want idle", got)
	}
}

func TestManager_ConfigFetchFailureFailsRun(t *testing.T) {
	ts := dayTimestamp(2025, 11, 10)
	api := &fakeAPI{
		records:   &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
		details:   map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "19:05", "")},
		configErr: errors.New("boom"),
	}
	m := newTestManager(api)
	if _, err := m.Start(&hrsign.Credential{}, "202511"); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := m.Confirm(); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	snapshot := waitState(t, m, model.StateFailed)
	if snapshot.FailReason == "" {
		t.Error("FailReason is empty")
	}
	if len(api.submitted) != 0 {
		t.Errorf("submitted %d times, want 0", len(api.submitted))
	}
}

func TestManager_ConfirmRequiresPreviewing(t *testing.T) {
	m := newTestManager(&fakeAPI{})
	if err := m.Confirm(); !errors.Is(err, global.ErrorRunNotPreviewing) {
		t.Errorf("Confirm() error = %v, want ErrorRunNotPreviewing", err)
	}
}
