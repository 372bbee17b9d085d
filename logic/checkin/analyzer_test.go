package checkin

import (
	"errors"
	"testing"
	"time"

	model "buqian/model/checkin"
	"buqian/model/hrsign"
)

// fakeAPI 测试用的远端考勤系统假实现
type fakeAPI struct {
	records    *hrsign.RecordListResult
	recordsErr error
	details    map[string]*hrsign.DayDetail
	detailErr  map[string]error
	bdkFlows   map[int64][]hrsign.BdkFlow
	bdkErr     error
	config     *hrsign.SignAgainConfig
	configErr  error
	submit     func(approval *hrsign.ApprovalPayload) error
	submitted  []*hrsign.ApprovalPayload
}

func (f *fakeAPI) GetAttendanceRecordList(cred *hrsign.Credential, yearmo string) (*hrsign.RecordListResult, error) {
	if f.recordsErr != nil {
		return nil, f.recordsErr
	}
	return f.records, nil
}

func (f *fakeAPI) GetAttendanceRecordByDate(cred *hrsign.Credential, date string) (*hrsign.DayDetail, error) {
	if err, ok := f.detailErr[date]; ok {
		return nil, err
	}
	return f.details[date], nil
}

func (f *fakeAPI) GetApproveBdkFlow(cred *hrsign.Credential, timestamp int64) ([]hrsign.BdkFlow, error) {
	if f.bdkErr != nil {
		return nil, f.bdkErr
	}
	return f.bdkFlows[timestamp], nil
}

func (f *fakeAPI) NewSignAgain(cred *hrsign.Credential) (*hrsign.SignAgainConfig, error) {
	if f.configErr != nil {
		return nil, f.configErr
	}
	return f.config, nil
}

func (f *fakeAPI) StartAttendanceApproval(cred *hrsign.Credential, approval *hrsign.ApprovalPayload) error {
	f.submitted = append(f.submitted, approval)
	if f.submit != nil {
		return f.submit(approval)
	}
	return nil
}

func dayTimestamp(year int, month time.Month, day int) int64 {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Unix()
}

func clockTimestamp(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local).Unix()
}

func warningRecord(ts int64) hrsign.AttendanceRecord {
	return hrsign.AttendanceRecord{
		Time:         ts,
		Workday:      true,
		Situation:    hrsign.SituationWarning,
		CurrentMonth: true,
	}
}

func dayDetail(beginClock, beginDesc, endClock, endDesc string) *hrsign.DayDetail {
	return &hrsign.DayDetail{
		SignTimeList: []hrsign.SignTime{
			{RangeName: "上班", ClockTime: beginClock, StatusDesc: beginDesc, ClockAttribution: 1, RangeId: "range-1"},
			{RangeName: "下班", ClockTime: endClock, StatusDesc: endDesc, ClockAttribution: 2, RangeId: "range-2"},
		},
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	ts := dayTimestamp(2025, 11, 10)
	type fields struct {
		api *fakeAPI
	}
	tests := []struct {
		name      string
		fields    fields
		wantItems []*model.ApprovalItem
		wantErr   bool
	}{
		{
			name: "正常记录不产生补签项",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{
					{Time: ts, Situation: hrsign.SituationNormal, CurrentMonth: true},
				}},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "异常记录但打卡完整也不产生补签项",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("09:30", "", "19:05", "")},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "缺上班卡补10点",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "19:05", "")},
			}},
			wantItems: []*model.ApprovalItem{
				{Date: "11-10", Time: "10:00", ClockType: 1, RangeId: "range-1", Timestamp: ts, Status: model.StatusPending},
			},
		},
		{
			name: "缺下班卡补19点",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("09:30", "", "", "")},
			}},
			wantItems: []*model.ApprovalItem{
				{Date: "11-10", Time: "19:00", ClockType: 2, RangeId: "range-2", Timestamp: ts, Status: model.StatusPending},
			},
		},
		{
			name: "上班卡晚于19点时下班补上班时间加一分钟",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("19:30", "", "", "")},
			}},
			wantItems: []*model.ApprovalItem{
				{Date: "11-10", Time: "19:31", ClockType: 2, RangeId: "range-2", Timestamp: ts, Status: model.StatusPending},
			},
		},
		{
			name: "打卡了但被标记异常同样要补",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("10:20", "迟到", "19:05", "")},
			}},
			wantItems: []*model.ApprovalItem{
				{Date: "11-10", Time: "10:00", ClockType: 1, RangeId: "range-1", Timestamp: ts, Status: model.StatusPending},
			},
		},
		{
			name: "已有上班补签记录时不重复生成",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("", "", "19:05", "")},
				bdkFlows: map[int64][]hrsign.BdkFlow{
					ts: {{StartDate: clockTimestamp(2025, 11, 10, 10, 0)}},
				},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "已有下班补签记录时不重复生成",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": dayDetail("09:30", "", "", "")},
				bdkFlows: map[int64][]hrsign.BdkFlow{
					ts: {{StartDate: clockTimestamp(2025, 11, 10, 19, 0)}},
				},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "详情拉取失败只跳过该天",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				detailErr: map[string]error{
					"20251110": errors.New("boom"),
				},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "时段结构缺失时跳过该天",
			fields: fields{api: &fakeAPI{
				records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{warningRecord(ts)}},
				details: map[string]*hrsign.DayDetail{"20251110": {
					SignTimeList: []hrsign.SignTime{
						{RangeName: "上班", ClockAttribution: 1, RangeId: "range-1"},
					},
				}},
			}},
			wantItems: []*model.ApprovalItem{},
		},
		{
			name: "记录列表拉取失败整体失败",
			fields: fields{api: &fakeAPI{
				recordsErr: errors.New("boom"),
			}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnalyzer(tt.fields.api)
			gotItems, err := a.Analyze(&hrsign.Credential{}, "202511")
			if (err != nil) != tt.wantErr {
				t.Errorf("Analyze() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var fetchErr *model.DataFetchError
				if !errors.As(err, &fetchErr) {
					t.Errorf("Analyze() error = %v, want *DataFetchError", err)
				}
				return
			}
			if len(gotItems) != len(tt.wantItems) {
				t.Fatalf("Analyze() got %d items, want %d", len(gotItems), len(tt.wantItems))
			}
			for i := range gotItems {
				if *gotItems[i] != *tt.wantItems[i] {
					t.Errorf("Analyze() item[%d] = %+v, want %+v", i, *gotItems[i], *tt.wantItems[i])
				}
			}
		})
	}
}

func TestAnalyzer_AnalyzeOrder(t *testing.T) {
	day1 := dayTimestamp(2025, 11, 10)
	day2 := dayTimestamp(2025, 11, 12)
	api := &fakeAPI{
		records: &hrsign.RecordListResult{Records: []hrsign.AttendanceRecord{
			warningRecord(day1),
			{Time: dayTimestamp(2025, 11, 11), Situation: hrsign.SituationNormal, CurrentMonth: true},
			warningRecord(day2),
		}},
		details: map[string]*hrsign.DayDetail{
			"20251110": dayDetail("", "", "", ""),
			"20251112": dayDetail("", "", "19:05", ""),
		},
	}
	a := NewAnalyzer(api)
	items, err := a.Analyze(&hrsign.Credential{}, "202511")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	wantOrder := []struct {
		date      string
		clockType int
	}{
		{"11-10", 1},
		{"11-10", 2},
		{"11-12", 1},
	}
	if len(items) != len(wantOrder) {
		t.Fatalf("Analyze() got %d items, want %d", len(items), len(wantOrder))
	}
	for i, want := range wantOrder {
		if items[i].Date != want.date || items[i].ClockType != want.clockType {
			t.Errorf("item[%d] = %s/%d, want %s/%d", i, items[i].Date, items[i].ClockType, want.date, want.clockType)
		}
	}
}

func TestSplitTime(t *testing.T) {
	type args struct {
		target string
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"case1", args{target: "09:30"}, []int{9, 30}},
		{"case2", args{target: "19:00"}, []int{19, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTime(tt.args.target)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitTime() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitTime() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
