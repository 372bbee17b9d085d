package checkin

import (
	"strconv"
	"strings"

	model "buqian/model/checkin"
	"buqian/model/hrsign"
	"buqian/utils"

	"go.uber.org/zap"
)

// 补签时间的上下界：上班补到10点，下班补到19点
const (
	HourStart = 10
	HourEnd   = 19
)

// Analyzer 考勤分析器，负责分析考勤数据，找出需要补签的记录
type Analyzer struct {
	api AttendanceAPI
}

func NewAnalyzer(api AttendanceAPI) *Analyzer {
	return &Analyzer{api: api}
}

// Analyze 分析一个归档月份的考勤数据，返回需要补签的项目列表，
// 顺序和远端记录列表的日期顺序一致
func (a *Analyzer) Analyze(cred *hrsign.Credential, yearmo string) (approvalList []*model.ApprovalItem, err error) {
	approvalList = make([]*model.ApprovalItem, 0)
	result, err := a.api.GetAttendanceRecordList(cred, yearmo)
	if err != nil {
		return nil, &model.DataFetchError{Err: err}
	}
	for i := range result.Records {
		record := &result.Records[i]
		if record.Situation != hrsign.SituationWarning {
			continue
		}
		approvalList = append(approvalList, a.analyzeRecord(cred, record)...)
	}
	return approvalList, nil
}

// analyzeRecord 分析单条异常考勤记录。某一天的详情拉不下来只跳过这一天，
// 不能让整个月的分析失败
func (a *Analyzer) analyzeRecord(cred *hrsign.Credential, record *hrsign.AttendanceRecord) (items []*model.ApprovalItem) {
	recordTime := record.Time
	dateStr := utils.FormatDateForAPI(recordTime)
	detail, err := a.api.GetAttendanceRecordByDate(cred, dateStr)
	if err != nil || detail == nil {
		zap.L().Warn("获取打卡详情失败，跳过该天", zap.String("date", dateStr), zap.Error(err))
		return
	}

	var timeBegin, timeEnd *hrsign.SignTime
	for i := range detail.SignTimeList {
		signTime := &detail.SignTimeList[i]
		if signTime.RangeName == "上班" {
			timeBegin = signTime
		} else if signTime.RangeName == "下班" {
			timeEnd = signTime
		}
	}

	// 已有的补签记录，上午10点前的算上班补签，19点后的算下班补签
	var bdkBegin, bdkEnd string
	flows, err := a.api.GetApproveBdkFlow(cred, recordTime)
	if err != nil {
		zap.L().Warn("获取已有补签记录失败", zap.String("date", dateStr), zap.Error(err))
	} else {
		for _, approve := range flows {
			t := utils.ParseTimestamp(approve.StartDate)
			if t.Hour <= HourStart {
				bdkBegin = utils.FormatTime(t.Hour, t.Minute)
			} else if t.Hour >= HourEnd {
				bdkEnd = utils.FormatTime(t.Hour, t.Minute)
			}
		}
	}

	if timeBegin == nil || timeEnd == nil {
		return
	}

	// 需要补签上班：没有已有补签，且没打卡或者打卡被标记异常（迟到早退也要补）
	if bdkBegin == "" && (timeBegin.ClockTime == "" || timeBegin.StatusDesc != "") {
		items = append(items, &model.ApprovalItem{
			Date:      utils.FormatDate(recordTime),
			Time:      utils.FormatTime(HourStart, 0),
			ClockType: timeBegin.ClockAttribution,
			RangeId:   timeBegin.RangeId,
			Timestamp: recordTime,
			Status:    model.StatusPending,
		})
	}

	// 需要补签下班：同样的判断。如果上班卡打在19点之后，目标时间取
	// 上班时间+1分钟，避免补出来的下班时间早于上班时间
	if bdkEnd == "" && (timeEnd.ClockTime == "" || timeEnd.StatusDesc != "") {
		hour := HourEnd
		minute := 0
		if timeBegin.ClockTime != "" {
			begin := SplitTime(timeBegin.ClockTime)
			if len(begin) >= 2 && begin[0] >= HourEnd {
				hour = begin[0]
				minute = begin[1] + 1
			}
		}
		items = append(items, &model.ApprovalItem{
			Date:      utils.FormatDate(recordTime),
			Time:      utils.FormatTime(hour, minute),
			ClockType: timeEnd.ClockAttribution,
			RangeId:   timeEnd.RangeId,
			Timestamp: recordTime,
			Status:    model.StatusPending,
		})
	}
	return
}

func SplitTime(target string) []int {
	split := strings.Split(target, ":")
	res := make([]int, 0)
	for _, s := range split {
		atoi, _ := strconv.Atoi(s)
		res = append(res, atoi)
	}
	return res
}
