package hrsign

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// 考勤记录状态
const (
	SituationNormal  = 0
	SituationWarning = -1 //考勤异常，需要分析是否补签
)

// AttendanceRecord 归档月份中的一天
type AttendanceRecord struct {
	Date         string     `json:"date"`
	Time         int64      `json:"time"` //当天零点的时间戳（秒）
	Workday      bool       `json:"workday"`
	Situation    int        `json:"situation"`    //0 正常，-1 异常
	CurrentMonth bool       `json:"currentMonth"` //false表示日历上相邻月份的补位日期
	SignTimeList []SignTime `json:"signTimeList,omitempty"`
}

// SignTime 一天之内某个时段的打卡信息
type SignTime struct {
	RangeName        string `json:"rangeName"` //上班 或 下班
	ClockTime        string `json:"clockTime"` //实际打卡时间 HH:mm，未打卡为空
	StatusDesc       string `json:"statusDesc"` //异常描述，如迟到、早退，正常为空
	ClockAttribution int    `json:"clockAttribution"` //1 上班卡，2 下班卡
	RangeId          string `json:"rangeId"`
}

type ArchiveInfo struct {
	Yearmo string `json:"yearmo"`
	Begin  int64  `json:"begin"`
	End    int64  `json:"end"`
}

type RecordListResult struct {
	Records []AttendanceRecord `json:"records"`
	Archive ArchiveInfo        `json:"archive"`
}

type DayDetail struct {
	SignTimeList []SignTime `json:"signTimeList"`
}

// UserInfo 当前登录人信息，登录时用来校验凭证是否有效
type UserInfo struct {
	CompanyName  string `json:"companyName"`
	EmployeeName string `json:"employeeName"`
}

// GetAttendanceRecordList 获取某个归档月份的考勤记录列表
func (c *Client) GetAttendanceRecordList(cred *Credential, yearmo string) (result *RecordListResult, err error) {
	b := struct {
		Yearmo string `json:"yearmo"`
	}{Yearmo: yearmo}
	body, err := c.postJSON(cred, "/attend/record/list", &b)
	if err != nil {
		return nil, errors.WithMessage(err, "获取考勤记录失败")
	}
	r := struct {
		HrResponseCommon
		Data *RecordListResult `json:"data"`
	}{}
	err = json.Unmarshal(body, &r)
	if err != nil {
		return
	}
	if r.Code != 0 {
		return nil, errors.New(r.Msg)
	}
	return r.Data, nil
}

// GetAttendanceRecordByDate 获取某一天的打卡详情，date格式为yyyyMMdd
func (c *Client) GetAttendanceRecordByDate(cred *Credential, date string) (detail *DayDetail, err error) {
	b := struct {
		Date string `json:"date"`
	}{Date: date}
	body, err := c.postJSON(cred, "/attend/record/detail", &b)
	if err != nil {
		return nil, errors.WithMessage(err, "获取打卡详情失败")
	}
	r := struct {
		HrResponseCommon
		Data *DayDetail `json:"data"`
	}{}
	err = json.Unmarshal(body, &r)
	if err != nil {
		return
	}
	if r.Code != 0 {
		return nil, errors.New(r.Msg)
	}
	return r.Data, nil
}

// GetUserInfo 查询当前会话对应的用户信息
func (c *Client) GetUserInfo(cred *Credential) (user *UserInfo, err error) {
	body, err := c.postJSON(cred, "/user/info", struct{}{})
	if err != nil {
		return nil, errors.WithMessage(err, "获取用户信息失败")
	}
	r := struct {
		HrResponseCommon
		Data *UserInfo `json:"data"`
	}{}
	err = json.Unmarshal(body, &r)
	if err != nil {
		return
	}
	if r.Code != 0 {
		return nil, errors.New(r.Msg)
	}
	return r.Data, nil
}
