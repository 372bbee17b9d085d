package hrsign

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// BdkFlow 已经提交过的补签审批流
type BdkFlow struct {
	StartDate int64 `json:"startDate"` //补签目标时间的时间戳（秒）
}

type Department struct {
	DepartmentId string `json:"departmentId"`
}

// SignAgainConfig 发起补签审批需要的流程配置
type SignAgainConfig struct {
	FlowType       string       `json:"flow_type"`
	FlowSettingId  string       `json:"flowSettingId"`
	DepartmentList []Department `json:"departmentList"`
}

// ApprovalPayload 单条补签申请的请求体
type ApprovalPayload struct {
	FlowType      string `json:"flow_type"`
	FlowSettingId string `json:"flowSettingId"`
	DepartmentId  string `json:"departmentId"`
	Date          string `json:"date"`       //当天零点时间戳字符串
	StartDate     string `json:"start_date"` //yyyy-MM-dd HH:mm
	TimeRangeId   string `json:"timeRangeId"`
	BdkDate       string `json:"bdkDate"` //yyyy-MM-dd
	ClockType     int    `json:"clockType"`
}

// GetApproveBdkFlow 查询某天已有的补签审批流，timestamp为当天零点时间戳（秒）
func (c *Client) GetApproveBdkFlow(cred *Credential, timestamp int64) (flows []BdkFlow, err error) {
	b := struct {
		Date string `json:"date"`
	}{Date: strconv.FormatInt(timestamp, 10)}
	body, err := c.postJSON(cred, "/attend/approve/bdkFlow", &b)
	if err != nil {
		return nil, errors.WithMessage(err, "获取已有补签记录失败")
	}
	r := struct {
		HrResponseCommon
		Data []BdkFlow `json:"data"`
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

// NewSignAgain 获取补签审批的流程配置
func (c *Client) NewSignAgain(cred *Credential) (config *SignAgainConfig, err error) {
	body, err := c.postJSON(cred, "/attend/approve/newSignAgain", struct{}{})
	if err != nil {
		return nil, errors.WithMessage(err, "获取补签配置失败")
	}
	r := struct {
		HrResponseCommon
		Data *SignAgainConfig `json:"data"`
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

// StartAttendanceApproval 发起一条补签审批。远端拒绝时返回*SubmitError，
// 是否可重试在这里按返回信息分类，上层不再做字符串判断
func (c *Client) StartAttendanceApproval(cred *Credential, approval *ApprovalPayload) (err error) {
	body, err := c.postJSON(cred, "/attend/approve/start", approval)
	if err != nil {
		return errors.WithMessage(err, "提交补签申请失败")
	}
	r := HrResponseCommon{}
	err = json.Unmarshal(body, &r)
	if err != nil {
		return
	}
	if r.Code != 0 {
		return ClassifySubmitError(r.Msg)
	}
	return nil
}
