package checkin

import (
	"buqian/dao/redis"
	"buqian/model/hrsign"

	"go.uber.org/zap"
)

// AttendanceAPI 远端考勤系统提供的五个操作，由hrsign.Client实现，
// 测试里用假实现替换
type AttendanceAPI interface {
	GetAttendanceRecordList(cred *hrsign.Credential, yearmo string) (*hrsign.RecordListResult, error)
	GetAttendanceRecordByDate(cred *hrsign.Credential, date string) (*hrsign.DayDetail, error)
	GetApproveBdkFlow(cred *hrsign.Credential, timestamp int64) ([]hrsign.BdkFlow, error)
	NewSignAgain(cred *hrsign.Credential) (*hrsign.SignAgainConfig, error)
	StartAttendanceApproval(cred *hrsign.Credential, approval *hrsign.ApprovalPayload) error
}

// cachedAPI 在远端客户端外面套一层redis缓存，目前只缓存补签流程配置，
// 流程配置和分析结果无关，短时间内不会变化
type cachedAPI struct {
	AttendanceAPI
	userId string
}

func newCachedAPI(userId string, api AttendanceAPI) AttendanceAPI {
	return &cachedAPI{AttendanceAPI: api, userId: userId}
}

func (c *cachedAPI) NewSignAgain(cred *hrsign.Credential) (*hrsign.SignAgainConfig, error) {
	if config, err := redis.GetSignAgainConfig(c.userId); err == nil && config != nil {
		return config, nil
	}
	config, err := c.AttendanceAPI.NewSignAgain(cred)
	if err != nil {
		return nil, err
	}
	if err := redis.SetSignAgainConfig(c.userId, config); err != nil {
		zap.L().Warn("缓存补签配置失败", zap.Error(err))
	}
	return config, nil
}
