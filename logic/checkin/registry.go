package checkin

import (
	"sync"
	"time"

	"buqian/dao/mysql"
	"buqian/initialize/snowflake"
	"buqian/initialize/viper"
	model "buqian/model/checkin"
	"buqian/model/hrsign"

	"go.uber.org/zap"
)

var (
	managersMu sync.Mutex
	managers   = make(map[string]*Manager)
)

// GetManager 每个用户一个补签任务管理器，同一用户的并发任务由管理器互斥
func GetManager(userId string) *Manager {
	managersMu.Lock()
	defer managersMu.Unlock()
	if m, ok := managers[userId]; ok {
		return m
	}

	timeout := time.Duration(viper.Conf.HrConfig.Timeout) * time.Second
	client := hrsign.NewClient(viper.Conf.HrConfig.BaseURL, timeout)
	m := NewManager(userId, newCachedAPI(userId, client))
	if cfg := viper.Conf.CheckinConfig; cfg != nil {
		if cfg.PacingSeconds > 0 {
			m.pacing = time.Duration(cfg.PacingSeconds) * time.Second
		}
		if cfg.RetryBudget > 0 {
			m.budget = cfg.RetryBudget
		}
	}
	m.genID = snowflake.GenID
	m.OnResult = func(run *model.CheckinRun) {
		if err := mysql.SaveCheckinRun(run); err != nil {
			zap.L().Error("保存补签任务记录失败", zap.Int64("runId", run.ID), zap.Error(err))
		}
	}
	managers[userId] = m
	return m
}
