package cron

import (
	"errors"
	"time"

	"buqian/global"
	"buqian/initialize/viper"
	checkin "buqian/logic/checkin"
	"buqian/model/hrsign"
	"buqian/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InitCorn 初始化定时器。配置里开了自动补签的话，按cron表达式
// 定期对配置的账号跑一遍完整的补签流程
func InitCorn() {
	global.GLOAB_CORN = cron.New()
	cfg := viper.Conf.CheckinConfig
	if cfg != nil && cfg.AutoEnable {
		_, err := global.GLOAB_CORN.AddFunc(cfg.CronSpec, AutoCheckin)
		if err != nil {
			zap.L().Error("自动补签定时任务注册失败", zap.String("spec", cfg.CronSpec), zap.Error(err))
		} else {
			zap.L().Info("自动补签定时任务已注册", zap.String("spec", cfg.CronSpec))
		}
	}
	global.GLOAB_CORN.Start()
}

// AutoCheckin 对配置的账号执行一次补签。默认在每月1号触发，
// 此时要补的是上个月的考勤归档，有缺卡就直接确认提交
func AutoCheckin() {
	cfg := viper.Conf.CheckinConfig
	cred := &hrsign.Credential{Cookie: cfg.AutoCookie, Csrf: cfg.AutoCsrf}
	yearmo := utils.GetAdjacentMonth(time.Now().Format("200601"), -1)

	m := checkin.GetManager(cfg.AutoUserId)
	m.Dismiss() // 上一轮的结果还挂着的话先清掉
	items, err := m.Start(cred, yearmo)
	if err != nil {
		if errors.Is(err, global.ErrorRunActive) {
			zap.L().Warn("自动补签跳过：已有任务在进行中", zap.String("yearmo", yearmo))
			return
		}
		zap.L().Error("自动补签分析失败", zap.String("yearmo", yearmo), zap.Error(err))
		return
	}
	if len(items) == 0 {
		zap.L().Info("自动补签：本月没有需要补签的记录", zap.String("yearmo", yearmo))
	}
	if err = m.Confirm(); err != nil {
		zap.L().Error("自动补签确认失败", zap.Error(err))
	}
}
