package enter

import (
	"fmt"

	"buqian/initialize/cron"
	"buqian/initialize/logger"
	"buqian/initialize/mysql"
	"buqian/initialize/redis"
	"buqian/initialize/snowflake"
	"buqian/initialize/validator"
	"buqian/initialize/viper"

	"go.uber.org/zap"
)

func Init() {
	// 初始化viper
	err := viper.Init()
	if err != nil {
		zap.L().Error(fmt.Sprintf("init viper failed ,err:%v\n", err))
		return
	}
	zap.L().Debug("viper init success...")
	err = validator.Init()
	if err != nil {
		zap.L().Error(fmt.Sprintf("init validator failed ,err:%v\n", err))
		return
	}
	zap.L().Debug("validator init success...")

	// 初始化Zap
	if err = logger.Init(viper.Conf.LogConfig, viper.Conf.Mode); err != nil {
		zap.L().Error(fmt.Sprintf("init logger failed ,err:%v\n", err))
		return
	}
	defer zap.L().Sync()
	zap.L().Debug("zap init success...")
	// 初始化snowflake
	if err = snowflake.Init(viper.Conf.App.StartTime, viper.Conf.App.MachineID); err != nil {
		zap.L().Error(fmt.Sprintf("init snowflake failed ,err:%v\n", err))
		return
	}
	zap.L().Debug("snowflake init success...")
	// 初始化mysql
	if err = mysql.Init(viper.Conf.MySQLConfig); err != nil {
		zap.L().Error(fmt.Sprintf("init mysql failed ,err:%v\n", err))
		return
	}
	zap.L().Debug("mysql init success...")
	// 初始化redis
	if err = redis.Init(viper.Conf.RedisConfig); err != nil {
		zap.L().Error(fmt.Sprintf("init redis failed ,err:%v\n", err))
		return
	}
	zap.L().Debug("redis init success...")
	//初始化corn定时器
	cron.InitCorn()
}
