package viper

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Conf = new(Config)

type Config struct {
	Mode          string         `mapstructure:"mode"`
	App           *AppConfig     `mapstructure:"app"`
	LogConfig     *LogConfig     `mapstructure:"log"`
	MySQLConfig   *MySQLConfig   `mapstructure:"mysql"`
	RedisConfig   *RedisConfig   `mapstructure:"redis"`
	Auth          *AuthConfig    `mapstructure:"auth"`
	HrConfig      *HrConfig      `mapstructure:"hr"`
	CheckinConfig *CheckinConfig `mapstructure:"checkin"`
}

type AppConfig struct {
	Name      string `mapstructure:"name"`
	Port      int    `mapstructure:"port"`
	MachineID int64  `mapstructure:"machine_id"`
	StartTime string `mapstructure:"start_time"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type MySQLConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type AuthConfig struct {
	Jwt_Expire int64 `mapstructure:"jwt_expire"` //小时
}

// HrConfig 人事考勤系统的访问配置
type HrConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` //秒
}

// CheckinConfig 一键补签配置
type CheckinConfig struct {
	PacingSeconds int    `mapstructure:"pacing_seconds"` //两次提交之间的间隔，远端系统拒绝连续快速提交
	RetryBudget   int    `mapstructure:"retry_budget"`   //单条补签的最大尝试次数
	AutoEnable    bool   `mapstructure:"auto_enable"`    //是否开启定时自动补签
	CronSpec      string `mapstructure:"cron_spec"`
	AutoUserId    string `mapstructure:"auto_userid"`
	AutoCookie    string `mapstructure:"auto_cookie"`
	AutoCsrf      string `mapstructure:"auto_csrf"`
}

func Init() (err error) {
	viper.SetConfigFile("config.yaml")
	err = viper.ReadInConfig()
	if err != nil {
		fmt.Printf("viper.ReadInConfig failed, err:%v\n", err)
		return
	}
	if err = viper.Unmarshal(Conf); err != nil {
		fmt.Printf("viper.Unmarshal failed, err:%v\n", err)
		return
	}
	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		zap.L().Info("配置文件修改了...")
		if err := viper.Unmarshal(Conf); err != nil {
			zap.L().Error("配置文件热加载失败", zap.Error(err))
		}
	})
	return
}
