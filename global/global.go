package global

import (
	"errors"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var (
	GLOAB_DB          *gorm.DB
	GLOBAL_REDIS      *redis.Client
	GLOAB_VALIDATOR   *validator.Validate
	GLOAB_TRANS       ut.Translator
	GLOAB_CORN        *cron.Cron
	GLOBAL_GIN_Engine *gin.Engine
)

var ErrorUserNotLogin = errors.New("用户登录状态有误，请重新登录")
var ErrorSessionExpired = errors.New("登录凭证已过期，请重新登录")
var ErrorRunActive = errors.New("补签任务正在进行中，请勿重复发起")
var ErrorRunNotPreviewing = errors.New("当前没有待确认的补签预览")

const CtxUserIDKey = "user_id"

// GetCurrentUserId 获取当前登录用户的ID
func GetCurrentUserId(c *gin.Context) (UserID string, err error) {
	uid, ok := c.Get(CtxUserIDKey)
	if !ok {
		err = ErrorUserNotLogin
		return
	}
	UserID, ok = uid.(string) // 进行类型断言
	if !ok {
		err = ErrorUserNotLogin
		return
	}
	return UserID, nil
}
