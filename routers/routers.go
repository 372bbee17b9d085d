package routers

import (
	"net/http"

	checkin2 "buqian/controllers/checkin"
	"buqian/global"
	"buqian/initialize/logger"
	"buqian/middlewares"

	"github.com/gin-gonic/gin"
)

func Setup(mode string) *gin.Engine {
	if mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode) //设置为发布模式
	}
	r := gin.New()
	global.GLOBAL_GIN_Engine = r
	r.Use(middlewares.Cors(), logger.GinLogger(), logger.GinRecovery(true))

	/*=========具体业务路由==========*/
	Checkin := r.Group("/api/checkin")
	{
		//无需token验证
		Checkin.POST("login", checkin2.LoginHandler)
	}
	Checkin.Use(middlewares.JWTAuthMiddleware())
	{
		Checkin.POST("logout", checkin2.LogoutHandler)
		Checkin.POST("start", checkin2.StartCheckin)
		Checkin.POST("confirm", checkin2.ConfirmCheckin)
		Checkin.POST("cancel", checkin2.CancelCheckin)
		Checkin.POST("dismiss", checkin2.DismissCheckin)
		Checkin.GET("status", checkin2.GetCheckinStatus)
		Checkin.GET("runs", checkin2.ListCheckinRuns)
		Checkin.GET("runs/:id", checkin2.GetCheckinRun)
		Checkin.GET("runs/:id/export", checkin2.ExportCheckinRun)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"msg": "404",
		})
	})
	return r
}
