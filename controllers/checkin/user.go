package checkin

import (
	"time"

	redisdao "buqian/dao/redis"
	"buqian/global"
	"buqian/initialize/jwt"
	"buqian/initialize/viper"
	"buqian/model/hrsign"
	"buqian/model/params"
	"buqian/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newHrClient() *hrsign.Client {
	timeout := time.Duration(viper.Conf.HrConfig.Timeout) * time.Second
	return hrsign.NewClient(viper.Conf.HrConfig.BaseURL, timeout)
}

// LoginHandler 处理登录请求。Cookie和CSRF由外部登录流程获取后交进来，
// 这里先拿它调一次用户信息接口验证凭证有效，再把会话存进redis
func LoginHandler(c *gin.Context) {
	//1.获取请求参数及参数校验
	var p params.ParamLogin
	if err := c.ShouldBindJSON(&p); err != nil { //这个地方只能判断是不是json格式的数据
		zap.L().Error("Login with invalid param", zap.Error(err))
		response.FailWithMessage("参数有误", c)
		return
	}
	//2.业务逻辑处理
	cred := &hrsign.Credential{Cookie: p.Cookie, Csrf: p.Csrf}
	user, err := newHrClient().GetUserInfo(cred)
	if err != nil {
		zap.L().Error("登录凭证校验失败", zap.String("userid", p.UserId), zap.Error(err))
		response.ResponseError(c, response.CodeLoginEror)
		return
	}
	expire := time.Duration(viper.Conf.Auth.Jwt_Expire) * time.Hour
	if err = redisdao.SetSession(p.UserId, cred, expire); err != nil {
		zap.L().Error("会话保存失败", zap.Error(err))
		response.FailWithMessage("用户登录失败", c)
		return
	}
	// 生成JWT
	token, err := jwt.GenToken(p.UserId)
	if err != nil {
		zap.L().Error("JWT生成错误", zap.Error(err))
		response.FailWithMessage("用户登录失败", c)
		return
	}
	//3.返回响应
	response.OkWithDetailed(gin.H{
		"token":        token,
		"companyName":  user.CompanyName,
		"employeeName": user.EmployeeName,
	}, "用户登录成功", c)
}

// LogoutHandler 退出登录，删掉保存的会话凭证
func LogoutHandler(c *gin.Context) {
	userId, err := global.GetCurrentUserId(c)
	if err != nil {
		response.ResponseError(c, response.CodeNeedLogin)
		return
	}
	if err = redisdao.DelSession(userId); err != nil {
		zap.L().Error("会话删除失败", zap.String("userid", userId), zap.Error(err))
		response.FailWithMessage("退出登录失败", c)
		return
	}
	response.OkWithMessage("退出登录成功", c)
}
