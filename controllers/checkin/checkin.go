package checkin

import (
	"errors"
	"fmt"

	redisdao "buqian/dao/redis"
	"buqian/global"
	logic "buqian/logic/checkin"
	"buqian/model/hrsign"
	"buqian/model/params"
	"buqian/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// currentUser 取出当前登录用户的ID，取不到直接回"需要登录"
func currentUser(c *gin.Context) (userId string, ok bool) {
	userId, err := global.GetCurrentUserId(c)
	if err != nil {
		response.ResponseError(c, response.CodeNeedLogin)
		return "", false
	}
	return userId, true
}

// currentSession 取出当前登录用户和它保存的远端会话凭证
func currentSession(c *gin.Context) (userId string, cred *hrsign.Credential, ok bool) {
	userId, ok = currentUser(c)
	if !ok {
		return "", nil, false
	}
	cred, err := redisdao.GetSession(userId)
	if err != nil {
		zap.L().Warn("会话凭证获取失败", zap.String("userid", userId), zap.Error(err))
		response.ResponseError(c, response.CodeSessionExpired)
		return "", nil, false
	}
	return userId, cred, true
}

// StartCheckin 发起一键补签：分析指定月份的考勤，返回需要补签的预览列表
func StartCheckin(c *gin.Context) {
	var p params.ParamStartCheckin
	if err := c.ShouldBindJSON(&p); err != nil {
		zap.L().Error("StartCheckin with invalid param", zap.Error(err))
		response.FailWithMessage("参数有误", c)
		return
	}
	err := global.GLOAB_VALIDATOR.Struct(p)
	if err != nil {
		zap.L().Error("validator with invalid param", zap.Error(err))
		// 校验错误翻译成中文再返回
		if errs, ok := err.(validator.ValidationErrors); ok {
			response.ResponseErrorWithMsg(c, response.CodeInvalidParam, fmt.Sprint(errs.Translate(global.GLOAB_TRANS)))
			return
		}
		response.FailWithMessage(err.Error(), c)
		return
	}
	userId, cred, ok := currentSession(c)
	if !ok {
		return
	}
	items, err := logic.GetManager(userId).Start(cred, p.Yearmo)
	if err != nil {
		if errors.Is(err, global.ErrorRunActive) {
			response.ResponseError(c, response.CodeRunActive)
			return
		}
		response.FailWithMessage(err.Error(), c)
		return
	}
	msg := "考勤分析完成"
	if len(items) == 0 {
		msg = response.CodeNothingToSign.Msg()
	}
	response.OkWithDetailed(gin.H{
		"count": len(items),
		"items": items,
	}, msg, c)
}

// ConfirmCheckin 确认预览结果，开始后台提交，进度用GetCheckinStatus轮询
func ConfirmCheckin(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	err := logic.GetManager(userId).Confirm()
	if err != nil {
		response.FailWithMessage(err.Error(), c)
		return
	}
	response.OkWithMessage("开始补签", c)
}

// CancelCheckin 放弃预览结果
func CancelCheckin(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	err := logic.GetManager(userId).Cancel()
	if err != nil {
		response.FailWithMessage(err.Error(), c)
		return
	}
	response.OkWithMessage("已取消", c)
}

// DismissCheckin 关闭结果展示，回到空闲
func DismissCheckin(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	logic.GetManager(userId).Dismiss()
	response.Ok(c)
}

// GetCheckinStatus 当前补签任务的状态快照
func GetCheckinStatus(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}
	response.ResponseSuccess(c, logic.GetManager(userId).Snapshot())
}
