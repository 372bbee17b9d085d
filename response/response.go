package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code int         `json:"code"`
	Data interface{} `json:"data"`
	Msg  string      `json:"msg"`
}

func Result(code int, data interface{}, msg string, c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		code,
		data,
		msg,
	})
}

func Ok(c *gin.Context) {
	Result(int(CodeSuccess), map[string]interface{}{}, "操作成功", c)
}

func OkWithMessage(message string, c *gin.Context) {
	Result(int(CodeSuccess), map[string]interface{}{}, message, c)
}

func OkWithDetailed(data interface{}, message string, c *gin.Context) {
	Result(int(CodeSuccess), data, message, c)
}

func Fail(c *gin.Context) {
	Result(int(CodeServerBusy), map[string]interface{}{}, "操作失败", c)
}

func FailWithMessage(message string, c *gin.Context) {
	Result(int(CodeServerBusy), map[string]interface{}{}, message, c)
}

func ResponseSuccess(c *gin.Context, data interface{}) {
	Result(int(CodeSuccess), data, CodeSuccess.Msg(), c)
}

func ResponseError(c *gin.Context, code ResCode) {
	Result(int(code), nil, code.Msg(), c)
}

func ResponseErrorWithMsg(c *gin.Context, code ResCode, msg string) {
	Result(int(code), nil, msg, c)
}
