package response

type ResCode int64

const (
	CodeSuccess ResCode = 1000 + iota
	CodeInvalidParam
	CodeNeedLogin
	CodeInvalidToken
	CodeSessionExpired
	CodeLoginEror
	CodeRunActive
	CodeRunNotFound
	CodeNothingToSign
	CodeServerBusy
)

var codeMsgMap = map[ResCode]string{
	CodeSuccess:        "success",
	CodeInvalidParam:   "请求参数错误",
	CodeNeedLogin:      "需要登录",
	CodeInvalidToken:   "无效的token",
	CodeSessionExpired: "登录凭证已过期，请重新登录",
	CodeLoginEror:      "登录有误，请重新登录",
	CodeRunActive:      "补签任务正在进行中",
	CodeRunNotFound:    "补签记录不存在",
	CodeNothingToSign:  "没有需要补签的记录",
	CodeServerBusy:     "系统繁忙",
}

func (c ResCode) Msg() string {
	msg, ok := codeMsgMap[c]
	if !ok {
		msg = codeMsgMap[CodeServerBusy]
	}
	return msg
}
