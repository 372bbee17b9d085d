package params

// ParamLogin 登录参数，Cookie和Csrf由外部登录流程（webview侧）获取
type ParamLogin struct {
	UserId string `json:"userid" binding:"required"`
	Cookie string `json:"cookie" binding:"required"`
	Csrf   string `json:"csrf" binding:"required"`
}

// ParamStartCheckin 发起一键补签
type ParamStartCheckin struct {
	Yearmo string `json:"yearmo" binding:"required" validate:"yearmo"` //归档月份，如202511
}
