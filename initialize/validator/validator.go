package validator

import (
	"strconv"

	"buqian/global"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
)

func Init() (err error) {
	global.GLOAB_VALIDATOR = validator.New()
	err = global.GLOAB_VALIDATOR.RegisterValidation("yearmo", yearmoValid)
	if err != nil {
		return
	}
	zhT := zh.New()
	uni := ut.New(zhT, zhT)
	global.GLOAB_TRANS, _ = uni.GetTranslator("zh")
	err = zhTranslations.RegisterDefaultTranslations(global.GLOAB_VALIDATOR, global.GLOAB_TRANS)
	return
}

// yearmoValid 归档月份必须是YYYYMM，月份01-12
func yearmoValid(fl validator.FieldLevel) bool {
	yearmo := fl.Field().String()
	if len(yearmo) != 6 {
		return false
	}
	year, err := strconv.Atoi(yearmo[:4])
	if err != nil || year < 2000 {
		return false
	}
	month, err := strconv.Atoi(yearmo[4:])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	return true
}
