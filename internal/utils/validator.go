package utils

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	zhTranslations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/spf13/viper"
)

var trans ut.Translator

// InitTrans wires the gin validator to a translator so validation errors are
// readable on the client side.
func InitTrans() {
	lang := viper.GetString("server.lang")
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {

		// report field names from the json tag
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			return field.Tag.Get("json")
		})

		zhT := zh.New()
		enT := en.New()

		uni := ut.New(enT, zhT, enT)

		var ok bool
		trans, ok = uni.GetTranslator(lang)
		if !ok {
			panic(fmt.Errorf("uni.GetTranslator(%s) failed", lang))
		}

		var err error
		switch lang {
		case "zh":
			err = zhTranslations.RegisterDefaultTranslations(v, trans)
		default:
			err = enTranslations.RegisterDefaultTranslations(v, trans)
		}
		if err != nil {
			panic(err.Error())
		}
	}
}

func ParseToValidationError(err error) any {
	var res any
	if v, ok := err.(validator.ValidationErrors); ok {
		res = v.Translate(GetTranslator())
	} else {
		res = "invalid params"
	}
	return res
}

func GetTranslator() ut.Translator {
	return trans
}
