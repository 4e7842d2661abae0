package response

import (
	"GrowAGram/internal/api/dto"
	"GrowAGram/internal/pkg/util"
	"GrowAGram/internal/service"
	stdjson "encoding/json"
	"errors"
	"io"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}
	if errors.Is(err, util.ErrValidation) {
		Fail(c, BadRequest, err.Error())
		return
	}

	if isJSONError(err) {
		Fail(c, BadRequest, "Json错误")
		return
	}
	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.CodeOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}

// isJSONError 请求体解析失败；gin 默认使用 encoding/json 绑定，缓存与消息使用 go-json，两者都要识别
func isJSONError(err error) bool {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var (
		stdTypeErr   *stdjson.UnmarshalTypeError
		stdSyntaxErr *stdjson.SyntaxError
		typeErr      *json.UnmarshalTypeError
		syntaxErr    *json.SyntaxError
		timeErr      *time.ParseError
	)
	return errors.As(err, &stdTypeErr) || errors.As(err, &stdSyntaxErr) ||
		errors.As(err, &typeErr) || errors.As(err, &syntaxErr) ||
		errors.As(err, &timeErr)
}
