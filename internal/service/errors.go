package service

import (
	"GrowAGram/internal/pkg/timeline"
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrDateInvalid           = errors.New("日期格式错误，应为 YYYY-MM-DD")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUserBan               = errors.New("用户已被封禁")
	ErrUserUsernameExist     = errors.New("用户名已存在")
	ErrPasswordIncorrect     = errors.New("密码错误")
	ErrPasswordInvalid       = errors.New("密码过长或为空")
	ErrFileNotSupported      = errors.New("不支持的文件类型")
	ErrFileNotExist          = errors.New("文件不存在")
	ErrFileTooLarge          = errors.New("文件过大")
	ErrTooManyImages         = errors.New("图片数量超过限制")
	ErrReportNotFound        = errors.New("报告不存在")
	ErrPostNotFound          = errors.New("帖子不存在")
	ErrPostBeforeReportStart = errors.New("帖子日期不能早于报告开始日期")
	ErrOnePostPerDay         = errors.New("每个报告每天只能发布一篇帖子")
	ErrCommentNotFound       = errors.New("评论不存在")
	ErrLikeItemType          = errors.New("不支持的点赞对象")
	ErrLikeNotFound          = errors.New("尚未点赞")
	ErrActionDuplicate       = errors.New("重复操作")
	ErrStrainLookup          = errors.New("品种信息查询失败")
	ErrNotificationNotFound  = errors.New("通知不存在")
	UnauthorizedError        = errors.New("权限不足")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:           BadRequest,
	ErrDateInvalid:            BadRequest,
	timeline.ErrInvalidOffset: BadRequest,
	ErrUserNotFound:           NotFound,
	ErrUserBan:                Unauthorized,
	ErrUserUsernameExist:      BadRequest,
	ErrPasswordIncorrect:      Unauthorized,
	ErrPasswordInvalid:        BadRequest,
	ErrFileNotSupported:       BadRequest,
	ErrFileNotExist:           NotFound,
	ErrFileTooLarge:           BadRequest,
	ErrTooManyImages:          BadRequest,
	ErrReportNotFound:         NotFound,
	ErrPostNotFound:           NotFound,
	ErrPostBeforeReportStart:  BadRequest,
	ErrOnePostPerDay:          BadRequest,
	ErrCommentNotFound:        NotFound,
	ErrLikeItemType:           BadRequest,
	ErrLikeNotFound:           NotFound,
	ErrActionDuplicate:        BadRequest,
	ErrStrainLookup:           BadGateway,
	ErrNotificationNotFound:   NotFound,
	UnauthorizedError:         Unauthorized,
	UnExpectedError:           InternalServerError,
}

// CodeOf 返回错误对应的业务码，包装过的错误按 errors.Is 匹配
func CodeOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
