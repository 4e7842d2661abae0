package api

import "GrowAGram/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	ReportHandler       *handler.ReportHandler
	PostHandler         *handler.PostHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	StrainHandler       *handler.StrainHandler
	MediaHandler        *handler.MediaHandler
	NotificationHandler *handler.NotificationHandler
	TimelineHandler     *handler.TimelineHandler
}
