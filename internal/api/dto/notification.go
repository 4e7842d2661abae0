package dto

type NotificationListDTO struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

type NotificationReadDTO struct {
	ID string `json:"id" binding:"required"`
}
