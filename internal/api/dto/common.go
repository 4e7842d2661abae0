package dto

// Response 统一返回体
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO 分页参数
type PageDTO struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// PageResultDTO 分页结果
type PageResultDTO[T any] struct {
	Total int64 `json:"total"`
	List  []T   `json:"list"`
}
