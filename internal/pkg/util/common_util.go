package util

import (
	"GrowAGram/internal/pkg/consts"
	"math/rand/v2"
)

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

func PtrStr(s string) *string {
	return &s
}

func PtrFloat32(f float32) *float32 {
	return &f
}

// DerefStr 空指针返回空串
func DerefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Paginate 将页码转换为 limit/offset，页码从 1 开始
func Paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = consts.DefaultPageSize
	}
	if pageSize > consts.MaxPageSize {
		pageSize = consts.MaxPageSize
	}
	return pageSize, (page - 1) * pageSize
}

// RandomGrowerName 随机昵称
func RandomGrowerName() string {
	return consts.GrowerNames[rand.IntN(len(consts.GrowerNames))]
}
