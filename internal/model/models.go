package model

// All 自动迁移的模型列表
func All() []any {
	return []any{
		&User{},
		&Strain{},
		&Report{},
		&Post{},
		&PostImage{},
		&Comment{},
		&Like{},
	}
}
