package consts

const (
	MimePrefixImage = "image"
)

const (
	// MaxPostImages 每篇帖子最多图片数
	MaxPostImages = 9
	// DefaultPageSize 列表默认分页大小
	DefaultPageSize = 20
	MaxPageSize     = 100
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
