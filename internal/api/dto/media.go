package dto

// MediaTempMetadata 已上传但尚未被帖子/报告引用的图片
type MediaTempMetadata struct {
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int64  `json:"size"`
	Thumbnail string `json:"thumbnail,omitempty"`
	CreatedAt int64  `json:"created_at"`
}

type MediaUploadResultDTO struct {
	ImageID      string `json:"imageId"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Mime         string `json:"mime"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int64  `json:"size"`
}
