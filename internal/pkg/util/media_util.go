package util

import (
	"GrowAGram/internal/pkg/consts"
	"bytes"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// ImageInfo 上传图片的解析结果
type ImageInfo struct {
	MimeType  string
	Extension string
	Width     int
	Height    int
	Image     image.Image // 无法解码的格式 (如 webp) 为 nil
}

// DetectMime 根据文件内容嗅探 MIME 类型
func DetectMime(data []byte) *mimetype.MIME {
	return mimetype.Detect(data)
}

// IsImage 是否为图片类型
func IsImage(mime string) bool {
	return strings.HasPrefix(mime, consts.MimePrefixImage+"/")
}

// InspectImage 嗅探并解码图片，非图片返回 false
func InspectImage(data []byte) (*ImageInfo, bool) {
	mt := DetectMime(data)
	if !IsImage(mt.String()) {
		return nil, false
	}
	info := &ImageInfo{
		MimeType:  mt.String(),
		Extension: mt.Extension(),
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err == nil {
		b := img.Bounds()
		info.Width, info.Height = b.Dx(), b.Dy()
		info.Image = img
		return info, true
	}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		info.Width, info.Height = cfg.Width, cfg.Height
	}
	return info, true
}

// Thumbnail 按宽度等比缩放并编码为 JPEG
func Thumbnail(img image.Image, width int, w io.Writer) error {
	if img == nil {
		return fmt.Errorf("image is nil")
	}
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)
	return imaging.Encode(w, thumb, imaging.JPEG, imaging.JPEGQuality(80))
}
