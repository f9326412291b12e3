package services

import (
	"errors"
	"path/filepath"
	"strings"

	"vtube/utils"

	"github.com/google/uuid"
)

// UploadService 上传服务层
// 客户端先向后端换取预签名URL，再把头像/封面图直接上传到对象存储
type UploadService struct{}

// 允许的图片格式
var allowedImageFormats = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// 图片大小限制（10MB）
const MaxImageSize = 10 * 1024 * 1024

// UploadURLRequest 获取上传URL请求
type UploadURLRequest struct {
	Filename string `json:"filename" binding:"required"` // 原始文件名
	Filesize int64  `json:"filesize" binding:"required"` // 文件大小（字节）
}

// UploadURLResponse 获取上传URL响应
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"` // 预签名上传URL
	FileURL   string `json:"fileUrl"`   // 上传完成后的访问URL
}

// GetUploadURL 获取图片上传凭证
func (s *UploadService) GetUploadURL(req UploadURLRequest) (*UploadURLResponse, error) {
	// 1. 验证文件格式
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedImageFormats[ext] {
		return nil, errors.New("不支持的图片格式，仅支持 jpg, jpeg, png, webp")
	}

	// 2. 验证文件大小
	if req.Filesize <= 0 {
		return nil, errors.New("文件大小无效")
	}
	if req.Filesize > MaxImageSize {
		return nil, errors.New("文件大小超过限制（最大10MB）")
	}

	// 3. 生成唯一对象名：UUID + 原始扩展名
	objectName := uuid.New().String() + ext

	// 4. 生成预签名上传URL
	uploadURL, err := utils.GenerateUploadURL(objectName)
	if err != nil {
		return nil, errors.New("生成上传URL失败")
	}

	return &UploadURLResponse{
		UploadURL: uploadURL,
		FileURL:   utils.GenerateDownloadURL(objectName),
	}, nil
}
