package utils

import (
	"context"
	"fmt"
	"time"

	"vtube/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var mc *minio.Client

// 预签名URL有效期
const UploadURLExpiry = 15 * time.Minute

// InitMinIO 初始化MinIO
func InitMinIO() error {
	c := config.ConfigInfo.Minio

	// 创建 MinIO 客户端实例
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		return err
	}

	mc = client

	// 验证连接：检查存储桶是否存在，不存在则创建
	ctx := context.Background()
	exists, err := mc.BucketExists(ctx, c.Bucket)
	if err != nil {
		return err
	}

	if !exists {
		// 创建存储桶
		err = mc.MakeBucket(ctx, c.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
		logrus.Infof("MinIO 存储桶 '%s' 创建成功", c.Bucket)
	}

	// 设置存储桶策略为公开读取（允许匿名访问头像和封面图）
	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, c.Bucket)

	err = mc.SetBucketPolicy(ctx, c.Bucket, policy)
	if err != nil {
		// 不是致命错误，记录后继续
		logrus.Warnf("设置存储桶公开策略失败: %v", err)
	}

	logrus.Info("MinIO 连接成功")
	return nil
}

// GenerateUploadURL 生成预签名上传URL
// 参数：对象名（应该是UUID生成的唯一文件名）
// 返回：预签名URL和错误
func GenerateUploadURL(objectName string) (string, error) {
	ctx := context.Background()

	// 生成预签名PUT URL
	presignedURL, err := mc.PresignedPutObject(ctx, config.ConfigInfo.Minio.Bucket, objectName, UploadURLExpiry)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// GenerateDownloadURL 生成永久下载URL
// 存储桶是公开读取的，直接拼接访问地址即可
func GenerateDownloadURL(objectName string) string {
	c := config.ConfigInfo.Minio
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, c.Endpoint, c.Bucket, objectName)
}
