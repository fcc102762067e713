package services

import (
	"context"
	"fmt"
	"time"

	"AuraGo/config"

	"github.com/go-resty/resty/v2"
)

// 存储桶名称
const (
	BucketVoice  = "voice-notes"
	BucketImages = "user-images"
)

const (
	uploadMaxAttempts = 3
	uploadBackoffStep = 2 * time.Second
)

// StorageClient 对象存储REST客户端
type StorageClient struct {
	http     *resty.Client
	endpoint string
}

func NewStorageClient(apiKey, endpoint string) *StorageClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetAuthToken(apiKey).
		SetTimeout(60 * time.Second)

	return &StorageClient{
		http:     client,
		endpoint: endpoint,
	}
}

// Upload 上传文件并返回公开访问地址。
// 存储端偶发5xx，固定重试3次、线性退避；调用方的厂商请求本身不重试。
func (s *StorageClient) Upload(ctx context.Context, bucket, path, contentType string, data []byte) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= uploadMaxAttempts; attempt++ {
		resp, err := s.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", contentType).
			SetBody(data).
			Post(fmt.Sprintf("/object/%s/%s", bucket, path))

		if err == nil && resp.IsSuccess() {
			return s.PublicURL(bucket, path), nil
		}

		if err != nil {
			lastErr = err
		} else {
			lastErr = fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode(), resp.String())
		}

		config.Logger.Warnw("对象存储上传失败",
			"bucket", bucket,
			"path", path,
			"attempt", attempt,
			"error", lastErr,
		)

		if attempt < uploadMaxAttempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * uploadBackoffStep):
			}
		}
	}

	return "", lastErr
}

// PublicURL 拼接对象的公开访问地址
func (s *StorageClient) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.endpoint, bucket, path)
}
