package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// VideoService 视频生成厂商客户端
type VideoService struct {
	http      *resty.Client
	replicaID string
}

func NewVideoService(apiKey, endpoint, replicaID string) *VideoService {
	client := resty.New().
		SetBaseURL(endpoint).
		SetHeader("x-api-key", apiKey).
		SetTimeout(60 * time.Second)

	return &VideoService{
		http:      client,
		replicaID: replicaID,
	}
}

// VideoJob 视频任务创建结果
type VideoJob struct {
	JobID     string `json:"jobId"`
	HostedURL string `json:"hostedUrl"`
}

// VideoStatus 归一化后的任务状态
type VideoStatus struct {
	Status   string // queued, generating, completed, failed
	VideoURL string // 终态时按优先级选出的唯一地址
}

// vendorStatusPayload 厂商状态响应，三个URL字段可能任意缺省
type vendorStatusPayload struct {
	Status      string `json:"status"`
	DownloadURL string `json:"download_url"`
	StreamURL   string `json:"stream_url"`
	HostedURL   string `json:"hosted_url"`
}

// CreateJob 提交视频生成任务，立即返回任务ID和托管进度页地址，不等待生成
func (v *VideoService) CreateJob(ctx context.Context, script string) (*VideoJob, error) {
	resp, err := v.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"replica_id": v.replicaID,
			"script":     script,
		}).
		Post("/v2/videos")
	if err != nil {
		return nil, fmt.Errorf("video job request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("video job creation failed: status %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed struct {
		VideoID   string `json:"video_id"`
		HostedURL string `json:"hosted_url"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("unexpected video job response: %w", err)
	}
	if parsed.VideoID == "" {
		return nil, fmt.Errorf("video job response missing video_id")
	}

	return &VideoJob{JobID: parsed.VideoID, HostedURL: parsed.HostedURL}, nil
}

// GetStatus 查询任务状态并归一化URL字段
func (v *VideoService) GetStatus(ctx context.Context, jobID string) (*VideoStatus, error) {
	resp, err := v.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/v2/videos/%s", jobID))
	if err != nil {
		return nil, fmt.Errorf("video status request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("video status failed: status %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed vendorStatusPayload
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("unexpected video status response: %w", err)
	}

	return &VideoStatus{
		Status:   normalizeVideoStatus(parsed.Status),
		VideoURL: SelectVideoURL(parsed.DownloadURL, parsed.StreamURL, parsed.HostedURL),
	}, nil
}

// SelectVideoURL 按固定优先级选取唯一视频地址：
// 可下载地址 > 流式地址 > 托管播放页。
func SelectVideoURL(downloadURL, streamURL, hostedURL string) string {
	if downloadURL != "" {
		return downloadURL
	}
	if streamURL != "" {
		return streamURL
	}
	return hostedURL
}

func normalizeVideoStatus(vendor string) string {
	switch vendor {
	case "ready", "completed", "done":
		return "completed"
	case "error", "failed", "deleted":
		return "failed"
	case "queued":
		return "queued"
	default:
		// generating, rendering 等中间态统一视为进行中
		return "generating"
	}
}
