package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"AuraGo/config"
	"AuraGo/utils"

	"github.com/go-resty/resty/v2"
)

// SpeechService 语音厂商客户端：转写 + 合成
type SpeechService struct {
	http    *resty.Client
	voiceID string
	storage *StorageClient
}

func NewSpeechService(apiKey, endpoint, voiceID string, storage *StorageClient) *SpeechService {
	client := resty.New().
		SetBaseURL(endpoint).
		SetHeader("xi-api-key", apiKey).
		SetTimeout(120 * time.Second)

	return &SpeechService{
		http:    client,
		voiceID: voiceID,
		storage: storage,
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe 将音频转写为文本，厂商错误原样上抛，不重试
func (s *SpeechService) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(audio)).
		SetFormData(map[string]string{"model_id": "scribe_v1"}).
		Post("/v1/speech-to-text")
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("transcription failed: status %d: %s", resp.StatusCode(), resp.String())
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("unexpected transcription response: %w", err)
	}
	return parsed.Text, nil
}

// Synthesize 将文本合成为语音并上传到对象存储，返回公开地址。
// 厂商调用失败直接返回错误；只有存储写入走重试（见 StorageClient.Upload）。
func (s *SpeechService) Synthesize(ctx context.Context, uid, text string) (string, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"text":     text,
			"model_id": "eleven_turbo_v2",
		}).
		Post(fmt.Sprintf("/v1/text-to-speech/%s", s.voiceID))
	if err != nil {
		return "", fmt.Errorf("speech synthesis request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("speech synthesis failed: status %d: %s", resp.StatusCode(), resp.String())
	}

	path := fmt.Sprintf("%s/%s.mp3", uid, utils.GenerateID())
	url, err := s.storage.Upload(ctx, BucketVoice, path, "audio/mpeg", resp.Body())
	if err != nil {
		config.Logger.Errorw("语音文件上传失败", "uid", uid, "error", err)
		return "", err
	}
	return url, nil
}
