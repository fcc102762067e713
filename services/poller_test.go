package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"AuraGo/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	config.Logger = zap.NewNop().Sugar()
}

// fakeVideo 可编程的视频状态桩
type fakeVideo struct {
	calls     int
	responses func(call int) (*VideoStatus, error)
}

func (f *fakeVideo) GetStatus(ctx context.Context, jobID string) (*VideoStatus, error) {
	f.calls++
	return f.responses(f.calls)
}

func newTestPoller(video videoStatusFetcher) (*RecapPoller, *[]string) {
	var log []string
	ctx, cancel := context.WithCancel(context.Background())
	p := &RecapPoller{
		video:    video,
		interval: 0, // 测试中不等待
		baseCtx:  ctx,
		cancel:   cancel,
		cancels:  make(map[string]context.CancelFunc),
		persist: func(recapID, videoURL string) {
			log = append(log, "persist:"+videoURL)
		},
		mark: func(recapID, status string) {
			log = append(log, "mark:"+status)
		},
		release: func(uid string) {
			log = append(log, "release:"+uid)
		},
	}
	return p, &log
}

func TestNextPollJobCreated(t *testing.T) {
	next := NextPoll(PollSnapshot{State: PollStateInitial}, EventJobCreated)
	assert.Equal(t, PollStatePolling, next.State)
}

func TestNextPollTerminalStatesAbsorb(t *testing.T) {
	done := PollSnapshot{State: PollStateCompleted}
	assert.Equal(t, done, NextPoll(done, EventProcessing))

	failed := PollSnapshot{State: PollStateFailed}
	assert.Equal(t, failed, NextPoll(failed, EventCompleted))
}

// 连续40次"仍在处理"后必须进入failed，不允许第41次
func TestNextPollAttemptBudget(t *testing.T) {
	s := PollSnapshot{State: PollStatePolling}
	for i := 0; i < MaxPollAttempts-1; i++ {
		s = NextPoll(s, EventProcessing)
		assert.Equal(t, PollStatePolling, s.State, "attempt %d", i+1)
	}
	s = NextPoll(s, EventProcessing)
	assert.Equal(t, PollStateFailed, s.State)
	assert.Equal(t, MaxPollAttempts, s.Attempts)
}

// 请求级失败有独立的40次预算
func TestNextPollErrorBudget(t *testing.T) {
	s := PollSnapshot{State: PollStatePolling}
	for i := 0; i < MaxPollAttempts; i++ {
		s = NextPoll(s, EventRequestError)
	}
	assert.Equal(t, PollStateFailed, s.State)
	assert.Equal(t, MaxPollAttempts, s.Errors)
}

func TestRunCompletesAndPersists(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		if call < 3 {
			return &VideoStatus{Status: "generating"}, nil
		}
		return &VideoStatus{Status: "completed", VideoURL: "https://cdn.example.com/v.mp4"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, 3, video.calls)
	assert.Contains(t, *log, "mark:processing")
	assert.Contains(t, *log, "persist:https://cdn.example.com/v.mp4")
}

// 40次非终态响应后停止轮询，不发出第41次请求
func TestRunStopsAtAttemptCap(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		return &VideoStatus{Status: "generating"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, MaxPollAttempts, video.calls)
	assert.Contains(t, *log, "mark:failed")
}

// 40次连续请求失败同样判失败
func TestRunStopsAtErrorCap(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		return nil, fmt.Errorf("network down")
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, MaxPollAttempts, video.calls)
	assert.Contains(t, *log, "mark:failed")
}

func TestRunVendorFailure(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		return &VideoStatus{Status: "failed"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, 1, video.calls)
	assert.Contains(t, *log, "mark:failed")
}

// 取消后不再发起新请求，记录标记为失败以便本周重试
func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		cancel() // 第一次响应后取消
		return &VideoStatus{Status: "generating"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(ctx, "recap-1", "job-1")

	assert.Equal(t, 1, video.calls)
	assert.Contains(t, *log, "mark:failed")
}

// 厂商报完成但三个URL字段全空时不落空地址，继续轮询
func TestRunCompletedWithoutURLKeepsPolling(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		if call < 3 {
			return &VideoStatus{Status: "completed"}, nil
		}
		return &VideoStatus{Status: "completed", VideoURL: "https://cdn.example.com/v.mp4"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, 3, video.calls)
	assert.NotContains(t, *log, "persist:")
	assert.Contains(t, *log, "persist:https://cdn.example.com/v.mp4")
}

// 完成但始终拿不到地址时走尝试预算，最终判失败而不是带空地址完成
func TestRunCompletedWithoutURLExhaustsBudget(t *testing.T) {
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		return &VideoStatus{Status: "completed"}, nil
	}}
	p, log := newTestPoller(video)

	p.run(context.Background(), "recap-1", "job-1")

	assert.Equal(t, MaxPollAttempts, video.calls)
	assert.NotContains(t, *log, "persist:")
	assert.Contains(t, *log, "mark:failed")
}

// Shutdown取消全部在途轮询并等待goroutine退出
func TestShutdownStopsInFlightPolls(t *testing.T) {
	started := make(chan struct{})
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		if call == 1 {
			close(started)
		}
		return &VideoStatus{Status: "generating"}, nil
	}}
	p, log := newTestPoller(video)
	p.interval = time.Hour // 确保轮询停在定时等待上

	p.Start("user-1", "recap-1", "job-1")
	<-started
	p.Shutdown()

	assert.Equal(t, 1, video.calls)
	assert.Contains(t, *log, "mark:failed")
	assert.Contains(t, *log, "release:user-1")
}

// Cancel只取消指定用户的轮询，重复取消返回false
func TestCancelStopsUserPoll(t *testing.T) {
	started := make(chan struct{})
	video := &fakeVideo{responses: func(call int) (*VideoStatus, error) {
		if call == 1 {
			close(started)
		}
		return &VideoStatus{Status: "generating"}, nil
	}}
	p, log := newTestPoller(video)
	p.interval = time.Hour

	p.Start("user-1", "recap-1", "job-1")
	<-started

	assert.True(t, p.Cancel("user-1"))
	p.Shutdown() // 等待goroutine退出
	assert.False(t, p.Cancel("user-1"))

	assert.Equal(t, 1, video.calls)
	assert.Contains(t, *log, "release:user-1")
}
