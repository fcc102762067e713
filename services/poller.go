package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"AuraGo/config"
	"AuraGo/models"
)

// 轮询参数：每15秒一次，最多40次（约10分钟）
const (
	DefaultPollInterval = 15 * time.Second
	MaxPollAttempts     = 40
)

// PollState 轮询状态机的状态
type PollState string

const (
	PollStateInitial   PollState = "initial"
	PollStatePolling   PollState = "polling"
	PollStateCompleted PollState = "completed"
	PollStateFailed    PollState = "failed"
)

// PollEvent 驱动状态转移的事件
type PollEvent string

const (
	EventJobCreated   PollEvent = "jobCreated"
	EventProcessing   PollEvent = "processing"
	EventCompleted    PollEvent = "completed"
	EventVendorFailed PollEvent = "vendorFailed"
	EventRequestError PollEvent = "requestError"
)

// PollSnapshot 状态机的完整可见状态，转移函数是纯函数
type PollSnapshot struct {
	State    PollState
	Attempts int // 收到"仍在处理"响应的次数
	Errors   int // 请求级失败的次数
}

// NextPoll 纯转移函数：给定当前快照和事件，返回下一个快照。
// 非终态响应和请求失败各有40次的独立预算，任一耗尽即判失败。
func NextPoll(s PollSnapshot, event PollEvent) PollSnapshot {
	if s.State == PollStateCompleted || s.State == PollStateFailed {
		return s // 终态不再转移
	}

	switch event {
	case EventJobCreated:
		return PollSnapshot{State: PollStatePolling}
	case EventCompleted:
		s.State = PollStateCompleted
		return s
	case EventVendorFailed:
		s.State = PollStateFailed
		return s
	case EventProcessing:
		s.Attempts++
		if s.Attempts >= MaxPollAttempts {
			s.State = PollStateFailed
		}
		return s
	case EventRequestError:
		s.Errors++
		if s.Errors >= MaxPollAttempts {
			s.State = PollStateFailed
		}
		return s
	default:
		return s
	}
}

// videoStatusFetcher 轮询器对视频厂商的最小依赖
type videoStatusFetcher interface {
	GetStatus(ctx context.Context, jobID string) (*VideoStatus, error)
}

// RecapPoller 服务端视频轮询器。
// 所有轮询上下文派生自轮询器自身的根上下文，不随HTTP请求结束；
// 进程关闭（Shutdown）或用户取消（Cancel）时统一收敛。
// 每个用户同时只允许一个轮询（Redis租约）。
type RecapPoller struct {
	video    videoStatusFetcher
	interval time.Duration
	wg       sync.WaitGroup

	baseCtx context.Context
	cancel  context.CancelFunc

	mu      sync.Mutex
	cancels map[string]context.CancelFunc

	// 落库与租约释放动作可注入，便于测试
	persist func(recapID, videoURL string)
	mark    func(recapID, status string)
	release func(uid string)
}

func NewRecapPoller(video *VideoService) *RecapPoller {
	ctx, cancel := context.WithCancel(context.Background())
	p := &RecapPoller{
		video:    video,
		interval: DefaultPollInterval,
		baseCtx:  ctx,
		cancel:   cancel,
		cancels:  make(map[string]context.CancelFunc),
	}
	p.persist = p.persistVideoURL
	p.mark = p.markStatus
	p.release = p.ReleaseLease
	return p
}

// AcquireLease 获取用户的轮询租约，已有轮询在跑时返回false
func (p *RecapPoller) AcquireLease(ctx context.Context, uid string) (bool, error) {
	key := fmt.Sprintf("recap:poll:%s", uid)
	// 租约时长略大于轮询预算，进程崩溃后自动过期
	return config.RedisClient.SetNX(ctx, key, 1, 12*time.Minute).Result()
}

// ReleaseLease 主动释放用户的轮询租约
func (p *RecapPoller) ReleaseLease(uid string) {
	key := fmt.Sprintf("recap:poll:%s", uid)
	if err := config.RedisClient.Del(context.Background(), key).Err(); err != nil {
		config.Logger.Warnw("释放轮询租约失败", "uid", uid, "error", err)
	}
}

// Start 启动后台轮询goroutine，任务创建后立刻开始第一次查询（无初始延迟）
func (p *RecapPoller) Start(uid, recapID, jobID string) {
	ctx, cancel := context.WithCancel(p.baseCtx)
	p.mu.Lock()
	p.cancels[uid] = cancel
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.release(uid)
		defer func() {
			cancel()
			p.mu.Lock()
			delete(p.cancels, uid)
			p.mu.Unlock()
		}()
		p.run(ctx, recapID, jobID)
	}()
}

// Cancel 取消指定用户的在途轮询，返回是否确有轮询被取消
func (p *RecapPoller) Cancel(uid string) bool {
	p.mu.Lock()
	cancel, ok := p.cancels[uid]
	p.mu.Unlock()
	if ok {
		cancel()
	}
	return ok
}

// Shutdown 取消全部在途轮询并等待goroutine退出，用于优雅关闭
func (p *RecapPoller) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *RecapPoller) run(ctx context.Context, recapID, jobID string) {
	snapshot := NextPoll(PollSnapshot{State: PollStateInitial}, EventJobCreated)
	p.mark(recapID, models.RecapStatusProcessing)

	for snapshot.State == PollStatePolling {
		snapshot = p.pollOnce(ctx, snapshot, recapID, jobID)
		if snapshot.State != PollStatePolling {
			break
		}

		// 重新调度前先检查取消标志
		if ctx.Err() != nil {
			config.Logger.Infow("轮询被取消", "recapID", recapID)
			p.mark(recapID, models.RecapStatusFailed)
			return
		}

		select {
		case <-ctx.Done():
			// 取消即放弃本次任务，标记失败后本周可重新发起
			config.Logger.Infow("轮询被取消", "recapID", recapID)
			p.mark(recapID, models.RecapStatusFailed)
			return
		case <-time.After(p.interval):
		}
	}

	if snapshot.State == PollStateFailed {
		config.Logger.Warnw("视频生成失败",
			"recapID", recapID,
			"jobID", jobID,
			"attempts", snapshot.Attempts,
			"errors", snapshot.Errors,
		)
		p.mark(recapID, models.RecapStatusFailed)
	}
}

func (p *RecapPoller) pollOnce(ctx context.Context, snapshot PollSnapshot, recapID, jobID string) PollSnapshot {
	status, err := p.video.GetStatus(ctx, jobID)
	if err != nil {
		config.Logger.Warnw("查询视频状态失败", "recapID", recapID, "error", err)
		return NextPoll(snapshot, EventRequestError)
	}

	switch status.Status {
	case "completed":
		if status.VideoURL == "" {
			// 厂商报完成但三个地址字段都还没有值，视为仍在处理，占用一次尝试预算
			return NextPoll(snapshot, EventProcessing)
		}
		next := NextPoll(snapshot, EventCompleted)
		p.persist(recapID, status.VideoURL)
		return next
	case "failed":
		return NextPoll(snapshot, EventVendorFailed)
	default:
		return NextPoll(snapshot, EventProcessing)
	}
}

// persistVideoURL 回写视频地址，尽力而为：
// 回写失败只记日志，不改变completed结论——视频在厂商侧已经可播。
func (p *RecapPoller) persistVideoURL(recapID, videoURL string) {
	updates := map[string]interface{}{
		"status":    models.RecapStatusCompleted,
		"video_url": videoURL,
	}
	if err := config.DB.Model(&models.WeeklyRecap{}).
		Where("id = ?", recapID).
		Updates(updates).Error; err != nil {
		config.Logger.Errorw("回写视频地址失败", "recapID", recapID, "videoURL", videoURL, "error", err)
	}
}

func (p *RecapPoller) markStatus(recapID, status string) {
	if err := config.DB.Model(&models.WeeklyRecap{}).
		Where("id = ?", recapID).
		Update("status", status).Error; err != nil {
		config.Logger.Errorw("更新周报状态失败", "recapID", recapID, "status", status, "error", err)
	}
}
