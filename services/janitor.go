package services

import (
	"time"

	"AuraGo/config"
	"AuraGo/models"

	"github.com/robfig/cron/v3"
)

// Janitor 定时清理任务：把卡在中间态超过24小时的周报标记为失败
type Janitor struct {
	cron *cron.Cron
}

func NewJanitor() *Janitor {
	return &Janitor{cron: cron.New()}
}

// Start 注册并启动定时任务，每天凌晨3点执行一次
func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("0 3 * * *", j.expireStaleRecaps); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

// Stop 停止定时任务，等待在途任务完成
func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *Janitor) expireStaleRecaps() {
	cutoff := time.Now().UTC().Add(-24 * time.Hour)

	result := config.DB.Model(&models.WeeklyRecap{}).
		Where("status IN ? AND created_at < ?",
			[]string{models.RecapStatusPending, models.RecapStatusProcessing}, cutoff).
		Update("status", models.RecapStatusFailed)
	if result.Error != nil {
		config.Logger.Errorw("清理过期周报失败", "error", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		config.Logger.Infow("过期周报已标记失败", "count", result.RowsAffected)
	}
}
