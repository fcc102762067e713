package services

import (
	"context"
	"testing"
	"time"

	"AuraGo/models"
	"AuraGo/utils"

	"github.com/stretchr/testify/assert"
)

// fakeJobCreator 可编程的视频任务创建桩
type fakeJobCreator struct {
	calls int
	job   *VideoJob
	err   error
}

func (f *fakeJobCreator) CreateJob(ctx context.Context, script string) (*VideoJob, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.job, nil
}

type savedRecap struct {
	recap   models.WeeklyRecap
	replace bool
}

func newTestRecapService(video videoJobCreator, existing *models.WeeklyRecap, reflectionCount int) (*RecapService, *[]savedRecap) {
	reflections := make([]models.Reflection, reflectionCount)
	for i := range reflections {
		reflections[i] = models.Reflection{Content: "今天过得不错", MoodScore: 7, CreatedAt: time.Now().UTC()}
	}

	var saves []savedRecap
	s := &RecapService{
		client: &LLMClient{Chat: &fakeModel{content: "这一周你走过了起伏。"}},
		video:  video,
		loadReflections: func(uid string, window utils.TimeWindow) ([]models.Reflection, error) {
			return reflections, nil
		},
		findForWeek: func(uid string, weekStart time.Time) (*models.WeeklyRecap, error) {
			return existing, nil
		},
		save: func(recap *models.WeeklyRecap, replace bool) error {
			saves = append(saves, savedRecap{recap: *recap, replace: replace})
			return nil
		},
	}
	return s, &saves
}

func TestStartRecapCreatesNewWeek(t *testing.T) {
	video := &fakeJobCreator{job: &VideoJob{JobID: "job-1"}}
	s, saves := newTestRecapService(video, nil, 3)

	recap, err := s.StartRecap(context.Background(), "user-1", time.Now().UTC())

	assert.NoError(t, err)
	assert.Len(t, *saves, 1)
	assert.False(t, (*saves)[0].replace)
	assert.NotEmpty(t, recap.ID)
	assert.Equal(t, "job-1", recap.VideoJobID)
	assert.Equal(t, models.RecapStatusPending, recap.Status)
	assert.Nil(t, recap.VideoURL)
}

// 上一次任务失败后重试：复用本周已有记录重新提交，而不是再插入一行
func TestStartRecapRetryReplacesFailedWeek(t *testing.T) {
	video := &fakeJobCreator{job: &VideoJob{JobID: "job-2"}}
	failed := &models.WeeklyRecap{ID: "recap-old", UserID: "user-1", Status: models.RecapStatusFailed}
	s, saves := newTestRecapService(video, failed, 3)

	recap, err := s.StartRecap(context.Background(), "user-1", time.Now().UTC())

	assert.NoError(t, err)
	assert.Len(t, *saves, 1)
	assert.True(t, (*saves)[0].replace)
	assert.Equal(t, "recap-old", recap.ID)
	assert.Equal(t, "job-2", recap.VideoJobID)
	assert.Equal(t, models.RecapStatusPending, recap.Status)
	assert.Nil(t, recap.VideoURL)
}

// 本周已有生成完毕的周报时拒绝重新提交，且不调用厂商
func TestStartRecapRejectsCompletedWeek(t *testing.T) {
	video := &fakeJobCreator{job: &VideoJob{JobID: "job-3"}}
	url := "https://cdn.example.com/v.mp4"
	done := &models.WeeklyRecap{ID: "recap-done", UserID: "user-1", Status: models.RecapStatusCompleted, VideoURL: &url}
	s, saves := newTestRecapService(video, done, 3)

	_, err := s.StartRecap(context.Background(), "user-1", time.Now().UTC())

	assert.ErrorIs(t, err, ErrRecapAlreadyCompleted)
	assert.Equal(t, 0, video.calls)
	assert.Empty(t, *saves)
}

func TestStartRecapNotEnoughReflections(t *testing.T) {
	video := &fakeJobCreator{job: &VideoJob{JobID: "job-4"}}
	s, saves := newTestRecapService(video, nil, 2)

	_, err := s.StartRecap(context.Background(), "user-1", time.Now().UTC())

	assert.ErrorIs(t, err, ErrNotEnoughReflections)
	assert.Equal(t, 0, video.calls)
	assert.Empty(t, *saves)
}
