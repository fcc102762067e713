package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// URL选取的固定优先级：download > stream > hosted
func TestSelectVideoURLPriority(t *testing.T) {
	cases := []struct {
		name     string
		download string
		stream   string
		hosted   string
		want     string
	}{
		{"all present", "d", "s", "h", "d"},
		{"download and hosted", "d", "", "h", "d"},
		{"stream and hosted", "", "s", "h", "s"},
		{"hosted only", "", "", "h", "h"},
		{"download only", "d", "", "", "d"},
		{"stream only", "", "s", "", "s"},
		{"none", "", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SelectVideoURL(tc.download, tc.stream, tc.hosted))
		})
	}
}

func TestNormalizeVideoStatus(t *testing.T) {
	assert.Equal(t, "completed", normalizeVideoStatus("ready"))
	assert.Equal(t, "completed", normalizeVideoStatus("completed"))
	assert.Equal(t, "failed", normalizeVideoStatus("error"))
	assert.Equal(t, "failed", normalizeVideoStatus("deleted"))
	assert.Equal(t, "queued", normalizeVideoStatus("queued"))
	assert.Equal(t, "generating", normalizeVideoStatus("rendering"))
}
