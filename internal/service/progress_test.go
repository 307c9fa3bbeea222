// internal/service/progress_test.go
package service

import (
	"testing"
	"time"

	"cert_keep/internal/model"

	"github.com/stretchr/testify/assert"
)

// --- Test CalcChecklistProgress ---
func Test_CalcChecklistProgress(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		completed int
		want      int
	}{
		{name: "4件中2件完了で50", total: 4, completed: 2, want: 50},
		{name: "0件のときは0 (ゼロ除算しない)", total: 0, completed: 0, want: 0},
		{name: "全件完了で100", total: 5, completed: 5, want: 100},
		{name: "未着手で0", total: 5, completed: 0, want: 0},
		{name: "3件中1件は四捨五入で33", total: 3, completed: 1, want: 33},
		{name: "3件中2件は四捨五入で67", total: 3, completed: 2, want: 67},
		{name: "6件中1件は四捨五入で17", total: 6, completed: 1, want: 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcChecklistProgress(tt.total, tt.completed)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Test DaysUntil ---
func Test_DaysUntil(t *testing.T) {
	// 時刻成分に影響されないことを確認するため、nowは夕方にする
	now := time.Date(2025, 10, 1, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{name: "当日は0 (朝の期限でも)", deadline: time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC), want: 0},
		{name: "翌日は1", deadline: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), want: 1},
		{name: "前日は-1", deadline: time.Date(2025, 9, 30, 23, 59, 0, 0, time.UTC), want: -1},
		{name: "30日後", deadline: time.Date(2025, 10, 31, 12, 0, 0, 0, time.UTC), want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntil(now, tt.deadline)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Test ClassifyDeadline ---
func Test_ClassifyDeadline(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	day := func(d int) *time.Time {
		t := now.AddDate(0, 0, d)
		return &t
	}

	tests := []struct {
		name     string
		deadline *time.Time
		want     model.Urgency
	}{
		{name: "期限なしはnone", deadline: nil, want: model.UrgencyNone},
		{name: "1日超過でoverdue", deadline: day(-1), want: model.UrgencyOverdue},
		{name: "当日はurgent", deadline: day(0), want: model.UrgencyUrgent},
		{name: "残2日はurgent", deadline: day(2), want: model.UrgencyUrgent},
		{name: "残3日はurgent (境界)", deadline: day(3), want: model.UrgencyUrgent},
		{name: "残4日はapproaching (境界)", deadline: day(4), want: model.UrgencyApproaching},
		{name: "残5日はapproaching", deadline: day(5), want: model.UrgencyApproaching},
		{name: "残7日はapproaching (境界)", deadline: day(7), want: model.UrgencyApproaching},
		{name: "残8日はnormal (境界)", deadline: day(8), want: model.UrgencyNormal},
		{name: "残30日はnormal", deadline: day(30), want: model.UrgencyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyDeadline(now, tt.deadline)
			assert.Equal(t, tt.want, got)
		})
	}
}

// --- Test FoldSteps ---
func Test_FoldSteps(t *testing.T) {
	names := []string{"書類準備", "内部監査", "是正対応", "内部承認"}

	statuses := func(states []model.StepState) []model.StepStatus {
		out := make([]model.StepStatus, len(states))
		for i, s := range states {
			out[i] = s.Status
		}
		return out
	}

	tests := []struct {
		name         string
		names        []string
		approvals    int
		wantStatuses []model.StepStatus
		wantProgress int
	}{
		{
			name:         "承認0回は全ステップpending",
			names:        names,
			approvals:    0,
			wantStatuses: []model.StepStatus{model.StepPending, model.StepPending, model.StepPending, model.StepPending},
			wantProgress: 0,
		},
		{
			name:         "承認1回で先頭がin-progress",
			names:        names,
			approvals:    1,
			wantStatuses: []model.StepStatus{model.StepInProgress, model.StepPending, model.StepPending, model.StepPending},
			wantProgress: 0,
		},
		{
			name:         "承認3回で2完了+1進行中 (50%)",
			names:        names,
			approvals:    3,
			wantStatuses: []model.StepStatus{model.StepCompleted, model.StepCompleted, model.StepInProgress, model.StepPending},
			wantProgress: 50,
		},
		{
			name:         "承認4回で最終ステップがin-progress (75%)",
			names:        names,
			approvals:    4,
			wantStatuses: []model.StepStatus{model.StepCompleted, model.StepCompleted, model.StepCompleted, model.StepInProgress},
			wantProgress: 75,
		},
		{
			name:         "pendingが尽きた後の承認は何もしない",
			names:        names,
			approvals:    10,
			wantStatuses: []model.StepStatus{model.StepCompleted, model.StepCompleted, model.StepCompleted, model.StepInProgress},
			wantProgress: 75,
		},
		{
			name:         "ステップ0件は空列と0",
			names:        []string{},
			approvals:    3,
			wantStatuses: []model.StepStatus{},
			wantProgress: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			states, progress := FoldSteps(tt.names, tt.approvals)
			assert.Equal(t, tt.wantStatuses, statuses(states))
			assert.Equal(t, tt.wantProgress, progress)

			// 名前はそのまま保持される
			for i, s := range states {
				assert.Equal(t, tt.names[i], s.Name)
			}
		})
	}
}

// 承認が増えても進捗率が後退しないこと
func Test_FoldSteps_ProgressMonotonic(t *testing.T) {
	names := []string{"申請提出", "一次審査", "現地審査", "認証判定"}

	prev := -1
	for approvals := 0; approvals <= 8; approvals++ {
		_, progress := FoldSteps(names, approvals)
		assert.GreaterOrEqual(t, progress, prev, "approvals=%d", approvals)
		prev = progress
	}
}
