// internal/service/progress.go
//
// チェックリスト進捗率・期限緊急度・ステップ進行の純粋な計算モジュール。
// ストアに依存しないため単体でテストできる
package service

import (
	"math"
	"time"

	"cert_keep/internal/model"
)

// CalcChecklistProgress はチェックリストの完了状況から進捗率(0-100)を計算します。
// 要求事項が0件のときは定義上0を返します（エラーやNaNにはしない）
func CalcChecklistProgress(total, completed int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// DaysUntil は now から deadline までの暦日ベースの残日数を返します。
// 当日は0、過ぎていれば負数
func DaysUntil(now, deadline time.Time) int {
	nowDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dlDate := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(dlDate.Sub(nowDate).Hours() / 24)
}

// ClassifyDeadline は現在時刻に対する期限の緊急度を分類します。
// 発行済みの値をキャッシュせず、必ず現在時刻から導出すること
func ClassifyDeadline(now time.Time, deadline *time.Time) model.Urgency {
	if deadline == nil {
		return model.UrgencyNone
	}
	days := DaysUntil(now, *deadline)
	switch {
	case days < 0:
		return model.UrgencyOverdue
	case days <= 3:
		return model.UrgencyUrgent
	case days <= 7:
		return model.UrgencyApproaching
	default:
		return model.UrgencyNormal
	}
}

// FoldSteps は承認回数をステップ名の列に畳み込んで現在状態を導出します。
// 承認1回ごとに:
//  1. 最初の pending ステップを in-progress にする
//  2. 直前まで in-progress だったステップを completed にする
//
// pending が残っていない承認は何もしない（エラーにもしない）。
// 戻り値はステップ状態の列とトラック進捗率(完了数/総数)
func FoldSteps(names []string, approvals int) ([]model.StepState, int) {
	states := make([]model.StepState, len(names))
	for i, name := range names {
		states[i] = model.StepState{Name: name, Status: model.StepPending}
	}

	for a := 0; a < approvals; a++ {
		next := -1
		for i := range states {
			if states[i].Status == model.StepPending {
				next = i
				break
			}
		}
		if next == -1 {
			break
		}
		prev := -1
		for i := range states {
			if states[i].Status == model.StepInProgress {
				prev = i
			}
		}
		states[next].Status = model.StepInProgress
		if prev != -1 {
			states[prev].Status = model.StepCompleted
		}
	}

	completed := 0
	for i := range states {
		if states[i].Status == model.StepCompleted {
			completed++
		}
	}
	return states, CalcChecklistProgress(len(states), completed)
}
