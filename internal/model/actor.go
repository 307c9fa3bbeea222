// internal/model/actor.go
package model

// Actor は操作者の属性情報。IDプロバイダ（上流のゲートウェイ）が
// 付与したヘッダから取り出し、ワークフロー呼び出しへ明示的に渡す。
// グローバルな「現在のユーザー」状態は持たない
type Actor struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

type ContextKey string

const (
	ActorKey ContextKey = "actor"
)
