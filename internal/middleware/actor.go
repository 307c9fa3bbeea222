package middleware

import (
	"context"
	"net/http"
	"strings"

	"cert_keep/internal/model"
	"cert_keep/internal/webutil"
)

// IDプロバイダ（上流ゲートウェイ）が付与する操作者ヘッダ
const (
	HeaderActorName       = "X-Actor-Name"
	HeaderActorDepartment = "X-Actor-Department"
)

// ActorMiddleware はリクエストヘッダから操作者情報を取り出してコンテキストに格納します。
// 審査提出など帰属が必要な操作では X-Actor-Name が必須です。
// サービス層はコンテキストを直接参照せず、ハンドラが取り出した Actor を
// 引数として明示的に受け取ります。
func ActorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := model.Actor{
			Name:       strings.TrimSpace(r.Header.Get(HeaderActorName)),
			Department: strings.TrimSpace(r.Header.Get(HeaderActorDepartment)),
		}

		ctx := context.WithValue(r.Context(), model.ActorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActor は操作者名が未設定のリクエストを拒否するミドルウェアです。
func RequireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		actor, err := GetActorFromContext(r.Context())
		if err != nil || actor.Name == "" {
			logger.Warn("Actor identity missing", "header", HeaderActorName)
			appErr := model.NewAppError("UNAUTHORIZED", "操作者情報（X-Actor-Name）が必要です。", "", model.ErrForbidden)
			webutil.HandleError(w, logger, appErr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetActorFromContext(ctx context.Context) (model.Actor, error) {
	value, ok := ctx.Value(model.ActorKey).(model.Actor)
	if !ok {
		return model.Actor{}, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから操作者情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}
