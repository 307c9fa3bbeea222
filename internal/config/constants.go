// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "cert_keep"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultDeadlineWarnDays = 7
	DefaultScanIntervalMin  = 60
)

// 審査トラックごとのデフォルトステップ名
// プロジェクト作成時に行としてスナップショットされるため、
// 後から設定を変更しても既存プロジェクトの構成は変わらない
var (
	DefaultInternalSteps = []string{"書類準備", "内部監査", "是正対応", "内部承認"}
	DefaultExternalSteps = []string{"申請提出", "一次審査", "現地審査", "認証判定"}
)
