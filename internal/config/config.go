// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	MQ struct {
		Enabled bool   `mapstructure:"enabled"`
		URL     string `mapstructure:"url"`
	} `mapstructure:"mq"`
	App struct {
		// プロジェクト作成時に各トラックへ割り当てるステップ名
		InternalSteps []string `mapstructure:"internal_steps"`
		ExternalSteps []string `mapstructure:"external_steps"`
		// 期限通知イベントを発行する残日数の閾値
		DeadlineWarnDays int `mapstructure:"deadline_warn_days"`
		// 期限スキャナの実行間隔（分）。0で無効
		ScanIntervalMin int `mapstructure:"scan_interval_min"`
	} `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書き (例: APP_DATABASE_URL, APP_MQ_ENABLED)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "APP_DATABASE_URL")
	viper.BindEnv("mq.url", "APP_MQ_URL")
	viper.BindEnv("mq.enabled", "APP_MQ_ENABLED")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Log.Format == "" {
		Cfg.Log.Format = DefaultLogFormat
	}
	if len(Cfg.App.InternalSteps) == 0 {
		Cfg.App.InternalSteps = DefaultInternalSteps
	}
	if len(Cfg.App.ExternalSteps) == 0 {
		Cfg.App.ExternalSteps = DefaultExternalSteps
	}
	if Cfg.App.DeadlineWarnDays <= 0 {
		Cfg.App.DeadlineWarnDays = DefaultDeadlineWarnDays
	}
	if Cfg.App.ScanIntervalMin < 0 {
		Cfg.App.ScanIntervalMin = DefaultScanIntervalMin
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.MQ.Enabled && Cfg.MQ.URL == "" {
		log.Println("Warning: MQ is enabled but mq.url is not set. Falling back to no-op publisher.")
		Cfg.MQ.Enabled = false
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Internal Steps: %d, External Steps: %d", len(Cfg.App.InternalSteps), len(Cfg.App.ExternalSteps))
	log.Printf("MQ Enabled: %t", Cfg.MQ.Enabled)

	return nil
}
