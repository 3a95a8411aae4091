package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging       LoggingConfig       `yaml:"logging"`
	Server        ServerConfig        `yaml:"server"`
	ContentAPI    ContentAPIConfig    `yaml:"content_api"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Categories    []string            `yaml:"categories"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// SiteURL 은 공유 링크에 들어가는 공개 사이트 원점이다. (게이트웨이 주소와 다를 수 있다)
	SiteURL string `yaml:"site_url"`
}

// ContentAPIConfig 는 원격 블로그 콘텐츠 API 접속 정보를 정의한다.
// 영속성과 비즈니스 로직은 전부 이 API 뒤에 있고, 이 앱은 얇은 게이트웨이다.
type ContentAPIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// NotificationsConfig 는 알림 채널의 표시 한도와 자동 해제 시간을 정의한다.
// MaxVisible 이 0 이하면 기본값 8을 사용한다.
type NotificationsConfig struct {
	MaxVisible      int `yaml:"max_visible"`
	DurationSeconds int `yaml:"duration_seconds"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
