package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"k8s.io/apimachinery/pkg/util/rand"
)

// Config 应用程序配置
type Config struct {
	APIPort  int
	LogLevel string
	LogFile  LogFileConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Session  SessionConfig
	Firebase FirebaseConfig
	Admin    AdminConfig
}

// LogFileConfig 日志文件配置
type LogFileConfig struct {
	Enabled    bool
	Path       string
	MaxSize    int // 单个文件最大大小，单位MB
	MaxBackups int // 最大保留旧文件数量
	MaxAge     int // 最大保留天数
	Compress   bool
}

// DatabaseConfig SQLite数据库配置
type DatabaseConfig struct {
	Path string // 数据库文件路径
}

// UploadConfig 支付凭证上传配置
type UploadConfig struct {
	Dir          string // 上传目录
	PublicPrefix string // 对外访问URL前缀
}

// SessionConfig 会话配置
type SessionConfig struct {
	Secret string // Cookie签名密钥
}

// FirebaseConfig Firebase身份验证配置
type FirebaseConfig struct {
	APIKey    string // Web API Key
	APIServer string // identitytoolkit API服务器地址
}

// AdminConfig 管理员初始账号配置
type AdminConfig struct {
	Username string
	Password string // 为空时启动会生成随机密码
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	// 加载.env文件（不存在时使用进程环境变量）
	_ = godotenv.Load()

	return &Config{
		APIPort:  getEnvInt("API_PORT", 8080),
		LogLevel: os.Getenv("LOG_LEVEL"),
		LogFile: LogFileConfig{
			Enabled:    os.Getenv("LOG_FILE_ENABLED") == "true",
			Path:       getEnv("LOG_FILE_PATH", "logs/luxedoll.log"),
			MaxSize:    getEnvInt("LOG_FILE_MAX_SIZE", 100),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAge:     getEnvInt("LOG_FILE_MAX_AGE", 30),
			Compress:   os.Getenv("LOG_FILE_COMPRESS") == "true",
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "doll_website.db"),
		},
		Upload: UploadConfig{
			Dir:          getEnv("UPLOAD_DIR", "proofs"),
			PublicPrefix: getEnv("UPLOAD_PUBLIC_PREFIX", "/static/proofs"),
		},
		Session: SessionConfig{
			Secret: getSessionSecret(),
		},
		Firebase: FirebaseConfig{
			APIKey:    os.Getenv("FIREBASE_API_KEY"),
			APIServer: getEnv("FIREBASE_API_SERVER", "https://identitytoolkit.googleapis.com"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		},
	}, nil
}

// getEnv 读取环境变量，未设置时返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 读取整型环境变量，解析失败时返回默认值
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getSessionSecret 读取会话密钥，未设置时生成随机密钥
// 随机密钥在每次重启后变化，重启会使已有会话全部失效
func getSessionSecret() string {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		return secret
	}
	return rand.String(32)
}
