package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 存储所有配置信息
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	// 数据库配置
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	// Redis配置
	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// 大模型API配置（OpenAI兼容接口）
	LLMAPIKey      string `mapstructure:"LLM_API_KEY"`
	LLMAPIEndpoint string `mapstructure:"LLM_API_ENDPOINT"`
	LLMModel       string `mapstructure:"LLM_MODEL"`

	// 语音API配置（转写+合成）
	SpeechAPIKey      string `mapstructure:"SPEECH_API_KEY"`
	SpeechAPIEndpoint string `mapstructure:"SPEECH_API_ENDPOINT"`
	SpeechVoiceID     string `mapstructure:"SPEECH_VOICE_ID"`

	// 视频生成API配置
	VideoAPIKey      string `mapstructure:"VIDEO_API_KEY"`
	VideoAPIEndpoint string `mapstructure:"VIDEO_API_ENDPOINT"`
	VideoReplicaID   string `mapstructure:"VIDEO_REPLICA_ID"`

	// 对象存储配置
	StorageAPIKey   string `mapstructure:"STORAGE_API_KEY"`
	StorageEndpoint string `mapstructure:"STORAGE_ENDPOINT"`

	// JWT配置
	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig 从环境变量或配置文件加载配置
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// 允许配置文件不存在，此时会从环境变量中读取
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}

// RequireVendorKeys 校验各厂商API密钥，缺失视为致命配置错误
func (c *Config) RequireVendorKeys() error {
	missing := []string{}
	if c.LLMAPIKey == "" {
		missing = append(missing, "LLM_API_KEY")
	}
	if c.SpeechAPIKey == "" {
		missing = append(missing, "SPEECH_API_KEY")
	}
	if c.VideoAPIKey == "" {
		missing = append(missing, "VIDEO_API_KEY")
	}
	if c.StorageAPIKey == "" {
		missing = append(missing, "STORAGE_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing vendor configuration: %v", missing)
	}
	return nil
}

// GetDBConnString 返回数据库连接字符串
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString 返回Redis连接字符串
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
