package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

// 使用Viper读取yaml配置 支持多个查找路径 便于本地与容器环境共用一份代码
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Errorf("config file not found: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
		}
		return
	}

	logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())

	// 手动从viper获取配置值，避免Unmarshal问题
	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Server.BaseUrl = viper.GetString("server.base_url")
	ConfigInfo.Server.WsAddr = viper.GetString("server.ws_addr")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMq.Addr = viper.GetString("rabbitmq.addr")
	ConfigInfo.RabbitMq.Username = viper.GetString("rabbitmq.username")
	ConfigInfo.RabbitMq.Password = viper.GetString("rabbitmq.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicUrl = viper.GetString("minio.public_url")

	ConfigInfo.Storage.Backend = viper.GetString("storage.backend")
	ConfigInfo.Storage.LocalDir = viper.GetString("storage.local_dir")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.AccessExpire = viper.GetInt("jwt.access_expire")
	ConfigInfo.Jwt.RefreshExpire = viper.GetInt("jwt.refresh_expire")

	ConfigInfo.Upload.MaxVideoSizeMB = viper.GetInt64("upload.max_video_size_mb")
	ConfigInfo.Upload.MaxImageSizeMB = viper.GetInt64("upload.max_image_size_mb")

	if ConfigInfo.Upload.MaxVideoSizeMB == 0 {
		ConfigInfo.Upload.MaxVideoSizeMB = 500
	}
	if ConfigInfo.Upload.MaxImageSizeMB == 0 {
		ConfigInfo.Upload.MaxImageSizeMB = 10
	}

	logrus.Infof("Config loaded - MySQL: %s:%s@%s/%s",
		ConfigInfo.Mysql.Username, "***", ConfigInfo.Mysql.Addr, ConfigInfo.Mysql.Database)
}
