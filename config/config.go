package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ConfigInfo 全局配置实例
var ConfigInfo config

type config struct {
	Server server `yaml:"server"`
	Mysql  mysql  `yaml:"mysql"`
	Redis  redis  `yaml:"redis"`
	Minio  minio  `yaml:"minio"`
	Jwt    jwtcfg `yaml:"jwt"`
}

type server struct {
	Addr string `yaml:"addr"`
}

type mysql struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Charset  string `yaml:"charset"`
}

type redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type jwtcfg struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	ExpireDay int    `yaml:"expire_day"`
}

// Init 读取配置文件
// 使用 viper 加载 config.yml，支持多个查找路径
func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config")

	// 添加多个可能的配置文件路径
	configPaths := []string{
		"./config",
		"../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// 默认值（配置文件缺失时也能启动）
	viper.SetDefault("server.addr", ":5000")
	viper.SetDefault("mysql.addr", "127.0.0.1:3306")
	viper.SetDefault("mysql.database", "vtube")
	viper.SetDefault("mysql.username", "root")
	viper.SetDefault("mysql.password", "")
	viper.SetDefault("mysql.charset", "utf8mb4")
	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("minio.endpoint", "127.0.0.1:9000")
	viper.SetDefault("minio.bucket", "vtube")
	viper.SetDefault("jwt.secret", "vtube-secret-key-2026")
	viper.SetDefault("jwt.issuer", "vtube")
	viper.SetDefault("jwt.expire_day", 365)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("配置文件未找到，使用默认配置: %v", err)
		} else {
			logrus.Errorf("配置文件读取失败: %v", err)
		}
	} else {
		logrus.Infof("配置文件加载成功: %s", viper.ConfigFileUsed())
	}

	// 手动从 viper 获取配置值
	ConfigInfo.Server.Addr = viper.GetString("server.addr")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")

	ConfigInfo.Jwt.Secret = viper.GetString("jwt.secret")
	ConfigInfo.Jwt.Issuer = viper.GetString("jwt.issuer")
	ConfigInfo.Jwt.ExpireDay = viper.GetInt("jwt.expire_day")
}
