package config

type config struct {
	Server   server   `yaml:"server" mapstructure:"server"`
	Mysql    mysql    `yaml:"mysql" mapstructure:"mysql"`
	Redis    redis    `yaml:"redis" mapstructure:"redis"`
	RabbitMq rabbitmq `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio    minio    `yaml:"minio" mapstructure:"minio"`
	Storage  storage  `yaml:"storage" mapstructure:"storage"`
	Jwt      jwtConf  `yaml:"jwt" mapstructure:"jwt"`
	Upload   upload   `yaml:"upload" mapstructure:"upload"`
}

type server struct {
	Addr    string `yaml:"addr"`
	BaseUrl string `yaml:"base_url"`
	WsAddr  string `yaml:"ws_addr"`
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
	DB       int    `yaml:"db"`
}

type rabbitmq struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type minio struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicUrl string `yaml:"public_url"`
}

type storage struct {
	// backend: "minio" 或 "local"
	Backend  string `yaml:"backend"`
	LocalDir string `yaml:"local_dir"`
}

type jwtConf struct {
	Secret        string `yaml:"secret"`
	AccessExpire  int    `yaml:"access_expire"`
	RefreshExpire int    `yaml:"refresh_expire"`
}

type upload struct {
	MaxVideoSizeMB int64 `yaml:"max_video_size_mb"`
	MaxImageSizeMB int64 `yaml:"max_image_size_mb"`
}
