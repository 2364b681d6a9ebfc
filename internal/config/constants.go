package config

const (
	// DefaultConfigPath is the standard location for the modelcache configuration file.
	// DefaultConfigPath 是 modelcache 配置文件的标准位置。
	DefaultConfigPath = "/etc/modelcache/config.yaml"

	// DefaultReportFile is the file the load report is appended to when
	// dev.aoe_modelcache.log_file is not set.
	// DefaultReportFile 是未设置 dev.aoe_modelcache.log_file 时报告追加到的文件。
	DefaultReportFile = "model_loads.log"

	// DefaultSinkDir is the directory relative report file names resolve under.
	// DefaultSinkDir 是相对报告文件名解析的目录。
	DefaultSinkDir = "/var/log/modelcache"

	// DefaultLogPath is the default path of the operational log file.
	// DefaultLogPath 是运行日志文件的默认路径。
	DefaultLogPath = "/var/log/modelcache/modelcache.log"

	// DefaultServePort is the default port of the demo storefront server.
	// DefaultServePort 是演示商店服务器的默认端口。
	DefaultServePort = 18091
)
