package constants

// 시스템 경로 상수들
const (
	// RHEL/CentOS 관련 경로
	RHELNetworkScriptsDir = "/etc/sysconfig/network-scripts"

	// SUSE 관련 경로
	SUSENetworkConfigDir = "/etc/sysconfig/network"

	// OS 감지 관련 경로
	OSReleaseFile = "/etc/os-release"

	// 백업 디렉토리
	DefaultBackupDir = "/var/lib/ifcfg-agent/backups"

	// 선언/fact 파일 기본 경로
	DefaultDeclarationsFile = "/etc/ifcfg-agent/interfaces.yaml"
	DefaultFactsFile        = ""
)

// 설정 파일 관련 상수들
const (
	// 파일 권한과 소유자 (root:root)
	ConfigFilePermission = 0644
	ConfigFileOwnerUID   = 0
	ConfigFileOwnerGID   = 0

	// 타임아웃
	DefaultCommandTimeout = 30 // seconds
)

// 기본값 상수들
const (
	// 데이터베이스 기본값
	DefaultDBHost = "localhost"
	DefaultDBPort = "3306"
	DefaultDBName = "ifcfg"

	// 에이전트 기본값
	DefaultHealthPort = "8080"
)
