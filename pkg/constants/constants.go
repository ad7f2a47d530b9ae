package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	ServiceName = "hospital-backend"
)
