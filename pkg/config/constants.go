package config

const EnvPrefix = "CARDVAULT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "CARDVAULT_DB_DSN"
	EnvDBHost = "CARDVAULT_DB_HOST"
	EnvDBUser = "CARDVAULT_DB_USER"
	EnvDBName = "CARDVAULT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
