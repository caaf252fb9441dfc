package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyVaultDBType string = "VAULT_DB_TYPE"
	EnvKeyVaultDbPath string = "VAULT_DB_PATH"

	EnvKeyVaultHttpHostPort string = "VAULT_HTTP_HOST_PORT"

	EnvKeyVaultDefaultRate  string = "VAULT_DEFAULT_RATE"
	EnvKeyVaultDefaultBurst string = "VAULT_DEFAULT_BURST"

	LoggerNameVaultCore      string = "vault_core"
	LoggerNameRestfulServer  string = "restful_server"
	LoggerFieldVaultCategory string = "category"
	LoggerCategoryAsset      string = "asset"
	LoggerCategoryWarranty   string = "warranty"
)
