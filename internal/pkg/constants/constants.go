package constants

// viper configuration keys
const (
	ViperHTTPAddrKey     = "http.addr"
	ViperDatabaseDSNKey  = "database.dsn"
	ViperSecretKey       = "auth.secret"
	ViperAllowOriginsKey = "http.allow_origins"
	ViperDebugKey        = "log.debug"
)

const (
	CookieKeyAuthToken = "auth_token"

	CtxKeyAdminID = "admin_id"
)
