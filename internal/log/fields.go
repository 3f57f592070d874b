package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldUserID        = "user_id"
	FieldUsername      = "username"
	FieldTransactionID = "transaction_id"
	FieldCurrency      = "currency"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldBackend       = "backend"
	FieldPage          = "page"
	FieldPageSize      = "page_size"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentStore    = "store"
	ComponentStorage  = "storage"
	ComponentService  = "service"
	ComponentSession  = "session"
	ComponentPipeline = "pipeline"
	ComponentCache    = "cache"
	ComponentUI       = "ui"
)

// Operations defines standard operation names
const (
	OpCreate      = "create"
	OpUpdate      = "update"
	OpDelete      = "delete"
	OpList        = "list"
	OpLogin       = "login"
	OpLogout      = "logout"
	OpSaveProfile = "save_profile"
	OpDerive      = "derive"
	OpStartup     = "startup"
	OpShutdown    = "shutdown"
)
