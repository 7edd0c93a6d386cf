package constants

// Environment names
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// PubSub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Payment providers
const (
	PaymentProviderStripe = "stripe"
	PaymentProviderLocal  = "local"
)

// Mail providers
const (
	MailProviderSMTP = "smtp"
	MailProviderLog  = "log"
)

// Flash message types
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Storage key prefixes
const (
	ImagePrefix   = "images/"
	InvoicePrefix = "invoices/"
)
