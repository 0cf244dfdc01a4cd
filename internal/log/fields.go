package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldLabel      = "label"
	FieldAmount     = "amount_cents"
	FieldKind       = "kind"
	FieldTxID       = "transaction_id"
	FieldCount      = "count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentLedger = "ledger"
)
