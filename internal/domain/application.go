package domain

// Application holds the dependencies shared by the binary and its bindings.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output OutputWriter
	Styler Styler

	// Audit is nil when auditing is disabled.
	Audit AuditStore
}
