package presentation

const (
	AuthKey      = "Authorization"
	BearerPrefix = "Bearer "
	UIDKey       = "uid"
	IDParam      = "id"
	NameParam    = "name"
	ReasonTag    = "X-Reason"
)
