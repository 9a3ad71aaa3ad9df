package command

const (
	MethodStoreSession        = "store_session"
	MethodGetSession          = "get_session"
	MethodUpdateWidget        = "update_widget"
	MethodCloseQuickAddWindow = "close_quick_add_window"
)

// StoreSessionParams represents store_session parameters
type StoreSessionParams struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
}

// UpdateWidgetParams represents update_widget parameters
type UpdateWidgetParams struct {
	TodosJSON  string `json:"todosJson"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}
