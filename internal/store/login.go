package store

// LoginState is the authentication slice. An empty AccessID means not
// authenticated.
type LoginState struct {
	AccessID string
	Username string
	Password string
}

// DefaultLoginState returns the slice's initial state.
func DefaultLoginState() LoginState {
	return LoginState{}
}

// LoginReducer computes the next authentication state. Pure and total:
// unrecognized actions return the input unchanged.
func LoginReducer(state LoginState, action Action) LoginState {
	switch action.Type {
	case TypeSetUsername:
		username, _ := action.Payload.(string)
		state.Username = username
		return state
	case TypeSetPassword:
		password, _ := action.Payload.(string)
		state.Password = password
		return state
	case TypeLoginSuccess:
		p, _ := action.Payload.(LoginPayload)
		state.AccessID = p.AccessID
		state.Username = p.Username
		return state
	case TypeLogout:
		return DefaultLoginState()
	default:
		return state
	}
}
