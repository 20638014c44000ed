package application

import "expvar"

// Published on /debug/vars when debug metrics are enabled.
var (
	todosCreated  = expvar.NewInt("todos_created")
	usersSignedUp = expvar.NewInt("users_signed_up")
	logins        = expvar.NewInt("logins")
)
