// Package command exposes the native commands of the application shell over JSON-RPC 2.0.
//
// The GUI invokes:
//   - store_session  {"accessToken","refreshToken","userId"} -> null
//   - get_session    -> session object or null
//   - update_widget  {"todosJson","isLoggedIn"} -> null
//   - close_quick_add_window -> null
//
// Failures are returned as JSON-RPC errors carrying a human readable message.
// The handler can be served over stdio (see Server.Stdio) or streamable HTTP
// bound to localhost (see Server.HTTP).
package command
