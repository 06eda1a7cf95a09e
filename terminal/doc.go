// @focus: #sys { term }
// Package terminal adapts tcell mouse input to pointer gestures.
//
// Features:
//   - Button transition decoding into press, drag, move, and release
//   - Pointer broadcast to gesture listeners with coordinate translation
//   - Listener disposal safe to call from inside a callback
package terminal
