package api

import "github.com/gin-gonic/gin"

// requestEvent adapts an action request to jobcard.Event. Preventing the
// default turns the response into 204 No Content, so a form post leaves
// the browser on the board. Stopping propagation aborts the rest of the
// gin handler chain.
type requestEvent struct {
	c                *gin.Context
	defaultPrevented bool
}

func (e *requestEvent) PreventDefault() {
	e.defaultPrevented = true
}

func (e *requestEvent) StopPropagation() {
	e.c.Abort()
}
