package router

import "github.com/gin-gonic/gin"

// Module is one routable feature of the board (tasks, users, debug).
// Each module attaches its own routes and per-route middleware to the
// shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
