package controller

import (
	"github.com/naveen24691/zamboni/routes"
)

func InitializeRoute(context *routes.RouterContext) {
	bindQueueController(context)
	bindHistoryController(context)
	bindFileController(context)
	bindCommController(context)
}
