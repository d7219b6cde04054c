package templates

import "github.com/naveen24691/zamboni/pkg/zamboni/model"

type QueueProductModel struct {
	Product *model.Product
	VersionCount int64
}

type QueueModel struct {
	SiteName string
	Products []QueueProductModel
	PageInfo *PageInfoModel
}
