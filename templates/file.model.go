package templates

import "github.com/naveen24691/zamboni/pkg/zamboni/model"

type FileContentsModel struct {
	SiteName string
	App *model.Product
	Version *model.Version
	File *model.File
}

type FileValidationModel struct {
	SiteName string
	App *model.Product
	Version *model.Version
	File *model.File
}

type FileCompareModel struct {
	SiteName string
	App *model.Product
	Version *model.Version
	File *model.File
	TargetVersion *model.Version
	TargetFile *model.File
}
