package templates

type ErrorTemplateModel struct {
	SiteName string
	ErrorCode int
	ErrorMessage string
}
