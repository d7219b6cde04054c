package templates

type PageInfoModel struct {
	PageNum int64
	PageSize int64
	TotalPage int64
}

func (p *PageInfoModel) HasPrev() bool { return p.PageNum > 1 }
func (p *PageInfoModel) HasNext() bool { return p.PageNum < p.TotalPage }
func (p *PageInfoModel) PrevPage() int64 { return p.PageNum - 1 }
func (p *PageInfoModel) NextPage() int64 { return p.PageNum + 1 }
