package etraw

// Book 图书目录爬取记录（数据获取的爬取变体）
type Book struct {
	Title        string
	Price        float64
	Rating       int    // 1-5，无法识别的评级文本记为 0
	Category     string // 详情页面包屑解析出的类目
	Availability string
	URL          string
}
