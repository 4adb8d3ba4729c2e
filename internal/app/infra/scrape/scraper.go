package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

// ratingWords 评级文本到整数的映射，未收录的文本记为 0
var ratingWords = map[string]int{
	"One":   1,
	"Two":   2,
	"Three": 3,
	"Four":  4,
	"Five":  5,
}

// Scraper 图书目录爬虫：沿"下一页"链接翻页，逐条进入详情页解析类目面包屑。
// 单线程串行抓取，页间固定延迟，任一传输失败即中止整次爬取。
type Scraper struct {
	client    *http.Client
	baseURL   string
	pageDelay time.Duration
	logger    logger.Logger
}

// NewScraper 创建爬虫实例
func NewScraper(baseURL string, pageDelay time.Duration, timeout time.Duration, log logger.Logger) *Scraper {
	return &Scraper{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/") + "/",
		pageDelay: pageDelay,
		logger:    log,
	}
}

// Run 执行完整爬取，返回全部图书记录。
// 终止条件：页面没有"下一页"链接，或某页解析不出任何条目。
func (s *Scraper) Run(ctx context.Context) ([]etraw.Book, error) {
	var books []etraw.Book

	pageURL := s.baseURL
	page := 0

	for pageURL != "" {
		if err := ctx.Err(); err != nil {
			return nil, errorx.Wrap(errorx.KindAcquisition, "scrape.Run", "scrape canceled", err)
		}

		page++
		s.logger.Infof(ctx, "[Scrape] Fetching page %d: %s", page, pageURL)

		doc, err := s.fetchDocument(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		entries, err := s.parsePage(ctx, doc, pageURL)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			s.logger.Infof(ctx, "[Scrape] Page %d yielded no entries, stopping", page)
			break
		}
		books = append(books, entries...)

		pageURL = s.nextPageURL(doc, pageURL)
		if pageURL != "" {
			time.Sleep(s.pageDelay)
		}
	}

	s.logger.Infof(ctx, "[Scrape] Finished: %d books across %d pages", len(books), page)
	return books, nil
}

// fetchDocument 抓取并解析单个页面
func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	const op = "scrape.fetchDocument"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindAcquisition, op, "build request failed", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindAcquisition, op,
			fmt.Sprintf("fetch %s failed", pageURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errorx.New(errorx.KindAcquisition, op,
			fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, pageURL))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errorx.Wrap(errorx.KindAcquisition, op, "parse html failed", err)
	}

	return doc, nil
}

// parsePage 解析目录页的全部条目，并逐条进入详情页解析类目
func (s *Scraper) parsePage(ctx context.Context, doc *goquery.Document, pageURL string) ([]etraw.Book, error) {
	var books []etraw.Book
	var firstErr error

	doc.Find("article.product_pod").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		book, err := s.parseEntry(ctx, sel, pageURL)
		if err != nil {
			firstErr = err
			return false
		}
		books = append(books, *book)
		return true
	})

	if firstErr != nil {
		return nil, firstErr
	}
	return books, nil
}

// parseEntry 解析单个目录条目并补全详情页信息
func (s *Scraper) parseEntry(ctx context.Context, sel *goquery.Selection, pageURL string) (*etraw.Book, error) {
	title := sel.Find("h3 a").AttrOr("title", "")
	href := sel.Find("h3 a").AttrOr("href", "")
	detailURL := resolveRef(pageURL, href)

	book := &etraw.Book{
		Title:        title,
		Price:        parsePrice(sel.Find("p.price_color").Text()),
		Rating:       parseRating(sel.Find("p.star-rating")),
		Availability: strings.TrimSpace(sel.Find("p.instock.availability").Text()),
		URL:          detailURL,
	}

	if detailURL != "" {
		category, err := s.fetchCategory(ctx, detailURL)
		if err != nil {
			return nil, err
		}
		book.Category = category
	}

	return book, nil
}

// fetchCategory 从详情页面包屑解析类目（面包屑第三级）
func (s *Scraper) fetchCategory(ctx context.Context, detailURL string) (string, error) {
	doc, err := s.fetchDocument(ctx, detailURL)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("ul.breadcrumb li:nth-child(3) a").Text()), nil
}

// nextPageURL 解析"下一页"链接，没有则返回空串
func (s *Scraper) nextPageURL(doc *goquery.Document, currentURL string) string {
	href, ok := doc.Find("li.next a").Attr("href")
	if !ok {
		return ""
	}
	return resolveRef(currentURL, href)
}

// parseRating 从 star-rating 的 class 提取评级文本并映射为整数
func parseRating(sel *goquery.Selection) int {
	classes := strings.Fields(sel.AttrOr("class", ""))
	for _, cls := range classes {
		if cls == "star-rating" {
			continue
		}
		return ratingWords[cls]
	}
	return 0
}

// parsePrice 去掉货币符号解析价格，失败记 0
func parsePrice(text string) float64 {
	cleaned := strings.TrimFunc(strings.TrimSpace(text), func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// resolveRef 基于当前页面地址解析相对链接
func resolveRef(base string, ref string) string {
	if ref == "" {
		return ""
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}
