package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

func catalogPage(entries string, next string) string {
	nextLink := ""
	if next != "" {
		nextLink = fmt.Sprintf(`<ul class="pager"><li class="next"><a href="%s">next</a></li></ul>`, next)
	}
	return fmt.Sprintf(`<html><body>%s%s</body></html>`, entries, nextLink)
}

func entry(title, href, price, rating string) string {
	return fmt.Sprintf(`<article class="product_pod">
  <h3><a href="%s" title="%s">%s</a></h3>
  <p class="star-rating %s"></p>
  <div class="product_price">
    <p class="price_color">£%s</p>
    <p class="instock availability">In stock</p>
  </div>
</article>`, href, title, title, rating, price)
}

func detailPage(category string) string {
	return fmt.Sprintf(`<html><body>
<ul class="breadcrumb">
  <li><a href="/">Home</a></li>
  <li><a href="/catalogue/category/books_1/">Books</a></li>
  <li><a href="/catalogue/category/books/poetry_23/">%s</a></li>
  <li class="active">A Book</li>
</ul>
</body></html>`, category)
}

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, catalogPage(
			entry("First Book", "detail-1.html", "51.77", "Three")+
				entry("Second Book", "detail-2.html", "12.50", "Five"),
			"page-2.html"))
	})
	mux.HandleFunc("/page-2.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, catalogPage(entry("Third Book", "detail-3.html", "7.00", "Eleven"), ""))
	})
	mux.HandleFunc("/detail-1.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailPage("Poetry"))
	})
	mux.HandleFunc("/detail-2.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailPage("Fiction"))
	})
	mux.HandleFunc("/detail-3.html", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, detailPage("Travel"))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRunFollowsPagination(t *testing.T) {
	server := newCatalogServer(t)
	s := NewScraper(server.URL, 0, 0, logger.NopLogger{})

	books, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("scraped %d books, want 3", len(books))
	}

	first := books[0]
	if first.Title != "First Book" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Price != 51.77 {
		t.Errorf("price = %v, want 51.77", first.Price)
	}
	if first.Rating != 3 {
		t.Errorf("rating = %d, want 3", first.Rating)
	}
	if first.Category != "Poetry" {
		t.Errorf("category = %q, want Poetry", first.Category)
	}
	if first.Availability != "In stock" {
		t.Errorf("availability = %q", first.Availability)
	}

	if books[1].Rating != 5 || books[1].Category != "Fiction" {
		t.Errorf("second book parsed wrong: %+v", books[1])
	}

	// 未收录的评级文本记为 0
	if books[2].Rating != 0 {
		t.Errorf("unknown rating word mapped to %d, want 0", books[2].Rating)
	}
	if books[2].Category != "Travel" {
		t.Errorf("third book category = %q", books[2].Category)
	}
}

func TestRunAbortsOnTransportFailure(t *testing.T) {
	// 详情页 500：整次爬取中止而不是跳过该条目
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, catalogPage(entry("Broken", "detail-1.html", "1.00", "One"), ""))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	s := NewScraper(server.URL, 0, 0, logger.NopLogger{})
	_, err := s.Run(context.Background())
	if !errorx.IsKind(err, errorx.KindAcquisition) {
		t.Errorf("kind = %v, want KindAcquisition", errorx.KindOf(err))
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScraper("http://127.0.0.1:1/", 0, 0, logger.NopLogger{})
	_, err := s.Run(ctx)
	if !errorx.IsKind(err, errorx.KindAcquisition) {
		t.Errorf("kind = %v, want KindAcquisition", errorx.KindOf(err))
	}
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"£51.77":  51.77,
		" £7.00 ": 7,
		"garbage": 0,
		"":        0,
	}
	for input, want := range cases {
		if got := parsePrice(input); got != want {
			t.Errorf("parsePrice(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseRating(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<p class="star-rating Four"></p>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := parseRating(doc.Find("p.star-rating")); got != 4 {
		t.Errorf("parseRating = %d, want 4", got)
	}
}

func TestResolveRef(t *testing.T) {
	got := resolveRef("http://example.com/catalogue/page-1.html", "page-2.html")
	if got != "http://example.com/catalogue/page-2.html" {
		t.Errorf("resolveRef = %q", got)
	}
	if resolveRef("http://example.com/", "") != "" {
		t.Error("empty ref must resolve to empty")
	}
}
