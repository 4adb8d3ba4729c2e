package rpdataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/infra/csvstore"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
)

// 原始表文件名（数据集压缩包内的固定命名）
const (
	OrdersFile     = "olist_orders_dataset.csv"
	ReviewsFile    = "olist_order_reviews_dataset.csv"
	OrderItemsFile = "olist_order_items_dataset.csv"
	ProductsFile   = "olist_products_dataset.csv"
	CustomersFile  = "olist_customers_dataset.csv"
)

// CSVRepository 数据集仓储实现（本地 CSV 文件）
type CSVRepository struct {
	rawDir        string
	outputDir     string
	processedFile string
	booksFile     string
}

// NewCSVRepository 创建 CSV 数据集仓储
func NewCSVRepository(rawDir, outputDir, processedFile, booksFile string) DatasetRepository {
	return &CSVRepository{
		rawDir:        rawDir,
		outputDir:     outputDir,
		processedFile: processedFile,
		booksFile:     booksFile,
	}
}

// ProcessedPath 处理后数据集的落盘路径
func (r *CSVRepository) ProcessedPath() string {
	return filepath.Join(r.outputDir, r.processedFile)
}

// LoadRawTables 加载五张原始表
func (r *CSVRepository) LoadRawTables(ctx context.Context) (*etraw.Tables, error) {
	orders, err := r.loadOrders()
	if err != nil {
		return nil, err
	}
	reviews, err := r.loadReviews()
	if err != nil {
		return nil, err
	}
	items, err := r.loadOrderItems()
	if err != nil {
		return nil, err
	}
	products, err := r.loadProducts()
	if err != nil {
		return nil, err
	}
	customers, err := r.loadCustomers()
	if err != nil {
		return nil, err
	}

	return &etraw.Tables{
		Orders:     orders,
		Reviews:    reviews,
		OrderItems: items,
		Products:   products,
		Customers:  customers,
	}, nil
}

func (r *CSVRepository) loadOrders() ([]etraw.Order, error) {
	table, err := csvstore.ReadTable(filepath.Join(r.rawDir, OrdersFile))
	if err != nil {
		return nil, err
	}

	cols, err := columnIndexes(table, "order_id", "customer_id", "order_status",
		"order_purchase_timestamp", "order_delivered_customer_date")
	if err != nil {
		return nil, wrapSchema(OrdersFile, err)
	}

	orders := make([]etraw.Order, 0, len(table.Rows))
	for _, row := range table.Rows {
		orders = append(orders, etraw.Order{
			ID:          cell(row, cols[0]),
			CustomerID:  cell(row, cols[1]),
			Status:      etraw.OrderStatus(cell(row, cols[2])),
			PurchasedAt: cell(row, cols[3]),
			DeliveredAt: cell(row, cols[4]),
		})
	}
	return orders, nil
}

func (r *CSVRepository) loadReviews() ([]etraw.Review, error) {
	table, err := csvstore.ReadTable(filepath.Join(r.rawDir, ReviewsFile))
	if err != nil {
		return nil, err
	}

	cols, err := columnIndexes(table, "review_id", "order_id", "review_score",
		"review_comment_message")
	if err != nil {
		return nil, wrapSchema(ReviewsFile, err)
	}

	reviews := make([]etraw.Review, 0, len(table.Rows))
	for _, row := range table.Rows {
		reviews = append(reviews, etraw.Review{
			ID:      cell(row, cols[0]),
			OrderID: cell(row, cols[1]),
			Score:   parseInt(cell(row, cols[2])),
			Comment: cell(row, cols[3]),
		})
	}
	return reviews, nil
}

func (r *CSVRepository) loadOrderItems() ([]etraw.OrderItem, error) {
	table, err := csvstore.ReadTable(filepath.Join(r.rawDir, OrderItemsFile))
	if err != nil {
		return nil, err
	}

	cols, err := columnIndexes(table, "order_id", "product_id", "price", "freight_value")
	if err != nil {
		return nil, wrapSchema(OrderItemsFile, err)
	}

	items := make([]etraw.OrderItem, 0, len(table.Rows))
	for _, row := range table.Rows {
		items = append(items, etraw.OrderItem{
			OrderID:      cell(row, cols[0]),
			ProductID:    cell(row, cols[1]),
			Price:        parseFloat(cell(row, cols[2])),
			FreightValue: parseFloat(cell(row, cols[3])),
		})
	}
	return items, nil
}

func (r *CSVRepository) loadProducts() ([]etraw.Product, error) {
	table, err := csvstore.ReadTable(filepath.Join(r.rawDir, ProductsFile))
	if err != nil {
		return nil, err
	}

	cols, err := columnIndexes(table, "product_id", "product_category_name")
	if err != nil {
		return nil, wrapSchema(ProductsFile, err)
	}

	products := make([]etraw.Product, 0, len(table.Rows))
	for _, row := range table.Rows {
		products = append(products, etraw.Product{
			ID:           cell(row, cols[0]),
			CategoryName: cell(row, cols[1]),
		})
	}
	return products, nil
}

func (r *CSVRepository) loadCustomers() ([]etraw.Customer, error) {
	table, err := csvstore.ReadTable(filepath.Join(r.rawDir, CustomersFile))
	if err != nil {
		return nil, err
	}

	cols, err := columnIndexes(table, "customer_id", "customer_state")
	if err != nil {
		return nil, wrapSchema(CustomersFile, err)
	}

	customers := make([]etraw.Customer, 0, len(table.Rows))
	for _, row := range table.Rows {
		customers = append(customers, etraw.Customer{
			ID:    cell(row, cols[0]),
			State: cell(row, cols[1]),
		})
	}
	return customers, nil
}

// SaveProcessed 原子写出处理后数据集
func (r *CSVRepository) SaveProcessed(ctx context.Context, records []*etdataset.ProcessedRecord) error {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Row())
	}
	return csvstore.WriteTable(r.ProcessedPath(), etdataset.Columns(), rows)
}

// LoadProcessed 加载处理后数据集
func (r *CSVRepository) LoadProcessed(ctx context.Context) ([]*etdataset.ProcessedRecord, error) {
	table, err := csvstore.ReadTable(r.ProcessedPath())
	if err != nil {
		return nil, err
	}

	if strings.Join(table.Header, ",") != strings.Join(etdataset.Columns(), ",") {
		return nil, errorx.New(errorx.KindValidation, "rpdataset.LoadProcessed",
			fmt.Sprintf("unexpected header %v in %s", table.Header, r.ProcessedPath()))
	}

	records := make([]*etdataset.ProcessedRecord, 0, len(table.Rows))
	for i, row := range table.Rows {
		rec, err := etdataset.FromRow(row)
		if err != nil {
			return nil, errorx.Wrap(errorx.KindValidation, "rpdataset.LoadProcessed",
				fmt.Sprintf("row %d is malformed", i+1), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveBooks 原子写出爬取变体的图书记录
func (r *CSVRepository) SaveBooks(ctx context.Context, books []etraw.Book) error {
	header := []string{"title", "price", "rating", "category", "availability", "url"}
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.Title,
			strconv.FormatFloat(b.Price, 'f', 2, 64),
			strconv.Itoa(b.Rating),
			b.Category,
			b.Availability,
			b.URL,
		})
	}
	return csvstore.WriteTable(filepath.Join(r.outputDir, r.booksFile), header, rows)
}

// columnIndexes 批量解析列下标
func columnIndexes(table *csvstore.Table, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j, err := table.ColumnIndex(name)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}
	return idx, nil
}

// cell 越界安全取值（原始表尾部字段可能缺失）
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func parseInt(s string) int {
	// 评分列在部分导出里是 "4.0" 这种浮点文本
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(v)
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func wrapSchema(file string, err error) error {
	return errorx.Wrap(errorx.KindValidation, "rpdataset.LoadRawTables",
		fmt.Sprintf("table %s has unexpected schema", file), err)
}
