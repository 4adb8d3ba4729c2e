package acquire

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

// buildArchive 构造测试用 zip 压缩包
func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func serveArchive(t *testing.T, archive []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchExtractsCSVTables(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"olist_orders_dataset.csv":    "order_id\nO1\n",
		"nested/olist_customers.csv":  "customer_id\nC1\n",
		"README.txt":                  "not a table",
		"olist_products_dataset.json": "{}",
	})
	server := serveArchive(t, archive)

	destDir := t.TempDir()
	d := NewDownloader(logger.NopLogger{})
	if err := d.Fetch(context.Background(), server.URL, destDir); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	// CSV 落到目标目录（目录层级被拍平），非 CSV 被忽略
	data, err := os.ReadFile(filepath.Join(destDir, "olist_orders_dataset.csv"))
	if err != nil {
		t.Fatalf("extracted table missing: %v", err)
	}
	if string(data) != "order_id\nO1\n" {
		t.Errorf("table content = %q", data)
	}
	if _, err := os.Stat(filepath.Join(destDir, "olist_customers.csv")); err != nil {
		t.Errorf("nested table not flattened: %v", err)
	}
	if _, err := os.Stat(filepath.Join(destDir, "README.txt")); !os.IsNotExist(err) {
		t.Error("non-CSV file was extracted")
	}
}

func TestFetchRejectsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	d := NewDownloader(logger.NopLogger{})
	err := d.Fetch(context.Background(), server.URL, t.TempDir())
	if !errorx.IsKind(err, errorx.KindAcquisition) {
		t.Errorf("kind = %v, want KindAcquisition", errorx.KindOf(err))
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	d := NewDownloader(logger.NopLogger{})
	err := d.Fetch(context.Background(), "http://127.0.0.1:1/dataset.zip", t.TempDir())
	if !errorx.IsKind(err, errorx.KindAcquisition) {
		t.Errorf("kind = %v, want KindAcquisition", errorx.KindOf(err))
	}
}

func TestFetchArchiveWithoutCSV(t *testing.T) {
	archive := buildArchive(t, map[string]string{"notes.txt": "empty"})
	server := serveArchive(t, archive)

	d := NewDownloader(logger.NopLogger{})
	err := d.Fetch(context.Background(), server.URL, t.TempDir())
	if !errorx.IsKind(err, errorx.KindMissingSource) {
		t.Errorf("kind = %v, want KindMissingSource", errorx.KindOf(err))
	}
}

func TestFetchCorruptArchive(t *testing.T) {
	server := serveArchive(t, []byte("this is not a zip"))

	d := NewDownloader(logger.NopLogger{})
	err := d.Fetch(context.Background(), server.URL, t.TempDir())
	if !errorx.IsKind(err, errorx.KindAcquisition) {
		t.Errorf("kind = %v, want KindAcquisition", errorx.KindOf(err))
	}
}
