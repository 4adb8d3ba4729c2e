package acquire

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
)

// Downloader 数据集压缩包下载器（数据获取的下载变体）
type Downloader struct {
	client *http.Client
	logger logger.Logger
}

// NewDownloader 创建下载器
func NewDownloader(log logger.Logger) *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: 5 * time.Minute},
		logger: log,
	}
}

// Fetch 下载数据集 zip 并把其中的 CSV 表解压到 destDir。
// 网络/认证失败返回 KindAcquisition，不重试，由调用方中止本次运行。
func (d *Downloader) Fetch(ctx context.Context, archiveURL string, destDir string) error {
	const op = "acquire.Fetch"

	d.logger.Infof(ctx, "[Acquire] Downloading dataset archive: %s", archiveURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return errorx.Wrap(errorx.KindAcquisition, op, "build request failed", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return errorx.Wrap(errorx.KindAcquisition, op, "download failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorx.New(errorx.KindAcquisition, op,
			fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, archiveURL))
	}

	// zip 需要随机访问，先落到临时文件
	tmp, err := os.CreateTemp("", "dataset-*.zip")
	if err != nil {
		return errorx.Wrap(errorx.KindAcquisition, op, "create temp archive failed", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return errorx.Wrap(errorx.KindAcquisition, op, "read archive body failed", err)
	}
	if err := tmp.Close(); err != nil {
		return errorx.Wrap(errorx.KindAcquisition, op, "close temp archive failed", err)
	}

	d.logger.Infof(ctx, "[Acquire] Downloaded %d bytes, extracting to %s", size, destDir)

	if err := extractCSVs(tmpPath, destDir); err != nil {
		return err
	}

	return nil
}

// extractCSVs 解压 zip 中的 CSV 文件到目标目录（忽略目录层级）
func extractCSVs(archivePath string, destDir string) error {
	const op = "acquire.extractCSVs"

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return errorx.Wrap(errorx.KindPersistence, op, "create dest dir failed", err)
	}

	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return errorx.Wrap(errorx.KindAcquisition, op, "open archive failed", err)
	}
	defer zr.Close()

	extracted := 0
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || filepath.Ext(f.Name) != ".csv" {
			continue
		}
		if err := extractOne(f, destDir); err != nil {
			return errorx.Wrap(errorx.KindAcquisition, op,
				fmt.Sprintf("extract %s failed", f.Name), err)
		}
		extracted++
	}

	if extracted == 0 {
		return errorx.New(errorx.KindMissingSource, op, "archive contains no CSV tables")
	}

	return nil
}

func extractOne(f *zip.File, destDir string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	destPath := filepath.Join(destDir, filepath.Base(f.Name))
	out, err := os.Create(destPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
