package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
)

// Table 内存中的一张带表头 CSV 表
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex 按列名查找列下标
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("column %q not found", name)
}

// ReadTable 读取 CSV 文件；文件不存在返回 KindMissingSource
func ReadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorx.Wrap(errorx.KindMissingSource, "csvstore.ReadTable",
				fmt.Sprintf("source table %s is missing", path), err)
		}
		return nil, errorx.Wrap(errorx.KindAcquisition, "csvstore.ReadTable",
			fmt.Sprintf("open %s failed", path), err)
	}
	defer file.Close()

	return ReadTableFromReader(file)
}

// ReadTableFromReader 从 io.Reader 读取 CSV 表
func ReadTableFromReader(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	// 原始表字段数可能不齐（缺失字段为空），交给上层按列名取值
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		rows = append(rows, record)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// WriteTable 原子写出 CSV 表：先写临时文件再重命名，
// 避免进程中断后留下半截输出被下游读到
func WriteTable(path string, header []string, rows [][]string) error {
	const op = "csvstore.WriteTable"

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errorx.Wrap(errorx.KindPersistence, op,
			fmt.Sprintf("create output dir %s failed", dir), err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errorx.Wrap(errorx.KindPersistence, op, "create temp file failed", err)
	}
	tmpPath := tmp.Name()

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errorx.Wrap(errorx.KindPersistence, op, "write header failed", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			tmp.Close()
			os.Remove(tmpPath)
			return errorx.Wrap(errorx.KindPersistence, op, "write row failed", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errorx.Wrap(errorx.KindPersistence, op, "flush failed", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errorx.Wrap(errorx.KindPersistence, op, "close temp file failed", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errorx.Wrap(errorx.KindPersistence, op,
			fmt.Sprintf("rename to %s failed", path), err)
	}

	return nil
}
