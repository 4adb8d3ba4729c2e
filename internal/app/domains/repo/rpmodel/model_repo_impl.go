package rpmodel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/mlkit"
)

// JSONRepository 模型工件仓储实现（本地 JSON 文件）
type JSONRepository struct {
	outputDir    string
	artifactFile string
	reportFile   string
}

// NewJSONRepository 创建 JSON 模型仓储
func NewJSONRepository(outputDir, artifactFile, reportFile string) ModelRepository {
	return &JSONRepository{
		outputDir:    outputDir,
		artifactFile: artifactFile,
		reportFile:   reportFile,
	}
}

// Save 原子写出冠军模型工件
func (r *JSONRepository) Save(ctx context.Context, artifact *mlkit.Artifact) error {
	return r.writeJSON("rpmodel.Save", filepath.Join(r.outputDir, r.artifactFile), artifact)
}

// Load 加载冠军模型工件
func (r *JSONRepository) Load(ctx context.Context) (*mlkit.Artifact, error) {
	const op = "rpmodel.Load"
	path := filepath.Join(r.outputDir, r.artifactFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorx.Wrap(errorx.KindMissingSource, op,
				fmt.Sprintf("model artifact %s is missing", path), err)
		}
		return nil, errorx.Wrap(errorx.KindMissingSource, op,
			fmt.Sprintf("read %s failed", path), err)
	}

	var artifact mlkit.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, errorx.Wrap(errorx.KindValidation, op,
			fmt.Sprintf("artifact %s is malformed", path), err)
	}
	return &artifact, nil
}

// SaveReport 写出训练评估报告
func (r *JSONRepository) SaveReport(ctx context.Context, report interface{}) error {
	return r.writeJSON("rpmodel.SaveReport", filepath.Join(r.outputDir, r.reportFile), report)
}

// writeJSON 原子写 JSON：先写临时文件再重命名
func (r *JSONRepository) writeJSON(op string, path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errorx.Wrap(errorx.KindPersistence, op, "create output dir failed", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorx.Wrap(errorx.KindPersistence, op, "marshal failed", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errorx.Wrap(errorx.KindPersistence, op, "create temp file failed", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errorx.Wrap(errorx.KindPersistence, op, "write failed", err)
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
