package svtrain

import (
	"context"
	"testing"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/config"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etraw"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/errorx"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/logger"
	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/pkg/mlkit"
)

// fakeDatasetRepo 内存数据集仓储
type fakeDatasetRepo struct {
	records []*etdataset.ProcessedRecord
	err     error
}

func (f *fakeDatasetRepo) LoadRawTables(ctx context.Context) (*etraw.Tables, error) { return nil, nil }
func (f *fakeDatasetRepo) SaveProcessed(ctx context.Context, records []*etdataset.ProcessedRecord) error {
	return nil
}
func (f *fakeDatasetRepo) LoadProcessed(ctx context.Context) ([]*etdataset.ProcessedRecord, error) {
	return f.records, f.err
}
func (f *fakeDatasetRepo) SaveBooks(ctx context.Context, books []etraw.Book) error { return nil }
func (f *fakeDatasetRepo) ProcessedPath() string                                   { return "memory" }

// fakeModelRepo 捕获保存的工件与报告
type fakeModelRepo struct {
	artifact *mlkit.Artifact
	report   interface{}
}

func (f *fakeModelRepo) Save(ctx context.Context, artifact *mlkit.Artifact) error {
	f.artifact = artifact
	return nil
}
func (f *fakeModelRepo) Load(ctx context.Context) (*mlkit.Artifact, error) { return f.artifact, nil }
func (f *fakeModelRepo) SaveReport(ctx context.Context, report interface{}) error {
	f.report = report
	return nil
}

// syntheticRecords 可分数据：满意订单快递快、不满意订单快递慢
func syntheticRecords() []*etdataset.ProcessedRecord {
	var records []*etdataset.ProcessedRecord
	for i := 0; i < 30; i++ {
		records = append(records, &etdataset.ProcessedRecord{
			ReviewScore: 5, Price: 100, FreightValue: 10,
			CustomerState: "SP", ProductCategory: "books",
			ReviewComment: "entrega rapida", DeliveryLeadDays: 2 + i%3,
		})
	}
	for i := 0; i < 10; i++ {
		records = append(records, &etdataset.ProcessedRecord{
			ReviewScore: 1, Price: 100, FreightValue: 10,
			CustomerState: "RJ", ProductCategory: "books",
			ReviewComment: "entrega atrasada", DeliveryLeadDays: 30 + i%5,
		})
	}
	return records
}

func modelConfig() config.ModelConfig {
	return config.ModelConfig{
		TestRatio:       0.2,
		Seed:            42,
		MaxTextFeatures: 100,
	}
}

func TestRunSelectsChampion(t *testing.T) {
	datasetRepo := &fakeDatasetRepo{records: syntheticRecords()}
	modelRepo := &fakeModelRepo{}

	svc := NewTrainService(datasetRepo, modelRepo, modelConfig(), logger.NopLogger{})
	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(report.Candidates))
	}
	if report.Champion == "" {
		t.Fatal("no champion selected")
	}

	var championF1 float64
	for _, c := range report.Candidates {
		if c.WeightedF1 < 0 || c.WeightedF1 > 1 {
			t.Errorf("%s weighted F1 out of range: %v", c.Model, c.WeightedF1)
		}
		if c.Model == report.Champion {
			championF1 = c.WeightedF1
		}
	}
	for _, c := range report.Candidates {
		if c.WeightedF1 > championF1 {
			t.Errorf("%s (%v) beats champion %s (%v)",
				c.Model, c.WeightedF1, report.Champion, championF1)
		}
	}

	if modelRepo.artifact == nil {
		t.Fatal("artifact not persisted")
	}
	if modelRepo.artifact.ModelName != report.Champion {
		t.Errorf("artifact model %q != champion %q", modelRepo.artifact.ModelName, report.Champion)
	}
	if modelRepo.artifact.Encoder == nil {
		t.Error("artifact misses encoder parameters")
	}
	if modelRepo.report == nil {
		t.Error("training report not persisted")
	}
}

func TestRunIsReproducible(t *testing.T) {
	run := func() *TrainingReport {
		svc := NewTrainService(&fakeDatasetRepo{records: syntheticRecords()},
			&fakeModelRepo{}, modelConfig(), logger.NopLogger{})
		report, err := svc.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return report
	}

	r1, r2 := run(), run()
	if r1.Champion != r2.Champion {
		t.Errorf("champions differ: %q vs %q", r1.Champion, r2.Champion)
	}
	for i := range r1.Candidates {
		if r1.Candidates[i].WeightedF1 != r2.Candidates[i].WeightedF1 {
			t.Errorf("%s scores differ between runs", r1.Candidates[i].Model)
		}
	}
}

func TestRunPropagatesMissingDataset(t *testing.T) {
	datasetRepo := &fakeDatasetRepo{
		err: errorx.New(errorx.KindMissingSource, "rpdataset.LoadProcessed", "missing"),
	}
	svc := NewTrainService(datasetRepo, &fakeModelRepo{}, modelConfig(), logger.NopLogger{})

	_, err := svc.Run(context.Background())
	if !errorx.IsKind(err, errorx.KindMissingSource) {
		t.Errorf("kind = %v, want KindMissingSource", errorx.KindOf(err))
	}
}

func TestRunRejectsEmptyDataset(t *testing.T) {
	svc := NewTrainService(&fakeDatasetRepo{}, &fakeModelRepo{}, modelConfig(), logger.NopLogger{})
	if _, err := svc.Run(context.Background()); err == nil {
		t.Error("expected error for empty dataset")
	}
}
