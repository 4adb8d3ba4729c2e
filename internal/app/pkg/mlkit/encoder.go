package mlkit

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/adrikll/Ecommerce-Satisfaction-Predicition/internal/app/domains/entity/etdataset"
)

// stopwords 评价文本分词时丢弃的高频虚词
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "such": {},
	"that": {}, "the": {}, "their": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "to": {}, "was": {}, "will": {}, "with": {},
}

// Encoder 特征编码器：类别列做 one-hot（未知类别编码为全零），
// 评价文本做 TF-IDF（词表截断到 MaxTextFeatures），数值列直通。
// 在训练集上拟合一次，编码参数随模型工件一起持久化。
type Encoder struct {
	States     []string  `json:"states"`
	Categories []string  `json:"categories"`
	Vocab      []string  `json:"vocab"`
	IDF        []float64 `json:"idf"`

	// 反序列化后的首次 Encode 重建索引；服务端并发调用，必须只建一次
	indexOnce sync.Once
	stateIdx  map[string]int
	catIdx    map[string]int
	vocabIdx  map[string]int
}

// FitEncoder 在训练特征上拟合编码器
func FitEncoder(feats []etdataset.Features, maxTextFeatures int) *Encoder {
	stateSet := map[string]struct{}{}
	catSet := map[string]struct{}{}
	docFreq := map[string]int{}

	for _, f := range feats {
		stateSet[f.CustomerState] = struct{}{}
		catSet[f.ProductCategory] = struct{}{}

		seen := map[string]struct{}{}
		for _, tok := range tokenize(f.ReviewComment) {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				docFreq[tok]++
			}
		}
	}

	e := &Encoder{
		States:     sortedKeys(stateSet),
		Categories: sortedKeys(catSet),
	}

	// 词表按文档频率截断，同频词按字典序保证多次拟合结果一致
	type termFreq struct {
		term string
		df   int
	}
	terms := make([]termFreq, 0, len(docFreq))
	for t, df := range docFreq {
		terms = append(terms, termFreq{term: t, df: df})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].df != terms[j].df {
			return terms[i].df > terms[j].df
		}
		return terms[i].term < terms[j].term
	})
	if maxTextFeatures > 0 && len(terms) > maxTextFeatures {
		terms = terms[:maxTextFeatures]
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].term < terms[j].term })

	n := float64(len(feats))
	e.Vocab = make([]string, len(terms))
	e.IDF = make([]float64, len(terms))
	for i, tf := range terms {
		e.Vocab[i] = tf.term
		// 平滑 IDF，避免零文档频率除零
		e.IDF[i] = math.Log((1+n)/(1+float64(tf.df))) + 1
	}

	e.indexOnce.Do(e.buildIndexes)
	return e
}

// buildIndexes 构建查找索引（只通过 indexOnce 调用）
func (e *Encoder) buildIndexes() {
	e.stateIdx = indexOf(e.States)
	e.catIdx = indexOf(e.Categories)
	e.vocabIdx = indexOf(e.Vocab)
}

// Dim 编码后的特征维数
func (e *Encoder) Dim() int {
	return len(e.States) + len(e.Categories) + len(e.Vocab) + 3
}

// FeatureNames 编码后各维的名称（报告用）
func (e *Encoder) FeatureNames() []string {
	names := make([]string, 0, e.Dim())
	for _, s := range e.States {
		names = append(names, etdataset.ColCustomerState+"="+s)
	}
	for _, c := range e.Categories {
		names = append(names, etdataset.ColProductCategory+"="+c)
	}
	for _, t := range e.Vocab {
		names = append(names, "tfidf:"+t)
	}
	names = append(names, etdataset.ColPrice, etdataset.ColFreightValue, etdataset.ColDeliveryLeadDays)
	return names
}

// Encode 把单条特征编码为数值向量；并发安全
func (e *Encoder) Encode(f etdataset.Features) []float64 {
	e.indexOnce.Do(e.buildIndexes)

	vec := make([]float64, e.Dim())

	if i, ok := e.stateIdx[f.CustomerState]; ok {
		vec[i] = 1
	}
	catBase := len(e.States)
	if i, ok := e.catIdx[f.ProductCategory]; ok {
		vec[catBase+i] = 1
	}

	textBase := catBase + len(e.Categories)
	e.encodeText(f.ReviewComment, vec[textBase:textBase+len(e.Vocab)])

	numBase := textBase + len(e.Vocab)
	vec[numBase] = f.Price
	vec[numBase+1] = f.FreightValue
	vec[numBase+2] = float64(f.DeliveryLeadDays)

	return vec
}

// EncodeAll 批量编码
func (e *Encoder) EncodeAll(feats []etdataset.Features) [][]float64 {
	X := make([][]float64, len(feats))
	for i, f := range feats {
		X[i] = e.Encode(f)
	}
	return X
}

// encodeText 计算 TF-IDF 并对文本子向量做 L2 归一化
func (e *Encoder) encodeText(text string, out []float64) {
	for _, tok := range tokenize(text) {
		if i, ok := e.vocabIdx[tok]; ok {
			out[i] += e.IDF[i]
		}
	}

	var norm float64
	for _, v := range out {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range out {
			out[i] /= norm
		}
	}
}

// tokenize 小写化后按非字母切分，丢弃单字符与停用词
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	toks := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, ok := stopwords[f]; ok {
			continue
		}
		toks = append(toks, f)
	}
	return toks
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}
