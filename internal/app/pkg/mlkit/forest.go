package mlkit

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// TreeNode 决策树节点（扁平数组存储，Left/Right 为数组下标）
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Class     int     `json:"class"`
}

// DecisionTree 单棵 CART 树（基尼系数分裂）
type DecisionTree struct {
	Nodes []TreeNode `json:"nodes"`
}

// RandomForest 随机森林：Bootstrap 采样 + 每次分裂随机抽 sqrt(d) 个特征
type RandomForest struct {
	NTrees    int   `json:"n_trees"`
	MaxDepth  int   `json:"max_depth"`
	MinLeaf   int   `json:"min_leaf"`
	Seed      int64 `json:"seed"`
	NFeatures int   `json:"n_features"`

	Trees []DecisionTree `json:"trees"`
}

// NewRandomForest 创建默认超参的随机森林
func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NTrees:   50,
		MaxDepth: 10,
		MinLeaf:  2,
		Seed:     seed,
	}
}

// Name 模型名称
func (f *RandomForest) Name() string { return "random_forest" }

// Fit 拟合森林
func (f *RandomForest) Fit(X [][]float64, y []int) error {
	n := len(X)
	if n == 0 {
		return fmt.Errorf("empty training set")
	}
	f.NFeatures = len(X[0])

	rng := rand.New(rand.NewSource(f.Seed))
	f.Trees = make([]DecisionTree, 0, f.NTrees)

	for t := 0; t < f.NTrees; t++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}

		b := &treeBuilder{
			X:        X,
			y:        y,
			maxDepth: f.MaxDepth,
			minLeaf:  f.MinLeaf,
			mtry:     int(math.Ceil(math.Sqrt(float64(f.NFeatures)))),
			rng:      rng,
		}
		b.build(idx, 0)
		f.Trees = append(f.Trees, DecisionTree{Nodes: b.nodes})
	}

	return nil
}

// Predict 多数投票
func (f *RandomForest) Predict(x []float64) int {
	votes := 0
	for i := range f.Trees {
		votes += f.Trees[i].predict(x)
	}
	if votes*2 >= len(f.Trees) {
		return 1
	}
	return 0
}

// predict 单棵树的预测
func (t *DecisionTree) predict(x []float64) int {
	if len(t.Nodes) == 0 {
		return 0
	}
	i := 0
	for {
		node := t.Nodes[i]
		if node.Leaf {
			return node.Class
		}
		if node.Feature < len(x) && x[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

// treeBuilder 递归建树的工作区
type treeBuilder struct {
	X        [][]float64
	y        []int
	maxDepth int
	minLeaf  int
	mtry     int
	rng      *rand.Rand
	nodes    []TreeNode
}

// build 递归构建子树，返回根节点下标
func (b *treeBuilder) build(idx []int, depth int) int {
	pos := 0
	for _, i := range idx {
		pos += b.y[i]
	}

	nodeID := len(b.nodes)
	b.nodes = append(b.nodes, TreeNode{})

	// 叶子条件：纯节点、样本过少、达到深度上限
	if pos == 0 || pos == len(idx) || len(idx) < 2*b.minLeaf || depth >= b.maxDepth {
		b.nodes[nodeID] = TreeNode{Leaf: true, Class: majority(pos, len(idx))}
		return nodeID
	}

	feature, threshold, ok := b.bestSplit(idx)
	if !ok {
		b.nodes[nodeID] = TreeNode{Leaf: true, Class: majority(pos, len(idx))}
		return nodeID
	}

	var left, right []int
	for _, i := range idx {
		if b.X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < b.minLeaf || len(right) < b.minLeaf {
		b.nodes[nodeID] = TreeNode{Leaf: true, Class: majority(pos, len(idx))}
		return nodeID
	}

	leftID := b.build(left, depth+1)
	rightID := b.build(right, depth+1)
	b.nodes[nodeID] = TreeNode{Feature: feature, Threshold: threshold, Left: leftID, Right: rightID}
	return nodeID
}

// bestSplit 在随机抽取的特征子集上找基尼增益最优的分裂点
func (b *treeBuilder) bestSplit(idx []int) (int, float64, bool) {
	d := len(b.X[0])
	features := b.rng.Perm(d)
	if len(features) > b.mtry {
		features = features[:b.mtry]
	}
	sort.Ints(features)

	bestGini := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	values := make([]float64, 0, len(idx))
	for _, feature := range features {
		values = values[:0]
		for _, i := range idx {
			values = append(values, b.X[i][feature])
		}
		sort.Float64s(values)

		for v := 1; v < len(values); v++ {
			if values[v] == values[v-1] {
				continue
			}
			threshold := (values[v] + values[v-1]) / 2

			var nL, posL, nR, posR int
			for _, i := range idx {
				if b.X[i][feature] <= threshold {
					nL++
					posL += b.y[i]
				} else {
					nR++
					posR += b.y[i]
				}
			}
			if nL == 0 || nR == 0 {
				continue
			}

			g := weightedGini(nL, posL, nR, posR)
			if g < bestGini {
				bestGini = g
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func weightedGini(nL, posL, nR, posR int) float64 {
	total := float64(nL + nR)
	return float64(nL)/total*gini(nL, posL) + float64(nR)/total*gini(nR, posR)
}

func gini(n, pos int) float64 {
	p := float64(pos) / float64(n)
	return 2 * p * (1 - p)
}

func majority(pos, total int) int {
	if pos*2 >= total {
		return 1
	}
	return 0
}
