package encode

import (
	"math"

	"github.com/strenc-ml/strenc/internal/matrix"
)

// TfIdfPolicy encodes each sequence as one row over the vocabulary where
// cell (row, index) = rawTF · IDF: every occurrence of a token adds its
// smoothed inverse document frequency
//
//	idf = log((1+N)/(1+df)) + 1
//
// to the cell. Multi-pass: document frequencies are gathered in the
// pre-scan before the output is allocated.
type TfIdfPolicy struct {
	df      map[int]int
	lastRow map[int]int
	idf     map[int]float64
}

// NewTfIdfPolicy creates the TF-IDF policy.
func NewTfIdfPolicy() *TfIdfPolicy { return &TfIdfPolicy{} }

// Traits declares multi-pass operation.
func (*TfIdfPolicy) Traits() Traits {
	return Traits{MultiPass: true}
}

// BeginPrePass discards statistics from any previous session.
func (p *TfIdfPolicy) BeginPrePass() {
	p.df = make(map[int]int)
	p.lastRow = make(map[int]int)
	p.idf = nil
}

// ObserveToken counts each index at most once per row towards its document
// frequency.
func (p *TfIdfPolicy) ObserveToken(row, index int) {
	if last, ok := p.lastRow[index]; ok && last == row {
		return
	}
	p.lastRow[index] = row
	p.df[index]++
}

// InitMatrix freezes the IDF table and zero-fills a
// datasetSize×mappingsSize matrix.
func (p *TfIdfPolicy) InitMatrix(out matrix.Matrix, datasetSize, _ int, mappingsSize int) error {
	n := float64(datasetSize)
	p.idf = make(map[int]float64, len(p.df))
	for index, df := range p.df {
		p.idf[index] = math.Log((1+n)/(1+float64(df))) + 1
	}
	out.Reset(datasetSize, mappingsSize)
	return nil
}

// Encode adds the token's IDF to its vocabulary column, accumulating
// rawTF·IDF over the sequence.
func (p *TfIdfPolicy) Encode(index int, out matrix.Matrix, row, _ int) {
	out.Add(row, index, p.idf[index])
}
