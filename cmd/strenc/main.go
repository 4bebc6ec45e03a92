// Package main provides the strenc CLI: encode a text file with a selected
// policy and print a short summary of the dictionary and the output matrix.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/strenc-ml/strenc/encode"
	"github.com/strenc-ml/strenc/matrix"
	"github.com/strenc-ml/strenc/split"
)

const version = "v0.1.0-dev"

const maxPreview = 8

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("strenc %s\n", version)
		return
	}

	var (
		policyName   = flag.String("policy", "dict", "encoding policy: dict, onehot, bow, binary-bow, tfidf")
		splitterName = flag.String("split", "words", "splitter: words, chars, tiktoken")
		encodingName = flag.String("encoding", "cl100k_base", "tiktoken encoding (with -split tiktoken)")
		cols         = flag.Int("cols", 0, "fixed column size (0 = longest sequence)")
		sparse       = flag.Bool("sparse", false, "allocate a sparse output matrix")
	)
	flag.Parse()

	if err := run(*policyName, *splitterName, *encodingName, *cols, *sparse, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "strenc: %v\n", err)
		os.Exit(1)
	}
}

func run(policyName, splitterName, encodingName string, cols int, sparse bool, path string) error {
	policy, err := selectPolicy(policyName)
	if err != nil {
		return err
	}
	splitter, err := selectSplitter(splitterName, encodingName)
	if err != nil {
		return err
	}

	texts, err := readLines(path)
	if err != nil {
		return err
	}

	opts := []encode.Option{}
	if cols > 0 {
		opts = append(opts, encode.WithColumnSize(cols))
	}
	if sparse {
		opts = append(opts, encode.WithSparseOutput())
	}

	enc, err := encode.NewEncoder(policy, opts...)
	if err != nil {
		return err
	}
	out, err := enc.EncodeText(texts, splitter)
	if err != nil {
		return err
	}

	printSummary(policyName, texts, out, enc.Dictionary())
	return nil
}

func selectPolicy(name string) (encode.Policy, error) {
	switch name {
	case "dict":
		return encode.NewDictionaryPolicy(), nil
	case "onehot":
		return encode.NewOneHotPolicy(), nil
	case "bow":
		return encode.NewBagOfWordsPolicy(), nil
	case "binary-bow":
		return encode.NewBinaryBagOfWordsPolicy(), nil
	case "tfidf":
		return encode.NewTfIdfPolicy(), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

func selectSplitter(name, encodingName string) (split.Splitter, error) {
	switch name {
	case "words":
		return split.NewWhitespace(), nil
	case "chars":
		return split.NewChars(), nil
	case "tiktoken":
		return split.NewTikToken(encodingName)
	default:
		return nil, fmt.Errorf("unknown splitter %q", name)
	}
}

func readLines(path string) ([]string, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func printSummary(policyName string, texts []string, out matrix.Matrix, dict *encode.Dictionary) {
	color.Bold.Printf("strenc %s — %s policy\n\n", version, policyName)

	lengths := lo.Map(texts, func(text string, _ int) int { return len(text) })
	fmt.Printf("sequences: %d (longest line %d bytes)\n", len(texts), lo.Max(lengths))
	fmt.Printf("vocabulary: %d tokens\n", dict.Size())
	fmt.Printf("output: %d×%d", out.Rows(), out.Cols())
	if s, ok := out.(*matrix.Sparse); ok {
		fmt.Printf(" sparse, %d non-zero entries", s.NNZ())
	}
	fmt.Println()
	fmt.Println()

	printDictionary(dict)
	printMatrix(out)
}

func printDictionary(dict *encode.Dictionary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Index", "Token"})

	tokens := dict.Tokens()
	shown := lo.Slice(tokens, 0, maxPreview)
	for i, token := range shown {
		table.Append([]string{strconv.Itoa(dict.Base() + i), token})
	}
	table.Render()
	if len(tokens) > len(shown) {
		fmt.Printf("… %d more tokens\n", len(tokens)-len(shown))
	}
	fmt.Println()
}

func printMatrix(out matrix.Matrix) {
	rows := min(out.Rows(), maxPreview)
	cols := min(out.Cols(), maxPreview)

	table := tablewriter.NewWriter(os.Stdout)
	header := []string{""}
	for c := 0; c < cols; c++ {
		header = append(header, strconv.Itoa(c))
	}
	table.SetHeader(header)

	for r := 0; r < rows; r++ {
		line := []string{strconv.Itoa(r)}
		for c := 0; c < cols; c++ {
			line = append(line, strconv.FormatFloat(out.At(r, c), 'g', 4, 64))
		}
		table.Append(line)
	}
	table.Render()
	if out.Rows() > rows || out.Cols() > cols {
		fmt.Printf("… truncated to %d×%d preview\n", rows, cols)
	}
}
